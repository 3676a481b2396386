package app

import "sync"

// DefaultName is the application name used when callers do not care about
// addressing a specific instance.
const DefaultName = "cinder"

// instances holds one shared App per name. Get is an explicit get-or-create
// factory: separate packages that ask for the same name receive the same
// instance, so "the app" can be referenced without passing it around.
var (
	instancesMu sync.Mutex
	instances   = make(map[string]*App)
)

// Get returns the shared application instance for a name, creating it on
// first use.
func Get(name string) *App {
	if name == "" {
		name = DefaultName
	}

	instancesMu.Lock()
	defer instancesMu.Unlock()

	if a, ok := instances[name]; ok {
		return a
	}
	a := newApp(name)
	instances[name] = a
	return a
}

// Reset drops all shared instances. This is primarily for tests that need
// clean state between cases.
func Reset() {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	instances = make(map[string]*App)
}
