package command

import (
	"fmt"
	"sync"
)

// Registry manages command registration and lookup. It behaves as an
// ordered mapping from name to Command: enumeration follows registration
// order, and re-registering an existing name overwrites it in place without
// disturbing its position. Overwriting is deliberate policy so built-ins
// and host programs can replace commands freely.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	commands map[string]Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry, silently overwriting any
// existing command with the same name. Returns an error if the command
// name is empty or the handler is nil.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if cmd.Handler == nil {
		return fmt.Errorf("command %s has no handler", cmd.Name)
	}

	if _, exists := r.commands[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	return nil
}

// RegisterAll registers every command in the supplied list, in order. This
// is the bulk-registration entry point: host programs hand over an explicit
// list instead of having their packages introspected.
func (r *Registry) RegisterAll(cmds []Command) error {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a command by exact, case-sensitive name. Returns the
// command and true if found, or a zero Command and false otherwise.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// Names returns command names in registration order. Unless includeHidden
// is set, each command's visibility predicate is evaluated at call time and
// hidden commands are filtered out.
func (r *Registry) Names(includeHidden bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if includeHidden || r.commands[name].visible() {
			names = append(names, name)
		}
	}
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}
