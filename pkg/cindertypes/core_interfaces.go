// Package cindertypes defines the contract types shared across cinder's
// parser, command registry, and application shell.
//
// The package holds three groups of types:
//
//   - SharedContext, Call and Handler: the invocation contract between the
//     application shell and registered command handlers.
//   - Param: the declared-parameter model used for argument binding.
//   - RunError and ErrorKind: the tagged error taxonomy that lets the shell
//     branch on failure class instead of catching arbitrary errors.
package cindertypes

// SharedContext is the mutable key/value state visible to every command
// across one process run. The application shell owns a single instance per
// application and stores the most recent command result under "last_result".
type SharedContext interface {
	Get(name string) (any, bool)
	Set(name string, value any)
	Keys() []string
}

// Call carries the bound arguments and shared state for one command
// invocation. Values maps each declared parameter name to its bound value;
// parameters left unset by the caller hold their declared defaults.
type Call struct {
	Values  map[string]any
	Context SharedContext
}

// Value returns the bound value for a declared parameter, or nil when the
// parameter was neither supplied nor given a default.
func (c *Call) Value(name string) any {
	if c == nil || c.Values == nil {
		return nil
	}
	return c.Values[name]
}

// String returns the bound value for a declared parameter as a string.
// Non-string values are rendered with their natural formatting; absent
// values render as the empty string.
func (c *Call) String(name string) string {
	v := c.Value(name)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return stringify(v)
}

// Handler is the function signature every registered command wraps.
// The returned value becomes the application's last_result; a returned
// error propagates to the active run mode for reporting.
type Handler func(call *Call) (any, error)
