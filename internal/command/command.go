// Package command provides command registration and dispatch for cinder.
// It manages a registry of named commands and binds parsed arguments to
// each command's declared parameters before invocation.
package command

import "cinder/pkg/cindertypes"

// Command is a named, registered unit of executable behavior. A Command is
// created once at registration time and immutable thereafter.
type Command struct {
	Name        string
	Description string
	Params      []cindertypes.Param
	Handler     cindertypes.Handler

	// Visible is evaluated at listing time; nil means always visible.
	// Predicates may depend on runtime state, e.g. interactive-only
	// built-ins.
	Visible func() bool
}

func (c Command) visible() bool {
	return c.Visible == nil || c.Visible()
}
