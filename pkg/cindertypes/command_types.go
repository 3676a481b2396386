// Package cindertypes defines command system types for cinder.
// This file contains the declared-parameter model used when binding parsed
// arguments to a command handler.
package cindertypes

import "fmt"

// Param describes one declared parameter of a command. Positional arguments
// bind to parameters in declaration order; keyword arguments bind by name.
// A parameter that is not Required and receives no value binds to Default.
type Param struct {
	Name     string
	Default  any
	Required bool
}

func stringify(v any) string {
	return fmt.Sprint(v)
}
