package command

import (
	"errors"
	"fmt"

	"cinder/internal/parser"
	"cinder/pkg/cindertypes"
)

// Run looks up a command by exact name and invokes it with the parsed
// arguments bound to its declared parameters. An unknown name yields a
// NotFound-kind error carrying the attempted name; binding failures and
// handler errors yield Execution-kind errors. Dispatch is a pure
// lookup-and-call: no retries, no caching.
func (r *Registry) Run(name string, args *parser.Args, sctx cindertypes.SharedContext) (any, error) {
	cmd, exists := r.Get(name)
	if !exists {
		return nil, cindertypes.NewNotFound(name)
	}

	values, err := bindParams(cmd, args)
	if err != nil {
		return nil, cindertypes.NewExecution(name, err)
	}

	result, err := cmd.Handler(&cindertypes.Call{Values: values, Context: sctx})
	if err != nil {
		var runErr *cindertypes.RunError
		if errors.As(err, &runErr) {
			return nil, err
		}
		return nil, cindertypes.NewExecution(name, err)
	}
	return result, nil
}

// bindParams maps parsed arguments onto a command's declared parameters:
// positional values fill parameters in declaration order, keyword values
// bind by name, and defaults fill whatever remains. Surplus positional
// arguments, unknown keywords, double assignment and missing required
// parameters are all binding errors.
func bindParams(cmd Command, args *parser.Args) (map[string]any, error) {
	values := make(map[string]any, len(cmd.Params))
	if args == nil {
		args = &parser.Args{}
	}

	if len(args.Positional) > len(cmd.Params) {
		return nil, fmt.Errorf("takes at most %d arguments, got %d", len(cmd.Params), len(args.Positional))
	}
	for i, v := range args.Positional {
		values[cmd.Params[i].Name] = v
	}

	for name, v := range args.Keyword {
		if !declaresParam(cmd, name) {
			return nil, fmt.Errorf("unexpected argument %q", name)
		}
		if _, dup := values[name]; dup {
			return nil, fmt.Errorf("multiple values for argument %q", name)
		}
		values[name] = v
	}

	for _, p := range cmd.Params {
		if _, ok := values[p.Name]; ok {
			continue
		}
		if p.Required {
			return nil, fmt.Errorf("missing required argument %q", p.Name)
		}
		values[p.Name] = p.Default
	}
	return values, nil
}

func declaresParam(cmd Command, name string) bool {
	for _, p := range cmd.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}
