package main

import (
	"fmt"

	"cinder/internal/app"
	"cinder/internal/command"
	"cinder/pkg/cindertypes"
)

// registerDemoCommands installs a small command set so both run modes are
// usable out of the box. Host programs would supply their own list here.
func registerDemoCommands(shell *app.App) error {
	return shell.RegisterAll([]command.Command{
		{
			Name:        "hi",
			Description: "Salute someone by name",
			Params: []cindertypes.Param{
				{Name: "name", Required: true},
				{Name: "title", Default: "Mr."},
			},
			Handler: func(call *cindertypes.Call) (any, error) {
				return fmt.Sprintf("Hi! %s %s :) Glad to see you.", call.String("title"), call.String("name")), nil
			},
		},
		{
			Name:        "iam",
			Description: "Remember who you are for later commands",
			Params: []cindertypes.Param{
				{Name: "name", Required: true},
			},
			Handler: func(call *cindertypes.Call) (any, error) {
				call.Context.Set("name", call.String("name"))
				return nil, nil
			},
		},
		{
			Name:        "whoami",
			Description: "Print the name remembered by iam",
			Handler: func(call *cindertypes.Call) (any, error) {
				name, ok := call.Context.Get("name")
				if !ok {
					return nil, fmt.Errorf("no name set, use iam first")
				}
				return name, nil
			},
		},
		{
			Name:        "bye",
			Description: "Say goodbye to someone",
			Params: []cindertypes.Param{
				{Name: "name", Default: "User"},
			},
			Handler: func(call *cindertypes.Call) (any, error) {
				return fmt.Sprintf("Bye %s!", call.String("name")), nil
			},
		},
	})
}
