package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinder/internal/command"
	"cinder/pkg/cindertypes"
)

var (
	helpTitleStyle = lipgloss.NewStyle().Bold(true)
	helpNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

// registerBuiltins installs the exit and help commands. They are registered
// right before a run mode starts, so they overwrite any host command using
// the same names.
func (a *App) registerBuiltins() {
	// Overwrite semantics make these registrations infallible.
	_ = a.manager.Register(command.Command{
		Name:        "exit",
		Description: "Exit the interactive shell",
		Visible:     func() bool { return a.interactive },
		Handler: func(_ *cindertypes.Call) (any, error) {
			a.Stop()
			return nil, nil
		},
	})
	_ = a.manager.Register(command.Command{
		Name:        "help",
		Description: "List available commands",
		Handler: func(_ *cindertypes.Call) (any, error) {
			a.printHelp()
			return nil, nil
		},
	})
}

// printHelp lists the currently visible commands with their descriptions.
func (a *App) printHelp() {
	names := a.manager.Names(false)

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	fmt.Fprintln(a.out, helpTitleStyle.Render(a.name+" commands:"))
	for _, name := range names {
		cmd, _ := a.manager.Get(name)
		padded := name + strings.Repeat(" ", width-len(name))
		fmt.Fprintf(a.out, "  %s  %s\n", helpNameStyle.Render(padded), cmd.Description)
	}
}
