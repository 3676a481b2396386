// Package app composes cinder's registry, parser, suggestion heuristic and
// line editor into an application shell with two run modes: one-shot batch
// execution of process arguments and an interactive read-parse-dispatch
// loop. Execution is fully synchronous; the only suspension point is the
// interactive wait for a line of input.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"cinder/internal/command"
	"cinder/internal/lineedit"
	"cinder/internal/logger"
	"cinder/internal/parser"
	"cinder/internal/suggest"
	"cinder/pkg/cindertypes"
)

// SuggestFunc proposes the closest known command name for an unresolved
// one, returning "" when there is nothing worth suggesting.
type SuggestFunc func(name string, known []string) string

var (
	notFoundColor = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
)

// App is an application shell instance. Instances are shared per name; use
// Get to obtain one.
type App struct {
	name        string
	id          string
	manager     *command.Registry
	context     *Context
	suggest     SuggestFunc
	separator   string
	printResult bool
	interactive bool
	stopped     bool
	out         io.Writer
}

// RunOptions configures one Run invocation.
type RunOptions struct {
	// Args are the process-level positional arguments. Non-empty Args
	// select batch mode; empty Args select the interactive loop.
	Args []string

	Prompt      string
	HistoryFile string

	// Separator overrides the chain separator word (default "and").
	Separator string

	// Editor overrides the line editor; tests use a scripted fake.
	Editor lineedit.Editor

	// Out overrides the destination for results and error reports.
	Out io.Writer
}

func newApp(name string) *App {
	a := &App{
		name:        name,
		id:          uuid.New().String(),
		manager:     command.NewRegistry(),
		context:     NewContext(),
		suggest:     suggest.Closest,
		separator:   parser.DefaultChainSeparator,
		printResult: true,
		out:         os.Stdout,
	}
	logger.Debug("Application instance created", "app", name, "id", a.id)
	return a
}

// Name returns the application name the instance is shared under.
func (a *App) Name() string { return a.name }

// ID returns the unique identifier of this instance.
func (a *App) ID() string { return a.id }

// Manager returns the application's command registry.
func (a *App) Manager() *command.Registry { return a.manager }

// Context returns the shared mutable context visible to all commands.
func (a *App) Context() *Context { return a.context }

// SetPrintResult controls whether non-nil command results are printed.
func (a *App) SetPrintResult(v bool) { a.printResult = v }

// SetSuggest overrides the suggestion heuristic. A nil func disables
// suggestions entirely.
func (a *App) SetSuggest(fn SuggestFunc) { a.suggest = fn }

// Stop terminates the interactive loop after the current line finishes.
func (a *App) Stop() { a.stopped = true }

// Command registers a single command under this application.
func (a *App) Command(name, description string, handler cindertypes.Handler, params ...cindertypes.Param) error {
	return a.manager.Register(command.Command{
		Name:        name,
		Description: description,
		Params:      params,
		Handler:     handler,
	})
}

// RegisterAll bulk-registers an explicit list of commands, in order.
func (a *App) RegisterAll(cmds []command.Command) error {
	return a.manager.RegisterAll(cmds)
}

// Run starts the application. Batch mode executes opts.Args as one or more
// chained commands and returns; interactive mode loops on the line editor
// until end of input or the exit command.
func (a *App) Run(opts RunOptions) error {
	if opts.Out != nil {
		a.out = opts.Out
	}
	if opts.Separator != "" {
		a.separator = opts.Separator
	}
	a.registerBuiltins()

	if len(opts.Args) > 0 {
		return a.runBatch(opts.Args)
	}
	a.interactive = true
	return a.runInteractive(opts)
}

// runBatch executes the supplied tokens as chained commands. An unknown
// command name is reported and the chain continues; binding, handler and
// parse failures abort the remaining chain. The asymmetry is deliberate and
// mirrors interactive mode only for the not-found case.
func (a *App) runBatch(tokens []string) error {
	for _, group := range parser.SplitChain(tokens, a.separator) {
		name := group[0]
		remainder := strings.Join(group[1:], " ")
		if err := a.dispatch(name, remainder); err != nil {
			if cindertypes.IsNotFound(err) {
				a.reportNotFound(name)
				continue
			}
			return err
		}
	}
	return nil
}

// runInteractive loops on the line editor until end of input or Stop. An
// interrupt abandons the pending read and re-prompts; every dispatch error
// is reported and the loop continues.
func (a *App) runInteractive(opts RunOptions) error {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = ">> "
	}

	editor := opts.Editor
	if editor == nil {
		var err error
		editor, err = lineedit.New(lineedit.Config{
			Prompt:      prompt,
			HistoryFile: opts.HistoryFile,
			Commands:    a.manager.Names(true),
		})
		if err != nil {
			return fmt.Errorf("app: line editor: %w", err)
		}
	}
	defer func() { _ = editor.Close() }()

	for !a.stopped {
		line, err := editor.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, lineedit.ErrInterrupt) {
				continue
			}
			if errors.Is(err, lineedit.ErrEOF) {
				break
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a.runLine(line)
	}
	return nil
}

// runLine executes one interactive line, which may chain several commands.
// Errors never escape: each is reported and the remaining line continues.
func (a *App) runLine(line string) {
	chained, err := parser.SplitChainLine(line, a.separator)
	if err != nil {
		a.reportError(line, err)
		return
	}
	for _, commandLine := range chained {
		fields := strings.Fields(commandLine)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		remainder := strings.TrimSpace(strings.TrimPrefix(commandLine, name))
		if err := a.dispatch(name, remainder); err != nil {
			a.reportError(name, err)
		}
		if a.stopped {
			return
		}
	}
}

// dispatch interpolates the remainder text against the shared context,
// parses it into arguments and runs the named command. On success the
// result is stored under last_result and printed when enabled.
func (a *App) dispatch(name, remainder string) error {
	remainder = a.context.Interpolate(remainder)
	args, err := parser.ParseInline(remainder)
	if err != nil {
		return err
	}

	logger.CommandDispatch(name, remainder)
	result, err := a.manager.Run(name, args, a.context)
	if err != nil {
		return err
	}

	a.context.Set(LastResultKey, result)
	if a.printResult && result != nil {
		fmt.Fprintln(a.out, result)
	}
	return nil
}

// reportError prints a short human-readable line for a dispatch failure.
func (a *App) reportError(name string, err error) {
	if cindertypes.IsNotFound(err) {
		a.reportNotFound(name)
		return
	}
	errorColor.Fprintf(a.out, "Error executing %s: %s\n", name, errText(err))
}

// reportNotFound prints the not-found message plus an optional suggestion.
func (a *App) reportNotFound(name string) {
	notFoundColor.Fprintf(a.out, "Command %s not found\n", name)
	if a.suggest == nil {
		return
	}
	if suggested := a.suggest(name, a.manager.Names(true)); suggested != "" {
		fmt.Fprintf(a.out, "Did you mean %q?\n", suggested)
	}
}

// errText unwraps an execution error down to the handler's own message so
// reports read as "Error executing hi: boom" rather than repeating the name.
func errText(err error) string {
	var runErr *cindertypes.RunError
	if errors.As(err, &runErr) && runErr.Kind == cindertypes.KindExecution && runErr.Err != nil {
		return runErr.Err.Error()
	}
	return err.Error()
}
