package app

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinder/internal/command"
	"cinder/internal/lineedit"
	"cinder/pkg/cindertypes"
)

func TestMain(m *testing.M) {
	// Keep report assertions free of ANSI escape codes.
	color.NoColor = true
	os.Exit(m.Run())
}

// scriptedEditor replays a fixed sequence of read results, then EOF.
type scriptedEditor struct {
	events []editorEvent
	reads  int
	closed bool
}

type editorEvent struct {
	line string
	err  error
}

func (e *scriptedEditor) ReadLine(_ string) (string, error) {
	if e.reads >= len(e.events) {
		return "", lineedit.ErrEOF
	}
	ev := e.events[e.reads]
	e.reads++
	return ev.line, ev.err
}

func (e *scriptedEditor) Close() error {
	e.closed = true
	return nil
}

func registerTestCommands(t *testing.T, a *App) {
	t.Helper()
	require.NoError(t, a.RegisterAll([]command.Command{
		{
			Name:        "hi",
			Description: "Salute someone",
			Params: []cindertypes.Param{
				{Name: "name", Required: true},
				{Name: "title", Default: "Mr."},
			},
			Handler: func(call *cindertypes.Call) (any, error) {
				return fmt.Sprintf("Hi! %s %s", call.String("title"), call.String("name")), nil
			},
		},
		{
			Name:        "iam",
			Description: "Remember a name",
			Params:      []cindertypes.Param{{Name: "name", Required: true}},
			Handler: func(call *cindertypes.Call) (any, error) {
				call.Context.Set("name", call.String("name"))
				return nil, nil
			},
		},
		{
			Name:        "bye",
			Description: "Say goodbye",
			Params:      []cindertypes.Param{{Name: "name", Default: "User"}},
			Handler: func(call *cindertypes.Call) (any, error) {
				return fmt.Sprintf("Bye %s!", call.String("name")), nil
			},
		},
		{
			Name:        "explode",
			Description: "Always fails",
			Handler: func(_ *cindertypes.Call) (any, error) {
				return nil, fmt.Errorf("boom")
			},
		},
	}))
}

func TestGet_SharedInstancePerName(t *testing.T) {
	t.Cleanup(Reset)

	first := Get("alpha")
	second := Get("alpha")
	other := Get("beta")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, "alpha", first.Name())
	assert.NotEqual(t, first.ID(), other.ID())
}

func TestGet_EmptyNameUsesDefault(t *testing.T) {
	t.Cleanup(Reset)

	assert.Same(t, Get(""), Get(DefaultName))
}

func TestApp_BatchRunsChain(t *testing.T) {
	a := newApp("batch-chain")
	registerTestCommands(t, a)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"hi", "name=Bob", "and", "bye"}, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hi! Mr. Bob")
	assert.Contains(t, out.String(), "Bye User!")
}

func TestApp_BatchContinuesAfterNotFound(t *testing.T) {
	a := newApp("batch-notfound")
	registerTestCommands(t, a)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"nope", "and", "hi", "name=Bob"}, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Command nope not found")
	assert.Contains(t, out.String(), "Hi! Mr. Bob")
}

func TestApp_BatchSuggestsClosestName(t *testing.T) {
	a := newApp("batch-suggest")
	registerTestCommands(t, a)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"byee"}, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Command byee not found")
	assert.Contains(t, out.String(), `Did you mean "bye"?`)
}

func TestApp_BatchAbortsOnHandlerError(t *testing.T) {
	a := newApp("batch-abort")
	registerTestCommands(t, a)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"explode", "and", "hi", "name=Bob"}, Out: &out})

	require.Error(t, err)
	assert.True(t, cindertypes.IsExecution(err))
	// The remaining chain never runs.
	assert.NotContains(t, out.String(), "Hi!")
}

func TestApp_BatchAbortsOnParseFailure(t *testing.T) {
	a := newApp("batch-parse")
	registerTestCommands(t, a)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"hi", `name="Bob`}, Out: &out})

	require.Error(t, err)
	assert.True(t, cindertypes.IsParseFailure(err))
}

func TestApp_LastResultStored(t *testing.T) {
	a := newApp("last-result")
	registerTestCommands(t, a)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"bye", "name=Ana"}, Out: &out})

	require.NoError(t, err)
	result, ok := a.Context().Get(LastResultKey)
	require.True(t, ok)
	assert.Equal(t, "Bye Ana!", result)
}

func TestApp_PrintResultDisabled(t *testing.T) {
	a := newApp("quiet")
	registerTestCommands(t, a)
	a.SetPrintResult(false)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"bye"}, Out: &out})

	require.NoError(t, err)
	assert.Empty(t, out.String())
	// The result is still stored even when printing is off.
	result, _ := a.Context().Get(LastResultKey)
	assert.Equal(t, "Bye User!", result)
}

func TestApp_InteractiveEOFTerminates(t *testing.T) {
	a := newApp("repl-eof")
	registerTestCommands(t, a)
	editor := &scriptedEditor{events: []editorEvent{{err: lineedit.ErrEOF}}}
	var out bytes.Buffer

	err := a.Run(RunOptions{Editor: editor, Out: &out})

	require.NoError(t, err)
	assert.True(t, editor.closed)
}

func TestApp_InteractiveInterruptReprompts(t *testing.T) {
	a := newApp("repl-interrupt")
	registerTestCommands(t, a)
	editor := &scriptedEditor{events: []editorEvent{
		{err: lineedit.ErrInterrupt},
		{line: "hi name=Bob"},
	}}
	var out bytes.Buffer

	err := a.Run(RunOptions{Editor: editor, Out: &out})

	require.NoError(t, err)
	// Both scripted events are consumed: the interrupt did not end the loop.
	assert.Equal(t, 2, editor.reads)
	assert.Contains(t, out.String(), "Hi! Mr. Bob")
}

func TestApp_InteractiveSkipsEmptyLines(t *testing.T) {
	a := newApp("repl-empty")
	registerTestCommands(t, a)
	editor := &scriptedEditor{events: []editorEvent{
		{line: ""},
		{line: "   "},
	}}
	var out bytes.Buffer

	err := a.Run(RunOptions{Editor: editor, Out: &out})

	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestApp_InteractiveRecoversFromErrors(t *testing.T) {
	a := newApp("repl-recover")
	registerTestCommands(t, a)
	editor := &scriptedEditor{events: []editorEvent{
		{line: "nope"},
		{line: "explode"},
		{line: `hi name="Bob`},
		{line: "hi name=Bob"},
	}}
	var out bytes.Buffer

	err := a.Run(RunOptions{Editor: editor, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Command nope not found")
	assert.Contains(t, out.String(), "Error executing explode: boom")
	assert.Contains(t, out.String(), "unterminated")
	assert.Contains(t, out.String(), "Hi! Mr. Bob")
}

func TestApp_ExitStopsLoop(t *testing.T) {
	a := newApp("repl-exit")
	registerTestCommands(t, a)
	editor := &scriptedEditor{events: []editorEvent{
		{line: "exit"},
		{line: "hi name=Bob"},
	}}
	var out bytes.Buffer

	err := a.Run(RunOptions{Editor: editor, Out: &out})

	require.NoError(t, err)
	// The loop stops before reading the second line.
	assert.Equal(t, 1, editor.reads)
	assert.NotContains(t, out.String(), "Hi!")
}

func TestApp_InteractiveChainedLine(t *testing.T) {
	a := newApp("repl-chain")
	registerTestCommands(t, a)
	editor := &scriptedEditor{events: []editorEvent{
		{line: "hi name=Bob and bye name=Bob"},
	}}
	var out bytes.Buffer

	err := a.Run(RunOptions{Editor: editor, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hi! Mr. Bob")
	assert.Contains(t, out.String(), "Bye Bob!")
}

func TestApp_ContextInterpolationAcrossCommands(t *testing.T) {
	a := newApp("repl-context")
	registerTestCommands(t, a)
	editor := &scriptedEditor{events: []editorEvent{
		{line: "iam Sam"},
		{line: "hi {name}"},
	}}
	var out bytes.Buffer

	err := a.Run(RunOptions{Editor: editor, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hi! Mr. Sam")
}

func TestApp_HelpHidesExitInBatchMode(t *testing.T) {
	a := newApp("help-batch")
	registerTestCommands(t, a)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"help"}, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "hi")
	assert.Contains(t, out.String(), "help")
	assert.NotContains(t, out.String(), "exit")
}

func TestApp_HelpShowsExitInteractively(t *testing.T) {
	a := newApp("help-repl")
	registerTestCommands(t, a)
	editor := &scriptedEditor{events: []editorEvent{{line: "help"}}}
	var out bytes.Buffer

	err := a.Run(RunOptions{Editor: editor, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "exit")
	assert.Contains(t, out.String(), "Exit the interactive shell")
}

func TestApp_CustomSeparator(t *testing.T) {
	a := newApp("separator")
	registerTestCommands(t, a)
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"hi", "name=Bob", "then", "bye"}, Separator: "then", Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hi! Mr. Bob")
	assert.Contains(t, out.String(), "Bye User!")
}

func TestApp_OverwritingBuiltinIsReplacedAtRun(t *testing.T) {
	a := newApp("builtin-overwrite")
	require.NoError(t, a.Command("help", "my own help", func(_ *cindertypes.Call) (any, error) {
		return "custom", nil
	}))
	var out bytes.Buffer

	err := a.Run(RunOptions{Args: []string{"help"}, Out: &out})

	// Built-ins are registered last, so they win over host commands.
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "custom")
	assert.Contains(t, out.String(), "commands:")
}
