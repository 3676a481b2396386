// Package lineedit wraps the external line-editing library behind a small
// interface. The application shell only needs a blocking read-line with a
// prompt; completion, history and highlighting are configured here from the
// current command-name set and otherwise delegated entirely to readline.
package lineedit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"cinder/internal/logger"
)

// Sentinel errors the interactive loop branches on: ErrInterrupt re-prompts,
// ErrEOF terminates the loop cleanly.
var (
	ErrInterrupt = errors.New("lineedit: input interrupted")
	ErrEOF       = errors.New("lineedit: input eof")
)

// Editor is the line-input collaborator the interactive loop blocks on.
type Editor interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Config carries everything the editor needs from the application: the
// known command names for completion and highlighting, and an optional
// append-only history file.
type Config struct {
	Prompt      string
	HistoryFile string
	Commands    []string
}

// New returns a readline-backed editor when stdin and stdout are terminals,
// and a plain buffered reader otherwise so piped input still works.
func New(cfg Config) (Editor, error) {
	editorLog := logger.NewStyledLogger("LineEdit")
	if isTTY(os.Stdin) && isTTY(os.Stdout) {
		ed, err := newReadlineEditor(cfg)
		if err == nil {
			editorLog.Debug("Using readline editor", "history_file", cfg.HistoryFile, "commands", len(cfg.Commands))
			return ed, nil
		}
		editorLog.Debug("Readline unavailable, falling back to stdio", "error", err)
	}
	return &stdioEditor{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

type readlineEditor struct {
	rl *readline.Instance
}

func newReadlineEditor(cfg Config) (*readlineEditor, error) {
	historyFile := strings.TrimSpace(cfg.HistoryFile)
	if historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(historyFile), 0o755); err != nil {
			return nil, fmt.Errorf("lineedit: create history dir: %w", err)
		}
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(cfg.Commands))
	for _, name := range cfg.Commands {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		items = append(items, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       historyFile,
		AutoComplete:      readline.NewPrefixCompleter(items...),
		Painter:           newCommandPainter(cfg.Commands),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &readlineEditor{rl: rl}, nil
}

func (r *readlineEditor) ReadLine(prompt string) (string, error) {
	if r == nil || r.rl == nil {
		return "", ErrEOF
	}
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == nil {
		return strings.TrimSpace(line), nil
	}
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	if errors.Is(err, io.EOF) {
		return "", ErrEOF
	}
	return "", err
}

func (r *readlineEditor) Close() error {
	if r == nil || r.rl == nil {
		return nil
	}
	return r.rl.Close()
}

type stdioEditor struct {
	reader *bufio.Reader
	out    io.Writer
}

func (s *stdioEditor) ReadLine(prompt string) (string, error) {
	if s == nil || s.reader == nil {
		return "", ErrEOF
	}
	fmt.Fprint(s.out, prompt)
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *stdioEditor) Close() error {
	return nil
}
