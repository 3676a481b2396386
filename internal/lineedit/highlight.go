package lineedit

import (
	"strings"

	"github.com/fatih/color"
)

var commandStyle = color.New(color.FgGreen, color.Bold)

// commandPainter implements readline's Painter interface. It colors the
// leading word of the line when it names a known command; the painted line
// is display-only and never fed back into parsing.
type commandPainter struct {
	names map[string]struct{}
}

func newCommandPainter(commands []string) *commandPainter {
	names := make(map[string]struct{}, len(commands))
	for _, name := range commands {
		names[name] = struct{}{}
	}
	return &commandPainter{names: names}
}

// Paint highlights the command word at the start of the line.
func (p *commandPainter) Paint(line []rune, _ int) []rune {
	text := string(line)
	trimmed := strings.TrimLeft(text, " \t")
	word := trimmed
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		word = trimmed[:i]
	}
	if word == "" {
		return line
	}
	if _, known := p.names[word]; !known {
		return line
	}
	lead := text[:len(text)-len(trimmed)]
	return []rune(lead + commandStyle.Sprint(word) + trimmed[len(word):])
}
