// Package parser turns raw command-line text into positional and keyword
// argument values ready for dispatch. It also splits chained input, where a
// reserved separator word issues several commands in one invocation.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"cinder/pkg/cindertypes"
)

// DefaultChainSeparator is the standalone word that splits one input into
// multiple chained commands: `hi name=Bob and bye`.
const DefaultChainSeparator = "and"

// Args holds the arguments parsed from a single command string.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

var keywordPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// SplitChain splits an argv-style token list on the standalone separator
// token. The separator only counts as a whole token, so it can still appear
// inside quoted values handled by the invoking shell.
func SplitChain(tokens []string, separator string) [][]string {
	var groups [][]string
	var current []string
	for _, tok := range tokens {
		if tok == separator {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// SplitChainLine splits a single raw input line on the separator word and
// returns the individual command strings. Quoted runs are kept intact, so a
// quoted separator stays part of its value.
func SplitChainLine(line, separator string) ([]string, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	var commands []string
	for _, group := range SplitChain(tokens, separator) {
		commands = append(commands, strings.Join(group, " "))
	}
	return commands, nil
}

// ParseInline parses the remainder of a command line into positional and
// keyword argument values. Fragments of the form identifier=value become
// keyword arguments; everything else is positional, in encounter order.
// Values run through CoerceLiteral, so `age=30` binds the integer 30.
func ParseInline(text string) (*Args, error) {
	args := &Args{Keyword: make(map[string]any)}
	text = strings.TrimSpace(text)
	if text == "" {
		return args, nil
	}

	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	for _, tok := range tokens {
		if m := keywordPattern.FindStringSubmatch(tok); m != nil {
			args.Keyword[m[1]] = CoerceLiteral(m[2])
			continue
		}
		args.Positional = append(args.Positional, CoerceLiteral(tok))
	}
	return args, nil
}

// tokenize splits text on whitespace while keeping quoted runs as single
// tokens. Quote characters are preserved in the token so the literal
// coercion step can tell a quoted "123" apart from a bare 123.
func tokenize(text string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	quoteChar := byte(0)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case !inQuotes && (c == '"' || c == '\''):
			inQuotes = true
			quoteChar = c
			current.WriteByte(c)
		case inQuotes && c == quoteChar:
			inQuotes = false
			quoteChar = 0
			current.WriteByte(c)
		case !inQuotes && (c == ' ' || c == '\t'):
			flush()
		default:
			current.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, cindertypes.NewParseFailure("", fmt.Errorf("unterminated %c quote in %q", quoteChar, text))
	}
	flush()
	return tokens, nil
}
