package parser

import "strconv"

// CoerceLiteral interprets a raw token as the most specific literal form it
// matches, with fixed precedence: bool, int, float, quoted string, raw
// string. Coercion is best effort: a bare token that happens to look numeric
// is treated as numeric, so 0123 becomes the integer 123. Quoting the value
// keeps it a string.
func CoerceLiteral(tok string) any {
	switch tok {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(tok); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	if unwrapped, ok := unquote(tok); ok {
		return unwrapped
	}
	return tok
}

// unquote strips a matching pair of surrounding quotes. Tokens produced by
// the tokenizer keep their quote characters exactly for this step.
func unquote(tok string) (string, bool) {
	if len(tok) < 2 {
		return "", false
	}
	first, last := tok[0], tok[len(tok)-1]
	if first != last || (first != '"' && first != '\'') {
		return "", false
	}
	return tok[1 : len(tok)-1], true
}
