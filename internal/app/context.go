package app

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"cinder/internal/logger"
)

// LastResultKey is the context key where the shell stores the result of the
// most recent command.
const LastResultKey = "last_result"

// Context is the shared mutable key/value state visible to all commands
// across one process run. It is created at application construction, lives
// for the process, and is never persisted.
type Context struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewContext creates an empty shared context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Get returns the value stored under name and whether it exists.
func (c *Context) Get(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[name]
	return v, ok
}

// Set stores a value under name, replacing any previous value.
func (c *Context) Set(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[name] = value
}

// Keys returns the stored key names in sorted order.
func (c *Context) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Interpolate substitutes {key} placeholders in text with context values.
// Substitution is all-or-nothing: if any referenced key is missing the
// whole text is returned untouched, so a literal brace expression never
// fails a command.
func (c *Context) Interpolate(text string) string {
	if !strings.Contains(text, "{") {
		return text
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text
	}
	for _, m := range matches {
		if _, ok := c.values[m[1]]; !ok {
			return text
		}
	}

	result := placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		name := m[1 : len(m)-1]
		return fmt.Sprint(c.values[name])
	})
	logger.Interpolation(text, result)
	return result
}
