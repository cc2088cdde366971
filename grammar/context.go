// This file implements the scoped Context store.
package grammar

import "errors"

// ErrEmptyScope is returned by Pop when only the base frame remains.
// A caller hitting this has unbalanced Push/Pop pairs — the rule engine
// treats it as a structural violation of the offending rule.
var ErrEmptyScope = errors.New("grammar: pop on empty scope stack")

// Well-known agreement parameter names.
const (
	// Gender carries the grammatical gender ("male", "female", "neuter").
	Gender = "gender"

	// Number carries the grammatical number ("singular", "plural").
	Number = "number"

	// Case carries the grammatical case ("nominative", "dative", …).
	Case = "case"
)

// cleared marks a parameter explicitly cleared for the current scope,
// distinguishing "overridden to absent" from "not overridden here".
type clearedMarker struct{}

var cleared = clearedMarker{}

// Context is a stack of parameter frames. The zero value is not usable;
// call New.
type Context struct {
	frames []map[string]interface{}
}

// New creates a Context with a single base frame.
// Complexity: O(1)
func New() *Context {
	return &Context{frames: []map[string]interface{}{make(map[string]interface{})}}
}

// Depth returns the number of frames, 1 for a fresh Context.
func (c *Context) Depth() int { return len(c.frames) }

// Push enters a new scope seeded with overrides. A key mapped to nil is
// cleared for the scope's duration; other values shadow outer frames.
// The overrides map is copied, the caller keeps ownership.
// Complexity: O(len(overrides))
func (c *Context) Push(overrides map[string]interface{}) {
	frame := make(map[string]interface{}, len(overrides))
	for k, v := range overrides {
		if v == nil {
			frame[k] = cleared
			continue
		}
		frame[k] = v
	}
	c.frames = append(c.frames, frame)
}

// Pop exits the innermost scope, restoring every parameter it shadowed
// or cleared. The base frame cannot be popped.
// Complexity: O(1)
func (c *Context) Pop() error {
	if len(c.frames) <= 1 {
		return ErrEmptyScope
	}
	c.frames = c.frames[:len(c.frames)-1]

	return nil
}

// Set writes a parameter into the innermost frame. A nil value clears
// the parameter for the current scope.
// Complexity: O(1)
func (c *Context) Set(key string, value interface{}) {
	top := c.frames[len(c.frames)-1]
	if value == nil {
		top[key] = cleared
		return
	}
	top[key] = value
}

// Get looks up a parameter, innermost frame first. A cleared entry
// stops the walk and reports absence.
// Complexity: O(depth)
func (c *Context) Get(key string) (interface{}, bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		v, ok := c.frames[i][key]
		if !ok {
			continue
		}
		if _, isCleared := v.(clearedMarker); isCleared {
			return nil, false
		}

		return v, true
	}

	return nil, false
}

// String returns the parameter as a string, or "" when absent or not a
// string value.
func (c *Context) String(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)

	return s
}

// Bool returns the parameter as a bool; absent or non-bool is false.
func (c *Context) Bool(key string) bool {
	v, ok := c.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)

	return b
}

// Snapshot returns the effective visible parameters as a flat map,
// innermost values winning. For diagnostics and tests.
// Complexity: O(total entries)
func (c *Context) Snapshot() map[string]interface{} {
	out := make(map[string]interface{})
	for _, frame := range c.frames {
		for k, v := range frame {
			if _, isCleared := v.(clearedMarker); isCleared {
				delete(out, k)
				continue
			}
			out[k] = v
		}
	}

	return out
}
