// Package validation holds the form-style input checks that gate every
// mutating operation. A form runs all of its independent checks in one pass
// and accumulates every applicable message; it never short-circuits and
// never panics. Errors are values handed back to the caller for display.
package validation

import "strings"

// Translator is the opaque message lookup forms render their errors through.
// kv are alternating key/value interpolation pairs, slog style.
type Translator interface {
	T(key string, kv ...any) string
}

// Errors is an ordered, append-only list of human-readable messages collected
// during one validation pass. Empty means valid.
type Errors struct {
	msgs []string
}

func (e *Errors) Add(msg string) {
	e.msgs = append(e.msgs, msg)
}

func (e *Errors) Empty() bool {
	return len(e.msgs) == 0
}

// Messages returns the accumulated messages in the order they were appended.
func (e *Errors) Messages() []string {
	return e.msgs
}

// Error joins the messages so *Errors can travel as a plain error.
func (e *Errors) Error() string {
	return strings.Join(e.msgs, "\n")
}
