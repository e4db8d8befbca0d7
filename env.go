// env.go
//
// The variable store: one flat, session-long mapping from identifier to
// runtime value. It is created once per session, threaded explicitly
// into every Evaluate call, and only mutated by assignment. There is no
// deletion and no nesting; the store only grows or updates.
//
// The store also carries the session's output writer. Print evaluation
// is the single point of program output, and routing it through the
// store keeps Evaluate(store) the whole evaluation contract (and lets
// tests capture output with a bytes.Buffer).
package slate

import (
	"io"
	"os"
)

// Env is the session variable store.
type Env struct {
	table map[string]Value

	// Out receives print output. Defaults to os.Stdout.
	Out io.Writer
}

// NewEnv creates an empty store writing print output to os.Stdout.
func NewEnv() *Env {
	return &Env{table: make(map[string]Value), Out: os.Stdout}
}

// Get retrieves the binding for name or fails with an EvalError.
func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		return v, nil
	}
	return Value{}, &EvalError{Msg: "undefined variable: " + name}
}

// Set binds name to v, inserting or overwriting unconditionally.
func (e *Env) Set(name string, v Value) {
	e.table[name] = v
}

// Len reports the number of bindings (used by tests to check that a
// failed line left the store intact).
func (e *Env) Len() int { return len(e.table) }
