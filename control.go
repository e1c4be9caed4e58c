// control.go — the Node interface and the panic/recover plumbing that
// realizes spec.md §5's non-local `return` and §7's error propagation.
//
// Ported from the teacher's interpreter_exec.go/interpreter_ops.go idiom
// (returnSig / rtErr / fail / panicRt / runTopWithSource): a runtime
// failure panics with a *RuntimeError, a `return` panics with a
// returnSignal, MethodBody is the only node that recovers a returnSignal,
// and Run is the only place that recovers everything else into a returned
// error. returnSignal deliberately has no Error() method so it can never
// be mistaken for a failure (spec.md §7).
package mython

import "fmt"

// Node is the single operation every AST node exposes (spec.md §4.3).
type Node interface {
	Execute(scope *Scope, ctx Context) ValueHolder
}

// fail aborts the current Run call with a runtime error.
func fail(msg string) {
	panic(&RuntimeError{Msg: msg})
}

// failf is fail with fmt.Sprintf-style formatting.
func failf(format string, args ...any) {
	panic(&RuntimeError{Msg: fmt.Sprintf(format, args...)})
}

// returnSignal carries a Return node's value up to the enclosing
// MethodBody. It is not an error.
type returnSignal struct {
	value ValueHolder
}

// Run executes program against scope and ctx, recovering any panic raised
// during evaluation into a returned error. A returnSignal that escapes all
// the way to Run (a bare `return` outside any method body) is treated as
// ordinary program termination, not a failure.
func Run(program Node, scope *Scope, ctx Context) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case returnSignal:
			// Bare top-level return: finish normally.
		case error:
			err = v
		default:
			panic(r)
		}
	}()
	program.Execute(scope, ctx)
	return nil
}
