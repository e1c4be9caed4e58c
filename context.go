// context.go — Component I: the Context output-sink interface (spec.md §6).
package mython

import "io"

// Context is the sole I/O boundary the evaluator talks to: a sink that
// receives the entirety of program output, in the exact order produced,
// byte-for-byte (spec.md §6).
type Context interface {
	Output() io.Writer
}

type writerContext struct {
	w io.Writer
}

// NewContext returns a Context that writes straight to w.
func NewContext(w io.Writer) Context {
	return &writerContext{w: w}
}

func (c *writerContext) Output() io.Writer {
	return c.w
}
