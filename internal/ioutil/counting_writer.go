// Package ioutil provides io helpers for rendering values to writers.
package ioutil

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer, accumulating the number of bytes written
// and the first write error. Follow-up writes after an error are dropped, so
// RenderTo implementations can chain writes without checking each one.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping the given writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := cw.w.Write(p)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return n, cw.err
}

// WriteString writes a string to the underlying writer.
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := io.WriteString(cw.w, s)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return n, cw.err
}

// Fprint writes the arguments with fmt.Fprint.
func (cw *CountingWriter) Fprint(args ...any) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := fmt.Fprint(cw.w, args...)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return n, cw.err
}

// Call invokes fn with the underlying writer, accumulating its result.
func (cw *CountingWriter) Call(fn func(w io.Writer) (int, error)) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := fn(cw.w)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return n, cw.err
}

// Result returns the total number of bytes written and the first error, if any.
func (cw *CountingWriter) Result() (int, error) {
	return cw.num, errtrace.Wrap(cw.err)
}

var cwPool = &sync.Pool{
	New: func() any { return new(CountingWriter) },
}

// GetCountingWriter returns a pooled CountingWriter wrapping w.
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cwPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

// FreeCountingWriter resets the writer and returns it to the pool.
func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	cwPool.Put(cw)
}
