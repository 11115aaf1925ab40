// Package types contains small contracts shared by the module's value types.
package types

import "io"

// Renderer is implemented by values that can write their canonical string
// form to a writer.
type Renderer interface {
	// RenderTo writes the value to w and reports the number of bytes written.
	RenderTo(w io.Writer) (int, error)
}

// Equalable is implemented by values that define their own equality.
type Equalable interface {
	Equal(val any) bool
}

// Cloneable is implemented by values that can deep-copy themselves.
type Cloneable[T any] interface {
	Clone() T
}

// ValidFlag is implemented by values that can report their own syntactic validity.
type ValidFlag interface {
	IsValid() bool
}
