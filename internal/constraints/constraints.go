// Package constraints provides generic type constraints shared across the module.
package constraints

// Byteseq is satisfied by any UTF-8 byte sequence, string or []byte alike.
type Byteseq interface {
	~string | ~[]byte
}
