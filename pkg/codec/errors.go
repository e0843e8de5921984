// Package codec wires third-party and standard-library image decoders
// (PNG, JPEG, EXR, WebP, and a set of STB-fallback formats) into
// provider.Provider, each registered with the dispatcher in pkg/provider
// by extension. Every adapter decodes eagerly into an owned in-memory
// provider; none of these formats support partial or streamed decode.
package codec

import "errors"

// Read-side error taxonomy.
var (
	ErrCantOpen          = errors.New("codec: cannot open stream")
	ErrInvalidType       = errors.New("codec: signature does not match this format")
	ErrInternal          = errors.New("codec: internal decode error")
	ErrUnexpectedEnd     = errors.New("codec: unexpected end of stream")
	ErrUnsupportedFormat = errors.New("codec: unsupported format or feature")
	ErrCantRepresent     = errors.New("codec: shape incompatible with the provider model")
	ErrEmpty             = errors.New("codec: zero dimension or no parseable channels")
)

// Write-side error taxonomy.
var (
	ErrCantWrite = errors.New("codec: cannot write output")
	ErrReadError = errors.New("codec: provider returned unexpected size")
)
