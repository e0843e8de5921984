// Package provider defines the capability interface shared by every
// in-memory image, container reader, and external codec adapter: a
// uniform (mip, layer) -> bytes view over a multi-mip, multi-layer,
// possibly-cubemap image.
package provider

import (
	"errors"
	"fmt"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
)

// ErrSubresource is wrapped by out-of-range (mip, layer) requests.
var ErrSubresource = errors.New("provider: subresource out of range")

// Provider is an opaque view over an image's subresources. Implementations
// own either file handles, memory maps, or buffers; releasing one with
// Close frees whatever it owns. BorrowRead's returned span is valid only
// until the next call on the same Provider.
type Provider interface {
	Size() layout.Size
	Format() gpuformat.Format
	MipCount() uint32
	LayerCount() uint32
	Cubemap() bool

	// Read copies the subresource at (mip, layer) into buf, which must be
	// at least SubresourceSize(mip) bytes, and returns the number of
	// bytes written.
	Read(mip, layer uint32, buf []byte) (int, error)

	// BorrowRead returns a read-only view of the subresource at
	// (mip, layer) without copying, when the underlying storage allows
	// it; the span is invalidated by the provider's next call.
	BorrowRead(mip, layer uint32) ([]byte, error)

	Close() error
}

// SubresourceSize returns the byte length of one (mip, layer) of p.
func SubresourceSize(p Provider, mip uint32) (uint64, error) {
	return layout.SizeBytes(p.Size(), mip, p.Format())
}

func checkSubresource(p Provider, mip, layer uint32) error {
	if mip >= p.MipCount() {
		return fmt.Errorf("%w: mip %d >= mipCount %d", ErrSubresource, mip, p.MipCount())
	}
	if layer >= p.LayerCount() {
		return fmt.Errorf("%w: layer %d >= layerCount %d", ErrSubresource, layer, p.LayerCount())
	}
	return nil
}

// validateConstruction enforces the invariants shared by every in-memory
// constructor: size >= 1 in every dimension, and at least one mip/layer.
func validateConstruction(size layout.Size, mipCount, layerCount uint32) error {
	if size.X < 1 || size.Y < 1 || size.Z < 1 {
		return fmt.Errorf("provider: size components must be >= 1, got %+v", size)
	}
	if mipCount < 1 {
		return fmt.Errorf("provider: mipCount must be >= 1")
	}
	if layerCount < 1 {
		return fmt.Errorf("provider: layerCount must be >= 1")
	}
	return nil
}
