package provider

import (
	"fmt"
	"strings"

	"github.com/larkspur-oss/imgio/pkg/imglog"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// Probe attempts to decode a read stream as one image format. On
// success it consumes the stream and returns a Provider. On failure it
// must leave the stream's position unconsumed; the dispatcher reseeks to
// 0 before trying the next probe regardless, so a probe does not need to
// restore position itself.
type Probe struct {
	Name string
	// Extensions this probe is preferred for, without the leading dot.
	Extensions []string
	Open       func(r stream.Reader) (Provider, error)
}

var probes []Probe

// Register adds a probe to the dispatch table. Codec adapter packages
// call this from an init func so that importing them for side effect
// wires them into Load.
func Register(p Probe) {
	probes = append(probes, p)
}

// Load tries every registered probe against r, biased by ext (a
// filename extension without the dot, case-insensitive, may be empty),
// and returns the first successful provider.
func Load(r stream.Reader, ext string) (Provider, error) {
	ordered := orderProbes(ext)
	if len(ordered) == 0 {
		return nil, fmt.Errorf("provider: no codec probes registered")
	}

	var lastErr error
	for _, p := range ordered {
		if err := r.Seek(0, stream.SeekSet); err != nil {
			return nil, fmt.Errorf("provider: reseek before probe %s: %w", p.Name, err)
		}
		prov, err := p.Open(r)
		if err == nil {
			return prov, nil
		}
		imglog.Logger().Debug("probe failed", "probe", p.Name, "error", err)
		lastErr = err
	}
	return nil, fmt.Errorf("provider: no probe recognized the stream, last error: %w", lastErr)
}

func orderProbes(ext string) []Probe {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return probes
	}

	ordered := make([]Probe, 0, len(probes))
	var rest []Probe
	for _, p := range probes {
		if hasExt(p, ext) {
			ordered = append(ordered, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(ordered, rest...)
}

func hasExt(p Probe, ext string) bool {
	for _, e := range p.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
