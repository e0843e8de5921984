// Package fileio provides the convenience file surface on top of
// pkg/provider and pkg/stream: whole-file read/write helpers and
// path-based image loading, plus directory scanning for assembling a
// cubemap or layer stack from loose files on disk.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/larkspur-oss/imgio/pkg/imglog"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// ReadFile reads path's entire contents. Unlike the original's
// never-throw convention, this returns an error rather than an empty
// buffer; callers that want to log-and-continue can do so at the call
// site with imglog.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: read %q: %w", path, err)
	}
	return data, nil
}

// WriteFile writes buffer to path, creating or truncating it.
func WriteFile(path string, buffer []byte) error {
	if err := os.WriteFile(path, buffer, 0o644); err != nil {
		return fmt.Errorf("fileio: write %q: %w", path, err)
	}
	return nil
}

// LoadImage opens the file at path and dispatches it through the
// registered codec probes (pkg/codec's init-registered PNG/JPEG/WebP/
// EXR/STB-fallback adapters and pkg/ktx/pkg/ktx2's container readers),
// biased by the file's extension. The file stays open until the returned
// provider is closed.
func LoadImage(path string) (provider.Provider, error) {
	r, err := stream.OpenFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: LoadImage: %w", err)
	}

	ext := filepath.Ext(path)
	p, err := provider.Load(r, ext)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("fileio: LoadImage %q: %w", path, err)
	}
	return &fileProvider{Provider: p, r: r}, nil
}

// fileProvider closes the file stream a provider reads from once the
// provider itself is closed.
type fileProvider struct {
	provider.Provider
	r *stream.FileReader
}

func (p *fileProvider) Close() error {
	err := p.Provider.Close()
	if cerr := p.r.Close(); err == nil {
		err = cerr
	}
	return err
}

// LoadImageLayers loads every path into its own single-subresource
// provider and presents the ordered set as one layered provider: a
// cubemap of six faces, or a flat layer/slice stack, according to
// cubemap and asSlices. All inputs must share size and format.
func LoadImageLayers(paths []string, cubemap bool, asSlices bool) (provider.Provider, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("fileio: LoadImageLayers: no paths given")
	}
	if cubemap && len(paths) != 6 {
		return nil, fmt.Errorf("fileio: LoadImageLayers: cubemap requires exactly 6 faces, got %d", len(paths))
	}

	layers := make([]provider.Provider, 0, len(paths))
	for _, path := range paths {
		p, err := LoadImage(path)
		if err != nil {
			for _, l := range layers {
				l.Close()
			}
			return nil, err
		}
		layers = append(layers, p)
	}

	merged, err := provider.NewAggregator(layers, cubemap, asSlices)
	if err != nil {
		for _, l := range layers {
			l.Close()
		}
		return nil, fmt.Errorf("fileio: LoadImageLayers: %w", err)
	}
	return merged, nil
}

// ScanFaceFiles looks in dir for six files named "<prefix><face><ext>"
// for face in {+x,-x,+y,-y,+z,-z} (matching the common loose-cubemap
// naming convention) and returns their paths in cubemap face order
// (+X, -X, +Y, -Y, +Z, -Z). An error is returned if any face is
// missing.
func ScanFaceFiles(dir, prefix, ext string) ([]string, error) {
	faces := []string{"+x", "-x", "+y", "-y", "+z", "-z"}
	paths := make([]string, 0, 6)
	for _, face := range faces {
		p := filepath.Join(dir, prefix+face+ext)
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("fileio: ScanFaceFiles: missing face %q: %w", face, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// ScanLayerFiles walks dir (non-recursively) and returns every file
// matching ext, sorted by name, for use as an ordered layer/slice stack.
// A directory with no matching files is reported as an error rather
// than silently producing an empty provider.
func ScanLayerFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fileio: ScanLayerFiles: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != ext {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("fileio: ScanLayerFiles: no %q files in %q", ext, dir)
	}

	sort.Strings(paths)
	imglog.Logger().Debug("scanned layer files", "dir", dir, "count", len(paths))
	return paths, nil
}
