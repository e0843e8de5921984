// Command imgconv converts and inspects images across the formats
// pkg/codec, pkg/ktx, and pkg/ktx2 know how to read and write.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/larkspur-oss/imgio/pkg/codec"
	"github.com/larkspur-oss/imgio/pkg/fileio"
	"github.com/larkspur-oss/imgio/pkg/ktx"
	"github.com/larkspur-oss/imgio/pkg/ktx2"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"

	"github.com/larkspur-oss/imgio/internal/supercompress"
)

var (
	mode       string
	inputPath  string
	outputPath string
	scheme     string
)

func init() {
	flag.StringVar(&mode, "mode", "", "Operation mode: convert, info")
	flag.StringVar(&inputPath, "input", "", "Input image path")
	flag.StringVar(&outputPath, "output", "", "Output image path (convert mode)")
	flag.StringVar(&scheme, "scheme", "none", "KTX2 supercompression scheme: none, zlib, zstd (convert mode, .ktx2 output only)")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if inputPath == "" {
		flag.Usage()
		return fmt.Errorf("input is required")
	}

	switch mode {
	case "convert":
		return runConvert()
	case "info":
		return runInfo()
	default:
		flag.Usage()
		return fmt.Errorf("mode must be 'convert' or 'info'")
	}
}

func runInfo() error {
	p, err := fileio.LoadImage(inputPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer p.Close()

	size := p.Size()
	fmt.Printf("path:        %s\n", inputPath)
	fmt.Printf("size:        %dx%dx%d\n", size.X, size.Y, size.Z)
	fmt.Printf("format:      %v\n", p.Format())
	fmt.Printf("mip levels:  %d\n", p.MipCount())
	fmt.Printf("layers:      %d\n", p.LayerCount())
	fmt.Printf("cubemap:     %v\n", p.Cubemap())
	return nil
}

func runConvert() error {
	if outputPath == "" {
		return fmt.Errorf("convert mode requires -output")
	}

	p, err := fileio.LoadImage(inputPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer p.Close()

	w, err := stream.CreateFileWriter(outputPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer w.Close()

	switch ext := strings.ToLower(filepath.Ext(outputPath)); ext {
	case ".ktx":
		if err := ktx.Write(w, p); err != nil {
			return fmt.Errorf("write ktx: %w", err)
		}
	case ".ktx2":
		opts, err := ktx2WriteOptions()
		if err != nil {
			return err
		}
		if err := ktx2.Write(w, p, opts); err != nil {
			return fmt.Errorf("write ktx2: %w", err)
		}
	case ".png":
		if err := requireUnlayered(p); err != nil {
			return err
		}
		if err := codec.WritePNG(w, p); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output extension %q", ext)
	}

	fmt.Printf("Converted %s (%v) -> %s\n", inputPath, p.Format(), outputPath)
	return nil
}

func ktx2WriteOptions() (ktx2.WriteOptions, error) {
	switch strings.ToLower(scheme) {
	case "", "none":
		return ktx2.WriteOptions{Scheme: supercompress.None}, nil
	case "zlib":
		return ktx2.WriteOptions{Scheme: supercompress.Zlib, Level: supercompress.DefaultZlibLevel}, nil
	case "zstd":
		return ktx2.WriteOptions{Scheme: supercompress.Zstd}, nil
	default:
		return ktx2.WriteOptions{}, fmt.Errorf("unknown -scheme %q", scheme)
	}
}

func requireUnlayered(p provider.Provider) error {
	if p.LayerCount() != 1 || p.Size().Z != 1 {
		return fmt.Errorf("PNG output only supports a single layer and slice, got %d layers, depth %d", p.LayerCount(), p.Size().Z)
	}
	return nil
}
