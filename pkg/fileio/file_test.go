package fileio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/larkspur-oss/imgio/pkg/codec"
)

func writeTestPNG(t *testing.T, path string, w, h int, fill color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestReadWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	want := []byte{1, 2, 3, 4, 5}

	if err := WriteFile(path, want); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writeTestPNG(t, path, 4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	p, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	defer p.Close()

	size := p.Size()
	if size.X != 4 || size.Y != 4 {
		t.Fatalf("size = %v, want 4x4", size)
	}
}

func TestScanFaceFiles(t *testing.T) {
	dir := t.TempDir()
	faces := []string{"+x", "-x", "+y", "-y", "+z", "-z"}
	for _, f := range faces {
		writeTestPNG(t, filepath.Join(dir, "face"+f+".png"), 2, 2, color.NRGBA{A: 255})
	}

	paths, err := ScanFaceFiles(dir, "face", ".png")
	if err != nil {
		t.Fatalf("ScanFaceFiles: %v", err)
	}
	if len(paths) != 6 {
		t.Fatalf("got %d paths, want 6", len(paths))
	}
}

func TestScanFaceFilesMissing(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "face+x.png"), 2, 2, color.NRGBA{A: 255})

	if _, err := ScanFaceFiles(dir, "face", ".png"); err == nil {
		t.Fatal("expected error for missing faces")
	}
}

func TestLoadImageLayersCubemap(t *testing.T) {
	dir := t.TempDir()
	faces := []string{"+x", "-x", "+y", "-y", "+z", "-z"}
	var paths []string
	for _, f := range faces {
		p := filepath.Join(dir, "face"+f+".png")
		writeTestPNG(t, p, 4, 4, color.NRGBA{R: 1, A: 255})
		paths = append(paths, p)
	}

	prov, err := LoadImageLayers(paths, true, false)
	if err != nil {
		t.Fatalf("LoadImageLayers: %v", err)
	}
	defer prov.Close()

	if !prov.Cubemap() {
		t.Fatal("expected cubemap provider")
	}
	if prov.LayerCount() != 6 {
		t.Fatalf("LayerCount = %d, want 6", prov.LayerCount())
	}
}

func TestScanLayerFilesEmpty(t *testing.T) {
	dir := t.TempDir()
	if _, err := ScanLayerFiles(dir, ".png"); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
