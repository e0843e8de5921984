package stream

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryReaderReadPartial(t *testing.T) {
	r := NewMemoryReader([]byte("hello world"))

	buf := make([]byte, 5)
	n, err := r.ReadPartial(buf)
	if err != nil {
		t.Fatalf("ReadPartial: %v", err)
	}
	if n != 5 || string(buf) != "hello" {
		t.Fatalf("got %q (%d)", buf, n)
	}

	if err := r.Seek(6, SeekSet); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	rest := make([]byte, 5)
	if err := r.Read(rest); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(rest) != "world" {
		t.Fatalf("got %q", rest)
	}
	if !r.Eof() {
		t.Fatalf("expected eof")
	}
}

func TestMemoryReaderShortRead(t *testing.T) {
	r := NewMemoryReader([]byte("ab"))
	buf := make([]byte, 5)
	if err := r.Read(buf); err == nil {
		t.Fatalf("expected short read error")
	}
}

func TestMemoryWriterRoundTrip(t *testing.T) {
	w := NewMemoryWriter()
	if err := w.Write([]byte("abc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Seek(1, SeekSet); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if err := w.Write([]byte("XY")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := string(w.Bytes()); got != "aXY" {
		t.Fatalf("got %q", got)
	}
}

func TestFileReaderWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.bin")

	fw, err := CreateFileWriter(path)
	if err != nil {
		t.Fatalf("CreateFileWriter: %v", err)
	}
	if err := fw.Write([]byte("payload")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	fr, err := OpenFileReader(path)
	if err != nil {
		t.Fatalf("OpenFileReader: %v", err)
	}
	defer fr.Close()

	buf := make([]byte, 7)
	if err := fr.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "payload" {
		t.Fatalf("got %q", buf)
	}

	addr, err := fr.Address()
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	if addr != 7 {
		t.Fatalf("got address %d", addr)
	}
}

func TestReadMemoryMapFromMemoryReader(t *testing.T) {
	data := []byte("mapped contents")
	r := NewMemoryReader(data)

	m, err := NewReadMemoryMap(r, true)
	if err != nil {
		t.Fatalf("NewReadMemoryMap: %v", err)
	}
	if !bytes.Equal(m.Data(), data) {
		t.Fatalf("got %q", m.Data())
	}
	if m.Size() != int64(len(data)) {
		t.Fatalf("got size %d", m.Size())
	}

	released := m.Release()
	if released != Reader(r) {
		t.Fatalf("expected original reader back")
	}
}

func TestReadMemoryMapFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mm.bin")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fr, err := OpenFileReader(path)
	if err != nil {
		t.Fatalf("OpenFileReader: %v", err)
	}

	m, err := NewReadMemoryMap(fr, false)
	if err != nil {
		t.Fatalf("NewReadMemoryMap: %v", err)
	}
	if !bytes.Equal(m.Data(), []byte("0123456789")) {
		t.Fatalf("got %q", m.Data())
	}
	if m.MapSize() < m.Size() {
		t.Fatalf("MapSize %d < Size %d", m.MapSize(), m.Size())
	}
	if m.MapSize()%pageSize != 0 {
		t.Fatalf("MapSize %d is not page-aligned (page size %d)", m.MapSize(), pageSize)
	}

	m.Release()
}
