package stream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// ReadMemoryMap gives access to the full contents of a Read stream as one
// byte slice. Construction picks, in order: (1) the buffer directly, if
// the stream is already memory-backed; (2) if the stream is file-backed,
// an OS memory map of the underlying file whose bytes are copied into an
// owned buffer (Data does not alias the mapping, and this tier is taken
// even when the caller forbids copying); (3) unless the caller forbids
// it, a copy of the whole stream into a owned buffer.
//
// Release returns ownership of the original stream and unmaps any
// OS-level mapping; Data is invalid to use afterwards.
type ReadMemoryMap struct {
	data    []byte
	mapSize int64
	mmapped *mmap.ReaderAt
	stream  Reader
}

// NewReadMemoryMap takes ownership of r. On any returned error, r is
// left usable and ownership stays with the caller.
func NewReadMemoryMap(r Reader, failOnCopy bool) (*ReadMemoryMap, error) {
	if mr, ok := r.(*MemoryReader); ok {
		buf := mr.Buffer()
		return &ReadMemoryMap{data: buf, mapSize: int64(len(buf)), stream: r}, nil
	}

	if fr, ok := r.(*FileReader); ok {
		if m, err := mmapFile(fr, r); err == nil {
			return m, nil
		}
		// Mapping the file failed (e.g. an unusual FILE-like source);
		// fall through to the generic copy path rather than erroring.
	}

	if failOnCopy {
		return nil, errors.New("stream: cannot memory-map this reader without copying")
	}

	if err := r.Seek(0, SeekEnd); err != nil {
		return nil, err
	}
	size, err := r.Address()
	if err != nil {
		return nil, err
	}
	if err := r.Seek(0, SeekSet); err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	if err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("stream: copy into memory map: %w", err)
	}

	return &ReadMemoryMap{data: buf, mapSize: int64(size), stream: r}, nil
}

func mmapFile(fr *FileReader, owner Reader) (*ReadMemoryMap, error) {
	ra, err := mmap.Open(fr.File().Name())
	if err != nil {
		return nil, err
	}

	size := int64(ra.Len())
	buf := make([]byte, size)
	if _, err := ra.ReadAt(buf, 0); err != nil && !errors.Is(err, io.EOF) {
		ra.Close()
		return nil, err
	}

	return &ReadMemoryMap{data: buf, mapSize: pageAlign(size), mmapped: ra, stream: owner}, nil
}

var pageSize = int64(os.Getpagesize())

// pageAlign rounds size up to the next multiple of the OS page size, the
// granularity an mmap'd region is actually reserved at. A zero-length
// file still occupies one page once mapped.
func pageAlign(size int64) int64 {
	if size == 0 {
		return pageSize
	}
	return (size + pageSize - 1) / pageSize * pageSize
}

// Data returns the mapped bytes. Valid until Release is called.
func (m *ReadMemoryMap) Data() []byte { return m.data }

// Size returns the logical size of the mapped data.
func (m *ReadMemoryMap) Size() int64 { return int64(len(m.data)) }

// MapSize returns the size of the underlying mapping, which may exceed
// Size when the platform maps in page-sized granules.
func (m *ReadMemoryMap) MapSize() int64 { return m.mapSize }

// Release unmaps any OS-level mapping and returns the original stream
// to the caller.
func (m *ReadMemoryMap) Release() Reader {
	if m.mmapped != nil {
		m.mmapped.Close()
		m.mmapped = nil
	}
	s := m.stream
	m.stream = nil
	m.data = nil
	return s
}
