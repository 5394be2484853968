package mmfio

import (
	"fmt"
	"io"
	"os"
)

// File represents one read-only memory-mapped file.
// The base address and byte length are fixed for the handle's entire
// lifetime; the handle exclusively owns the underlying OS resources.
type File struct {
	data []byte   // Mapped memory region
	f    *os.File // Underlying file, closed last on teardown
	size int64    // Mapped byte length, always > 0 while open
	// Windows-specific mapping-object handle (zero on Unix)
	mapping uintptr
}

// Open maps the named file read-only and returns a handle to it.
//
// The mode string is an unordered set of characters from {'r','w'};
// only pure read capability ("r") is supported. Any other mode fails
// with ErrInvalidMode before any OS resource is touched.
//
// On failure Open returns a nil handle and a *Error whose message embeds
// the OS diagnostic text; the same message is recorded for LastError.
// A failed Open leaves no live resources behind: every step of the
// acquisition sequence releases what earlier steps acquired.
func Open(path, mode string) (*File, error) {
	if ParseMode(mode) != ModeRead {
		err := NewError(ErrInvalidMode)
		setLastError(err)
		return nil, err
	}

	f, err := openMapped(path)
	if err != nil {
		setLastError(err)
		return nil, err
	}
	return f, nil
}

// Data returns the mapped region. The slice is valid until Close;
// after Close it is nil.
func (f *File) Data() []byte {
	return f.data
}

// Size returns the mapped byte length, or 0 after Close.
func (f *File) Size() int64 {
	return f.size
}

// ReadAt implements io.ReaderAt over the mapped region.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if f.data == nil {
		return 0, NewError(ErrNotMapped)
	}
	if off < 0 || off > f.size {
		return 0, fmt.Errorf("mmfio: invalid ReadAt offset %d", off)
	}
	n := copy(p, f.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// At returns the byte at index i of the mapped region.
// It panics if the handle is closed or i is out of range, like indexing
// a byte slice.
func (f *File) At(i int) byte {
	return f.data[i]
}
