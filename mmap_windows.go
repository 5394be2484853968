//go:build windows

package mmfio

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// openMapped performs the Windows acquisition sequence:
// open the file, stat it, reject zero length, create a mapping object
// sized to the file, map a view of it. Each failing step releases
// everything acquired by earlier steps, in reverse order.
func openMapped(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, WrapError(ErrOpen, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, WrapError(ErrSizeQuery, err)
	}

	size := fi.Size()
	if size == 0 {
		f.Close()
		return nil, NewError(ErrEmptyFile)
	}

	maxSizeHigh := uint32(uint64(size) >> 32)
	maxSizeLow := uint32(size)

	mapping, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, maxSizeHigh, maxSizeLow, nil)
	if err != nil {
		f.Close()
		return nil, WrapError(ErrMappingCreate, err)
	}

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(mapping)
		f.Close()
		return nil, WrapError(ErrMapView, err)
	}

	return &File{
		data:    unsafe.Slice((*byte)(unsafe.Pointer(addr)), size),
		f:       f,
		size:    size,
		mapping: uintptr(mapping),
	}, nil
}

// Close releases the mapped view, then the mapping object, then the
// underlying file, in that order. Close on an already-closed handle is
// a no-op.
func (f *File) Close() error {
	if f.data == nil {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&f.data[0]))
	err := windows.UnmapViewOfFile(addr)
	f.data = nil
	f.size = 0

	if f.mapping != 0 {
		if cerr := windows.CloseHandle(windows.Handle(f.mapping)); err == nil {
			err = cerr
		}
		f.mapping = 0
	}

	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	f.f = nil
	return err
}

// Advise provides hints to the kernel about memory usage patterns.
// Windows has no madvise, so advice is accepted and ignored.
func (f *File) Advise(advice int) error {
	if f.data == nil {
		return NewError(ErrNotMapped)
	}
	return nil
}

// AdviseSequential hints that pages will be accessed sequentially.
func (f *File) AdviseSequential() error {
	return f.Advise(0)
}

// AdviseRandom hints that pages will be accessed randomly.
func (f *File) AdviseRandom() error {
	return f.Advise(0)
}

// AdviseWillNeed hints that pages will be needed soon.
func (f *File) AdviseWillNeed() error {
	return f.Advise(0)
}

// AdviseDontNeed hints that pages won't be needed soon.
func (f *File) AdviseDontNeed() error {
	return f.Advise(0)
}

// Lock locks the mapped pages in memory (prevents swapping).
func (f *File) Lock() error {
	if f.data == nil {
		return NewError(ErrNotMapped)
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&f.data[0])), uintptr(f.size))
}

// Unlock unlocks the mapped pages.
func (f *File) Unlock() error {
	if f.data == nil {
		return NewError(ErrNotMapped)
	}
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&f.data[0])), uintptr(f.size))
}
