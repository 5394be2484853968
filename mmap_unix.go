//go:build unix

package mmfio

import (
	"os"

	"golang.org/x/sys/unix"
)

// openMapped performs the POSIX acquisition sequence:
// open the file, stat it, reject zero length, mmap the whole region.
// Each failing step releases everything acquired by earlier steps.
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

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		f.Close()
		return nil, WrapError(ErrMmap, err)
	}

	return &File{
		data: data,
		f:    f,
		size: size,
	}, nil
}

// Close releases the mapped view, then the underlying file.
// Close on an already-closed handle is a no-op.
func (f *File) Close() error {
	if f.data == nil {
		return nil
	}

	err := unix.Munmap(f.data)
	f.data = nil
	f.size = 0

	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	f.f = nil
	return err
}

// Advise provides hints to the kernel about memory usage patterns.
func (f *File) Advise(advice int) error {
	if f.data == nil {
		return NewError(ErrNotMapped)
	}
	return unix.Madvise(f.data, advice)
}

// AdviseSequential hints that pages will be accessed sequentially.
func (f *File) AdviseSequential() error {
	return f.Advise(unix.MADV_SEQUENTIAL)
}

// AdviseRandom hints that pages will be accessed randomly.
func (f *File) AdviseRandom() error {
	return f.Advise(unix.MADV_RANDOM)
}

// AdviseWillNeed hints that pages will be needed soon.
func (f *File) AdviseWillNeed() error {
	return f.Advise(unix.MADV_WILLNEED)
}

// AdviseDontNeed hints that pages won't be needed soon.
func (f *File) AdviseDontNeed() error {
	return f.Advise(unix.MADV_DONTNEED)
}

// Lock locks the mapped pages in memory (prevents swapping).
func (f *File) Lock() error {
	if f.data == nil {
		return NewError(ErrNotMapped)
	}
	return unix.Mlock(f.data)
}

// Unlock unlocks the mapped pages.
func (f *File) Unlock() error {
	if f.data == nil {
		return NewError(ErrNotMapped)
	}
	return unix.Munlock(f.data)
}
