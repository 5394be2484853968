// Package mmfio provides read-only memory-mapped file access with a
// uniform API across Windows and POSIX systems.
//
// A file opened with Open is mapped into the process address space in one
// piece; its contents are then available as an ordinary byte slice instead
// of a stream, with the operating system paging data in on demand.
//
// Key properties:
//   - Read-only mappings of whole files (no write, resize or remap support)
//   - One platform implementation per build, selected by build tags
//   - Each handle exclusively owns its OS resources; Close releases them
//     in reverse acquisition order, and any failure during Open unwinds
//     everything acquired so far
//   - Zero-length files are rejected, never mapped
//
// Basic usage:
//
//	f, err := mmfio.Open("/path/to/file", "r")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	data := f.Data() // valid until Close
//	fmt.Printf("%d bytes, first byte %#x\n", f.Size(), data[0])
package mmfio
