package mmfio

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestOpenReadsFileContents(t *testing.T) {
	data := []byte("hello world test data for mmfio")
	path := writeTestFile(t, "test.dat", data)

	f, err := Open(path, "r")
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, int64(len(data)), f.Size())
	require.True(t, bytes.Equal(f.Data(), data), "mapped bytes differ from on-disk content")
}

func TestOpenNonexistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.dat")

	f, err := Open(path, "r")
	require.Nil(t, f)
	require.Error(t, err)
	require.Equal(t, ErrOpen, Code(err))

	// The OS diagnostic must be embedded in the message.
	var perr *fs.PathError
	require.ErrorAs(t, err, &perr)
	require.Contains(t, err.Error(), "could not open file")
	require.Contains(t, LastError(), "could not open file")
}

func TestOpenEmptyFile(t *testing.T) {
	path := writeTestFile(t, "empty.dat", nil)

	f, err := Open(path, "r")
	require.Nil(t, f)
	require.True(t, IsEmptyFile(err))
	require.Contains(t, err.Error(), "file is empty")
	require.Contains(t, LastError(), "file is empty")
}

func TestUnsupportedModes(t *testing.T) {
	data := []byte("some content")
	path := writeTestFile(t, "test.dat", data)

	for _, mode := range []string{"w", "rw", "wr", "", "x", "w+"} {
		f, err := Open(path, mode)
		require.Nilf(t, f, "mode %q must not produce a handle", mode)
		require.Truef(t, IsInvalidMode(err), "mode %q: got %v", mode, err)
		require.Contains(t, LastError(), "unsupported open mode")
	}
}

func TestModeGatePrecedesOpen(t *testing.T) {
	// A bad mode on a nonexistent path must fail with the mode error,
	// proving the file is never touched.
	path := filepath.Join(t.TempDir(), "does-not-exist.dat")

	f, err := Open(path, "w")
	require.Nil(t, f)
	require.Equal(t, ErrInvalidMode, Code(err))
}

func TestLastErrorSemantics(t *testing.T) {
	lastErr.mu.Lock()
	lastErr.msg = ""
	lastErr.mu.Unlock()
	require.Empty(t, LastError())

	// First failure populates the slot.
	_, err := Open(filepath.Join(t.TempDir(), "missing.dat"), "r")
	require.Error(t, err)
	first := LastError()
	require.Equal(t, err.Error(), first)

	// A later failure overwrites it, not appends.
	path := writeTestFile(t, "empty.dat", nil)
	_, err = Open(path, "r")
	require.Error(t, err)
	second := LastError()
	require.Equal(t, err.Error(), second)
	require.NotEqual(t, first, second)
	require.NotContains(t, second, first)
}

func TestClose(t *testing.T) {
	path := writeTestFile(t, "test.dat", []byte("close test"))

	f, err := Open(path, "r")
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.Nil(t, f.Data())
	require.Zero(t, f.Size())

	// Double close is a safe no-op.
	require.NoError(t, f.Close())
}

func TestOpenCloseCycles(t *testing.T) {
	// A leaked descriptor or handle per cycle would exhaust OS limits
	// well before 10k iterations.
	path := writeTestFile(t, "test.dat", []byte("cycle test data"))

	for i := 0; i < 10000; i++ {
		f, err := Open(path, "r")
		require.NoError(t, err, "iteration %d", i)
		require.NoError(t, f.Close(), "iteration %d", i)
	}
}

func TestLastByteMatchesConventionalRead(t *testing.T) {
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(i * 31)
	}
	path := writeTestFile(t, "test.dat", data)

	want, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := Open(path, "r")
	require.NoError(t, err)
	defer f.Close()

	n := f.Size()
	require.Equal(t, want[n-1], f.Data()[n-1])
	require.Equal(t, want[n-1], f.At(int(n-1)))
}

func TestReadAt(t *testing.T) {
	data := []byte("0123456789abcdef")
	path := writeTestFile(t, "test.dat", data)

	f, err := Open(path, "r")
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 4)
	n, err := f.ReadAt(buf, 10)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("abcd"), buf)

	// Short read at the tail returns io.EOF.
	n, err = f.ReadAt(buf, int64(len(data))-2)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("ef"), buf[:n])

	_, err = f.ReadAt(buf, -1)
	require.Error(t, err)

	_, err = f.ReadAt(buf, int64(len(data))+1)
	require.Error(t, err)
}

func TestReadAtAfterClose(t *testing.T) {
	path := writeTestFile(t, "test.dat", []byte("content"))

	f, err := Open(path, "r")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = f.ReadAt(make([]byte, 1), 0)
	require.True(t, IsNotMapped(err))
}

func TestAdvise(t *testing.T) {
	path := writeTestFile(t, "test.dat", make([]byte, 4096))

	f, err := Open(path, "r")
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.AdviseSequential())
	require.NoError(t, f.AdviseRandom())
	require.NoError(t, f.AdviseWillNeed())
	require.NoError(t, f.AdviseDontNeed())
}

func TestLockUnlock(t *testing.T) {
	path := writeTestFile(t, "test.dat", make([]byte, 4096))

	f, err := Open(path, "r")
	require.NoError(t, err)
	defer f.Close()

	// mlock can fail under RLIMIT_MEMLOCK; only verify the pair when
	// the environment permits locking at all.
	if err := f.Lock(); err != nil {
		t.Skipf("page locking not permitted here: %v", err)
	}
	require.NoError(t, f.Unlock())
}

func TestAdviseAfterClose(t *testing.T) {
	path := writeTestFile(t, "test.dat", []byte("content"))

	f, err := Open(path, "r")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.True(t, IsNotMapped(f.Advise(0)))
	require.True(t, IsNotMapped(f.Lock()))
	require.True(t, IsNotMapped(f.Unlock()))
}
