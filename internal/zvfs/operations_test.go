package zvfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.zvfs")
	require.NoError(t, Create(path))
	return path
}

func TestCreateProducesExactLayout(t *testing.T) {
	path := newContainer(t)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, b, DataStartOffset)
	require.Equal(t, Magic[:], b[:8])
	for _, by := range b[FileTableOffset:DataStartOffset] {
		require.Zero(t, by)
	}
}

func TestCreateOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.zvfs")
	require.NoError(t, os.WriteFile(path, []byte("not a container"), 0o644))
	require.NoError(t, Create(path))

	st, err := StatContainer(path)
	require.NoError(t, err)
	require.EqualValues(t, 0, st.FileCount)
}

func TestAddExtractRoundTrip(t *testing.T) {
	path := newContainer(t)
	payload := []byte("hello")

	require.NoError(t, Add(path, "a.txt", payload))

	got, err := Extract(path, "a.txt")
	require.NoError(t, err)
	require.Equal(t, payload, got)

	st, err := StatContainer(path)
	require.NoError(t, err)
	require.Equal(t, 1, st.FileCount)
	require.EqualValues(t, DataStartOffset+DataAlignment, st.ContainerSize)
}

func TestAddAdvancesNextFreeOffsetByPaddedLength(t *testing.T) {
	path := newContainer(t)

	require.NoError(t, Add(path, "empty", nil))
	require.NoError(t, Add(path, "exact64", make([]byte, 64)))
	require.NoError(t, Add(path, "over64", make([]byte, 65)))

	c, err := Open(path, os.O_RDONLY)
	require.NoError(t, err)
	defer c.Close()
	h, err := c.ReadHeader()
	require.NoError(t, err)
	require.EqualValues(t, DataStartOffset+0+64+128, h.NextFreeOffset)
}

func TestAddNameTooLong(t *testing.T) {
	path := newContainer(t)
	name := make([]byte, 32)
	for i := range name {
		name[i] = 'x'
	}
	err := Add(path, string(name), []byte("x"))
	require.True(t, Is(err, KindNameTooLong))
}

func TestAddNameExactly31BytesSucceeds(t *testing.T) {
	path := newContainer(t)
	name := make([]byte, 31)
	for i := range name {
		name[i] = 'x'
	}
	require.NoError(t, Add(path, string(name), []byte("x")))
}

func TestAddDuplicateName(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("x")))
	err := Add(path, "a.txt", []byte("y"))
	require.True(t, Is(err, KindDuplicateName))
}

func TestAddDuplicateAgainstDeletedName(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("x")))
	require.NoError(t, Remove(path, "a.txt"))
	err := Add(path, "a.txt", []byte("y"))
	require.True(t, Is(err, KindDuplicateName))
}

func TestAddNoFreeSlot(t *testing.T) {
	path := newContainer(t)
	for i := 0; i < MaxFiles; i++ {
		name := string(rune('a' + i))
		require.NoError(t, Add(path, name, nil))
	}
	err := Add(path, "one-too-many", nil)
	require.True(t, Is(err, KindNoFreeSlot))
}

func TestAddOrderingInvarianceOfMappings(t *testing.T) {
	pathA := filepath.Join(t.TempDir(), "a.zvfs")
	pathB := filepath.Join(t.TempDir(), "b.zvfs")
	require.NoError(t, Create(pathA))
	require.NoError(t, Create(pathB))

	require.NoError(t, Add(pathA, "one", []byte("111")))
	require.NoError(t, Add(pathA, "two", []byte("22")))

	require.NoError(t, Add(pathB, "two", []byte("22")))
	require.NoError(t, Add(pathB, "one", []byte("111")))

	for _, name := range []string{"one", "two"} {
		a, err := Extract(pathA, name)
		require.NoError(t, err)
		b, err := Extract(pathB, name)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestExtractNotFound(t *testing.T) {
	path := newContainer(t)
	_, err := Extract(path, "missing")
	require.True(t, Is(err, KindNotFound))
}

func TestExtractMatchesSoftDeletedEntry(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("hello")))
	require.NoError(t, Remove(path, "a.txt"))

	got, err := Extract(path, "a.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}

func TestRemoveUpdatesCountersNotOffsets(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("hello")))
	require.NoError(t, Add(path, "b.txt", make([]byte, 70)))

	require.NoError(t, Remove(path, "a.txt"))

	c, err := Open(path, os.O_RDONLY)
	require.NoError(t, err)
	defer c.Close()
	h, err := c.ReadHeader()
	require.NoError(t, err)
	require.EqualValues(t, 1, h.FileCount)
	require.EqualValues(t, 1, h.DeletedFiles)
	require.EqualValues(t, DataStartOffset+64+128, h.NextFreeOffset)
}

func TestRemoveAlreadyDeleted(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("x")))
	require.NoError(t, Remove(path, "a.txt"))
	err := Remove(path, "a.txt")
	require.True(t, Is(err, KindAlreadyDeleted))
}

func TestRemoveNotFound(t *testing.T) {
	path := newContainer(t)
	err := Remove(path, "missing")
	require.True(t, Is(err, KindNotFound))
}

func TestListSkipsEmptyAndDeleted(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("hello")))
	require.NoError(t, Add(path, "b.txt", []byte("world!")))
	require.NoError(t, Remove(path, "b.txt"))

	infos, err := List(path)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "a.txt", infos[0].Name)
	require.EqualValues(t, 5, infos[0].Length)
}

func TestListEmptyFails(t *testing.T) {
	path := newContainer(t)
	_, err := List(path)
	require.True(t, Is(err, KindEmpty))

	require.NoError(t, Add(path, "a.txt", []byte("x")))
	require.NoError(t, Remove(path, "a.txt"))
	_, err = List(path)
	require.True(t, Is(err, KindEmpty))
}

func TestCatReadsVerbatim(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "x", nil))
	got, err := Cat(path, "x")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDefragmentEndToEndScenario(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("hello")))
	require.NoError(t, Add(path, "b.txt", make([]byte, 70)))
	require.NoError(t, Remove(path, "a.txt"))

	res, err := Defragment(path)
	require.NoError(t, err)
	require.Equal(t, 1, res.RemovedCount)
	require.EqualValues(t, 5, res.RemovedBytes)

	c, err := Open(path, os.O_RDONLY)
	require.NoError(t, err)
	defer c.Close()

	entries, err := c.ReadEntries()
	require.NoError(t, err)
	require.Equal(t, "b.txt", entries[0].Filename())
	require.EqualValues(t, DataStartOffset, entries[0].Start)
	require.EqualValues(t, 70, entries[0].Length)
	require.True(t, entries[1].IsEmpty())

	h, err := c.ReadHeader()
	require.NoError(t, err)
	require.EqualValues(t, 1, h.FileCount)
	require.EqualValues(t, 0, h.DeletedFiles)
	require.EqualValues(t, DataStartOffset+128, h.NextFreeOffset)

	size, err := c.Size()
	require.NoError(t, err)
	require.EqualValues(t, DataStartOffset+128, size)
}

func TestDefragmentIsIdempotent(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("hello")))
	require.NoError(t, Add(path, "b.txt", make([]byte, 70)))
	require.NoError(t, Remove(path, "a.txt"))

	_, err := Defragment(path)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = Defragment(path)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDefragmentPreservesLiveContent(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("hello")))
	require.NoError(t, Add(path, "b.txt", []byte("world, this is more than sixty four bytes of payload!!")))
	require.NoError(t, Add(path, "c.txt", nil))
	require.NoError(t, Remove(path, "b.txt"))

	before := map[string][]byte{}
	for _, name := range []string{"a.txt", "c.txt"} {
		b, err := Extract(path, name)
		require.NoError(t, err)
		before[name] = b
	}

	_, err := Defragment(path)
	require.NoError(t, err)

	for name, want := range before {
		got, err := Extract(path, name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestStatReportsFreeAndDeletedCounts(t *testing.T) {
	path := newContainer(t)
	require.NoError(t, Add(path, "a.txt", []byte("x")))
	require.NoError(t, Add(path, "b.txt", []byte("y")))
	require.NoError(t, Remove(path, "a.txt"))

	st, err := StatContainer(path)
	require.NoError(t, err)
	require.Equal(t, 1, st.FileCount)
	require.Equal(t, 1, st.DeletedFiles)
	require.Equal(t, MaxFiles-1-1, st.FreeEntries)
}

func TestOpenNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.zvfs"), os.O_RDONLY)
	require.True(t, Is(err, KindNotFound))
}

func TestOpenMalformedMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.zvfs")
	require.NoError(t, os.WriteFile(path, make([]byte, DataStartOffset), 0o644))
	_, err := Open(path, os.O_RDONLY)
	require.True(t, Is(err, KindMalformed))
}
