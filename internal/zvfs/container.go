package zvfs

import (
	"os"

	"golang.org/x/xerrors"
)

// Container is an open zvfs image. All positional addressing is derived
// from the format constants; a Container never needs to re-derive them
// from a potentially-tampered header.
type Container struct {
	f    *os.File
	path string
}

// Open opens an existing container for the given os.OpenFile flag
// combination (e.g. os.O_RDONLY, or os.O_RDWR for mutating operations).
// It fails with KindNotFound if path does not exist and KindMalformed if
// the header fails validation.
func Open(path string, flag int) (*Container, error) {
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newErr("Open", KindNotFound, err)
		}
		return nil, newErr("Open", KindHostIo, err)
	}
	c := &Container{f: f, path: path}
	h, err := c.ReadHeader()
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := h.Validate(); err != nil {
		f.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the underlying file handle.
func (c *Container) Close() error {
	return c.f.Close()
}

// Path returns the host filesystem path the container was opened from.
func (c *Container) Path() string { return c.path }

// Size reports the host file size in bytes.
func (c *Container) Size() (int64, error) {
	fi, err := c.f.Stat()
	if err != nil {
		return 0, newErr("Size", KindHostIo, err)
	}
	return fi.Size(), nil
}

// ReadHeader reads and decodes the header at offset 0.
func (c *Container) ReadHeader() (Header, error) {
	var buf [HeaderSize]byte
	if _, err := c.f.ReadAt(buf[:], 0); err != nil {
		return Header{}, newErr("ReadHeader", KindHostIo, err)
	}
	return UnpackHeader(buf[:])
}

// WriteHeader encodes and writes h at offset 0.
func (c *Container) WriteHeader(h Header) error {
	buf, err := PackHeader(h)
	if err != nil {
		return err
	}
	if _, err := c.f.WriteAt(buf[:], 0); err != nil {
		return newErr("WriteHeader", KindHostIo, err)
	}
	return nil
}

// ReadEntries reads all MaxFiles entry frames from the entry table, in
// slot order.
func (c *Container) ReadEntries() ([MaxFiles]Entry, error) {
	var entries [MaxFiles]Entry
	buf := make([]byte, MaxFiles*EntrySize)
	if _, err := c.f.ReadAt(buf, FileTableOffset); err != nil {
		return entries, newErr("ReadEntries", KindHostIo, err)
	}
	for i := 0; i < MaxFiles; i++ {
		e, err := UnpackEntry(buf[i*EntrySize : (i+1)*EntrySize])
		if err != nil {
			return entries, err
		}
		entries[i] = e
	}
	return entries, nil
}

// WriteEntry encodes and writes e at the given slot index.
func (c *Container) WriteEntry(index int, e Entry) error {
	buf, err := PackEntry(e)
	if err != nil {
		return err
	}
	if _, err := c.f.WriteAt(buf[:], int64(FileTableOffset+index*EntrySize)); err != nil {
		return newErr("WriteEntry", KindHostIo, err)
	}
	return nil
}

// ReadData reads exactly length bytes starting at offset start within
// the data region.
func (c *Container) ReadData(start, length uint32) ([]byte, error) {
	buf := make([]byte, length)
	if length == 0 {
		return buf, nil
	}
	if _, err := c.f.ReadAt(buf, int64(start)); err != nil {
		return nil, newErr("ReadData", KindHostIo, err)
	}
	return buf, nil
}

// WriteDataAt writes b at the given offset within the data region.
func (c *Container) WriteDataAt(offset uint32, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := c.f.WriteAt(b, int64(offset)); err != nil {
		return newErr("WriteDataAt", KindHostIo, err)
	}
	return nil
}

// firstEmptySlot scans entries in order and returns the index of the
// first empty slot, or -1 with KindNoFreeSlot if none exists.
func firstEmptySlot(entries [MaxFiles]Entry) (int, error) {
	for i, e := range entries {
		if e.IsEmpty() {
			return i, nil
		}
	}
	return -1, newErr("firstEmptySlot", KindNoFreeSlot, xerrors.New("all slots occupied"))
}

// findByName scans entries (live and deleted) for the one whose 32-byte
// padded name equals want. It fails with KindNotFound if absent.
func findByName(entries [MaxFiles]Entry, want [32]byte) (int, error) {
	for i, e := range entries {
		if e.IsEmpty() {
			continue
		}
		if e.Name == want {
			return i, nil
		}
	}
	return -1, newErr("findByName", KindNotFound, xerrors.New("no matching entry"))
}
