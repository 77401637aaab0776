package zvfs

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/xerrors"
)

// Entry is the 64-byte little-endian record describing one slot of the
// entry table. An all-zero Name means the slot is empty.
type Entry struct {
	Name      [32]byte
	Start     uint32
	Length    uint32
	Type      uint8
	Flag      uint8
	Reserved0 uint16
	Created   uint64
	Reserved1 [12]byte
}

// flagLive and flagDeleted are the two meaningful values of Entry.Flag.
const (
	flagLive    = 0
	flagDeleted = 1
)

// PackEntry serializes e into an exact EntrySize-byte frame.
func PackEntry(e Entry) ([EntrySize]byte, error) {
	var out [EntrySize]byte
	buf := bytes.NewBuffer(out[:0])
	if err := binary.Write(buf, binary.LittleEndian, e); err != nil {
		return out, newErr("PackEntry", KindMalformed, err)
	}
	copy(out[:], buf.Bytes())
	return out, nil
}

// UnpackEntry decodes an EntrySize-byte frame into an Entry. It fails
// with KindMalformed if b is not exactly EntrySize bytes.
func UnpackEntry(b []byte) (Entry, error) {
	var e Entry
	if len(b) != EntrySize {
		return e, newErr("UnpackEntry", KindMalformed, xerrors.Errorf("want %d bytes, got %d", EntrySize, len(b)))
	}
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &e); err != nil {
		return e, newErr("UnpackEntry", KindMalformed, err)
	}
	return e, nil
}

// IsEmpty reports whether the slot holding e is empty, i.e. its name is
// all zero bytes.
func (e Entry) IsEmpty() bool {
	return e.Name == [32]byte{}
}

// IsLive reports whether e is a non-empty entry whose file has not been
// soft-deleted.
func (e Entry) IsLive() bool {
	return !e.IsEmpty() && e.Flag == flagLive
}

// IsDeleted reports whether e is a non-empty, soft-deleted entry.
func (e Entry) IsDeleted() bool {
	return !e.IsEmpty() && e.Flag == flagDeleted
}

// Filename decodes e's name field, trimming the trailing NUL padding.
func (e Entry) Filename() string {
	raw := e.Name[:]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}

// encodeName validates name's length and returns the 32-byte NUL-padded
// form stored in an Entry. It fails with KindNameTooLong if the UTF-8
// encoding of name exceeds MaxNameBytes.
func encodeName(name string) ([32]byte, error) {
	var out [32]byte
	if len(name) > MaxNameBytes {
		return out, newErr("encodeName", KindNameTooLong, xerrors.Errorf("%q is %d bytes, max is %d", name, len(name), MaxNameBytes))
	}
	copy(out[:], name)
	return out, nil
}

