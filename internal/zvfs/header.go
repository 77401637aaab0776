package zvfs

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/xerrors"
)

// Header is the 64-byte little-endian record at offset 0 of a container.
// Field order and widths match the on-disk layout exactly; binary.Write
// and binary.Read serialize it field by field, so no struct padding can
// leak into the wire format.
type Header struct {
	Magic           [8]byte
	Version         uint8
	Flags           uint8
	Reserved0       uint16
	FileCount       uint16
	FileCapacity    uint16
	FileEntrySize   uint16
	Reserved1       uint16
	FileTableOffset uint32
	DataStartOffset uint32
	NextFreeOffset  uint32
	FreeEntryOffset uint32
	DeletedFiles    uint16
	Reserved2       [26]byte
}

// NewHeader returns the default header written by Create: an empty
// container with next_free_offset at the start of the data region.
func NewHeader() Header {
	return Header{
		Magic:           Magic,
		Version:         Version,
		FileCapacity:    MaxFiles,
		FileEntrySize:   EntrySize,
		FileTableOffset: FileTableOffset,
		DataStartOffset: DataStartOffset,
		NextFreeOffset:  DataStartOffset,
		FreeEntryOffset: FileTableOffset,
	}
}

// PackHeader serializes h into an exact HeaderSize-byte frame.
func PackHeader(h Header) ([HeaderSize]byte, error) {
	var out [HeaderSize]byte
	buf := bytes.NewBuffer(out[:0])
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return out, newErr("PackHeader", KindMalformed, err)
	}
	copy(out[:], buf.Bytes())
	return out, nil
}

// UnpackHeader decodes a HeaderSize-byte frame into a Header. It fails
// with KindMalformed if b is not exactly HeaderSize bytes.
func UnpackHeader(b []byte) (Header, error) {
	var h Header
	if len(b) != HeaderSize {
		return h, newErr("UnpackHeader", KindMalformed, xerrors.Errorf("want %d bytes, got %d", HeaderSize, len(b)))
	}
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &h); err != nil {
		return h, newErr("UnpackHeader", KindMalformed, err)
	}
	return h, nil
}

// Validate checks the fields that must hold for any container this
// package is willing to operate on: correct magic, version, and the
// three constant offsets.
func (h Header) Validate() error {
	if h.Magic != Magic {
		return newErr("Header.Validate", KindMalformed, xerrors.New("bad magic"))
	}
	if h.Version != Version {
		return newErr("Header.Validate", KindMalformed, xerrors.New("unsupported version"))
	}
	if h.FileTableOffset != FileTableOffset || h.DataStartOffset != DataStartOffset || h.FileEntrySize != EntrySize {
		return newErr("Header.Validate", KindMalformed, xerrors.New("unexpected region offsets"))
	}
	return nil
}

// FreeSlots reports the number of entry-table slots holding neither a
// live nor a deleted entry.
func (h Header) FreeSlots() int {
	return int(h.FileCapacity) - int(h.FileCount) - int(h.DeletedFiles)
}
