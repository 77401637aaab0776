// Package zvfs implements the on-disk container format: a fixed-capacity
// single-file virtual filesystem with a 64-byte header, a 32-slot entry
// table, and a data region holding 64-byte aligned file payloads.
package zvfs

// Magic identifies a zvfs container. It never changes after mkfs.
var Magic = [8]byte{'Z', 'V', 'F', 'S', 'D', 'S', 'K', '1'}

const (
	// Version is the only format version this package understands.
	Version = 1

	// HeaderSize is the width of the fixed header region, at offset 0.
	HeaderSize = 64

	// EntrySize is the width of one entry frame.
	EntrySize = 64

	// MaxFiles is the number of slots in the entry table.
	MaxFiles = 32

	// DataAlignment is the padding boundary for file payloads.
	DataAlignment = 64

	// MaxNameBytes is the largest UTF-8 encoded filename that fits in a
	// 32-byte name field with room for a trailing NUL.
	MaxNameBytes = 31

	// FileTableOffset is where the entry table begins, directly after
	// the header.
	FileTableOffset = HeaderSize

	// DataStartOffset is where the data region begins, directly after
	// the entry table.
	DataStartOffset = FileTableOffset + MaxFiles*EntrySize
)

// padded returns n rounded up to the next multiple of DataAlignment.
func padded(n uint32) uint32 {
	return (n + DataAlignment - 1) / DataAlignment * DataAlignment
}
