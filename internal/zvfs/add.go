package zvfs

import (
	"os"
	"time"

	"golang.org/x/xerrors"
)

// nowUnix is overridable by tests that need a deterministic Created
// timestamp.
var nowUnix = func() int64 { return time.Now().Unix() }

// Add stores payload under name in the container at path. It fails
// with KindNameTooLong if name doesn't fit the name field,
// KindDuplicateName if name already names a live or deleted entry, or
// KindNoFreeSlot if every entry-table slot is occupied.
func Add(path, name string, payload []byte) error {
	encoded, err := encodeName(name)
	if err != nil {
		return err
	}

	c, err := Open(path, os.O_RDWR)
	if err != nil {
		return err
	}
	defer c.Close()

	h, err := c.ReadHeader()
	if err != nil {
		return err
	}
	entries, err := c.ReadEntries()
	if err != nil {
		return err
	}

	slot, err := firstEmptySlot(entries)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if !e.IsEmpty() && e.Name == encoded {
			return newErr("Add", KindDuplicateName, xerrors.Errorf("%q already present", name))
		}
	}

	start := h.NextFreeOffset
	length := uint32(len(payload))
	pad := padded(length)

	if err := c.WriteDataAt(start, payload); err != nil {
		return err
	}
	if padBytes := pad - length; padBytes > 0 {
		if err := c.WriteDataAt(start+length, make([]byte, padBytes)); err != nil {
			return err
		}
	}

	entry := Entry{
		Name:    encoded,
		Start:   start,
		Length:  length,
		Created: uint64(nowUnix()),
	}
	if err := c.WriteEntry(slot, entry); err != nil {
		return err
	}

	h.FileCount++
	h.NextFreeOffset = start + pad
	return c.WriteHeader(h)
}
