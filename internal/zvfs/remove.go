package zvfs

import (
	"os"

	"golang.org/x/xerrors"
)

// Remove soft-deletes name by flipping its entry's flag byte. Payload
// bytes, start, and length are left untouched; the space is only
// reclaimed by a later Defragment.
func Remove(path, name string) error {
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
	idx, err := findByName(entries, encoded)
	if err != nil {
		return err
	}
	e := entries[idx]
	if e.IsDeleted() {
		return newErr("Remove", KindAlreadyDeleted, xerrors.Errorf("%q already deleted", name))
	}

	e.Flag = flagDeleted
	if err := c.WriteEntry(idx, e); err != nil {
		return err
	}

	h.FileCount--
	h.DeletedFiles++
	return c.WriteHeader(h)
}
