package zvfs

import "os"

// Extract locates name by exact 32-byte match and returns its payload
// bytes without mutating the container. A soft-deleted entry still
// matches: the payload is only gone once Defragment reclaims it.
func Extract(path, name string) ([]byte, error) {
	encoded, err := encodeName(name)
	if err != nil {
		return nil, err
	}

	c, err := Open(path, os.O_RDONLY)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	entries, err := c.ReadEntries()
	if err != nil {
		return nil, err
	}
	idx, err := findByName(entries, encoded)
	if err != nil {
		return nil, err
	}
	e := entries[idx]
	return c.ReadData(e.Start, e.Length)
}
