package zvfs

import (
	"os"

	"golang.org/x/xerrors"
)

// FileInfo is one row of a listing: everything List reports about a
// live entry.
type FileInfo struct {
	Name    string
	Length  uint32
	Created int64
}

// List returns every live entry in slot order, skipping empty and
// deleted slots. It fails with KindEmpty if no live entry exists.
func List(path string) ([]FileInfo, error) {
	c, err := Open(path, os.O_RDONLY)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	entries, err := c.ReadEntries()
	if err != nil {
		return nil, err
	}

	var out []FileInfo
	for _, e := range entries {
		if !e.IsLive() {
			continue
		}
		out = append(out, FileInfo{
			Name:    e.Filename(),
			Length:  e.Length,
			Created: int64(e.Created),
		})
	}
	if len(out) == 0 {
		return nil, newErr("List", KindEmpty, xerrors.New("no live entries"))
	}
	return out, nil
}
