package zvfs

import "os"

// Stat is everything gifs reports about a container, read from the
// header alone.
type Stat struct {
	Path          string
	FileCount     int
	FreeEntries   int
	DeletedFiles  int
	ContainerSize int64
}

// StatContainer opens path read-only, reads the header, and reports its
// slot counters and host file size.
func StatContainer(path string) (Stat, error) {
	c, err := Open(path, os.O_RDONLY)
	if err != nil {
		return Stat{}, err
	}
	defer c.Close()

	h, err := c.ReadHeader()
	if err != nil {
		return Stat{}, err
	}
	size, err := c.Size()
	if err != nil {
		return Stat{}, err
	}
	return Stat{
		Path:          path,
		FileCount:     int(h.FileCount),
		FreeEntries:   h.FreeSlots(),
		DeletedFiles:  int(h.DeletedFiles),
		ContainerSize: size,
	}, nil
}
