package zvfs

import (
	"io"
	"os"

	"github.com/google/renameio"
	"github.com/orcaman/writerseeker"
)

// DefragmentResult reports how many deleted entries were dropped and
// how many payload bytes they occupied.
type DefragmentResult struct {
	RemovedCount int
	RemovedBytes uint32
}

// Defragment drops deleted entries, compacts the surviving payloads
// against the front of the data region, and left-packs the entry
// table. It is the only operation that moves payload bytes or
// renumbers slots.
//
// The compacted data region is staged fully in memory with a
// writerseeker.WriterSeeker, then the whole container (header, entry
// table, compacted data) is written out through a renameio-backed temp
// file and atomically renamed over path, the same pattern Create uses.
// That keeps the source container untouched until the replacement is
// complete: a naive in-place copy could overwrite a later keep entry's
// bytes before they've been read, since surviving payloads generally
// shift to lower offsets than the ones before them, and a crash
// mid-rewrite would otherwise leave a half-compacted container behind.
func Defragment(path string) (DefragmentResult, error) {
	c, err := Open(path, os.O_RDONLY)
	if err != nil {
		return DefragmentResult{}, err
	}
	h, err := c.ReadHeader()
	if err != nil {
		c.Close()
		return DefragmentResult{}, err
	}
	entries, err := c.ReadEntries()
	if err != nil {
		c.Close()
		return DefragmentResult{}, err
	}

	var keep []Entry
	var result DefragmentResult
	for _, e := range entries {
		switch {
		case e.IsEmpty():
			continue
		case e.IsDeleted():
			result.RemovedCount++
			result.RemovedBytes += e.Length
		default:
			keep = append(keep, e)
		}
	}

	var staged writerseeker.WriterSeeker
	cursor := uint32(DataStartOffset)
	for i := range keep {
		e := &keep[i]
		data, err := c.ReadData(e.Start, e.Length)
		if err != nil {
			c.Close()
			return DefragmentResult{}, err
		}
		if _, err := staged.Seek(int64(cursor-DataStartOffset), io.SeekStart); err != nil {
			c.Close()
			return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
		}
		if _, err := staged.Write(data); err != nil {
			c.Close()
			return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
		}
		pad := padded(e.Length)
		if padBytes := pad - e.Length; padBytes > 0 {
			if _, err := staged.Write(make([]byte, padBytes)); err != nil {
				c.Close()
				return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
			}
		}
		e.Start = cursor
		cursor += pad
	}

	compacted, err := io.ReadAll(staged.Reader())
	if err != nil {
		c.Close()
		return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
	}
	if err := c.Close(); err != nil {
		return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
	}

	h.FileCount = uint16(len(keep))
	h.DeletedFiles = 0
	h.NextFreeOffset = cursor
	h.FreeEntryOffset = uint32(FileTableOffset + len(keep)*EntrySize)

	f, err := renameio.TempFile("", path)
	if err != nil {
		return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
	}
	defer f.Cleanup()

	hbuf, err := PackHeader(h)
	if err != nil {
		return DefragmentResult{}, err
	}
	if _, err := f.Write(hbuf[:]); err != nil {
		return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
	}

	var empty Entry
	emptyBuf, err := PackEntry(empty)
	if err != nil {
		return DefragmentResult{}, err
	}
	for i := 0; i < MaxFiles; i++ {
		buf := emptyBuf
		if i < len(keep) {
			buf, err = PackEntry(keep[i])
			if err != nil {
				return DefragmentResult{}, err
			}
		}
		if _, err := f.Write(buf[:]); err != nil {
			return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
		}
	}

	if _, err := f.Write(compacted); err != nil {
		return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
	}

	if err := f.CloseAtomicallyReplace(); err != nil {
		return DefragmentResult{}, newErr("Defragment", KindHostIo, err)
	}
	return result, nil
}
