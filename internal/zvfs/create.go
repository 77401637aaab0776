package zvfs

import (
	"os"

	"github.com/google/renameio"
)

// Exists reports whether path already names a file. Callers that want
// to prompt before overwriting (the CLI shell's OVERWRITE/ABORT prompt)
// check this themselves before calling Create.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Create writes a fresh container at path: a default header followed by
// MaxFiles all-zero entry frames, for an exact DataStartOffset-byte
// file. It overwrites any existing file at path; callers that want an
// OVERWRITE/ABORT prompt must check Exists themselves first.
//
// The write is atomic: Create never leaves a partially written
// container behind, even if interrupted.
func Create(path string) error {
	f, err := renameio.TempFile("", path)
	if err != nil {
		return newErr("Create", KindHostIo, err)
	}
	defer f.Cleanup()

	hbuf, err := PackHeader(NewHeader())
	if err != nil {
		return err
	}
	if _, err := f.Write(hbuf[:]); err != nil {
		return newErr("Create", KindHostIo, err)
	}

	var empty Entry
	ebuf, err := PackEntry(empty)
	if err != nil {
		return err
	}
	for i := 0; i < MaxFiles; i++ {
		if _, err := f.Write(ebuf[:]); err != nil {
			return newErr("Create", KindHostIo, err)
		}
	}

	if err := f.CloseAtomicallyReplace(); err != nil {
		return newErr("Create", KindHostIo, err)
	}
	return nil
}
