package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

// pathExists reports whether path names an existing file. A stat
// failure other than "not found" (e.g. a permission error on a parent
// directory) is treated as absent but logged, since silently treating
// it as absent could mean getfs proceeds to overwrite a file it
// couldn't actually see.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if !os.IsNotExist(err) {
		log.Printf("Warning: stat %s before prompting: %v", path, err)
	}
	return false
}

func errNotATerminal(path string) error {
	return fmt.Errorf("%s already exists and stdin is not a terminal; rerun with --yes", path)
}

func errAborted(path string) error {
	return fmt.Errorf("aborted: %s already exists", path)
}

// confirmOverwriteOrAbort implements mkfs's overwrite prompt: OVERWRITE
// proceeds, ABORT (or anything else) exits non-zero without touching
// the file. When --yes was passed, or stdin is not a terminal, it
// short-circuits without reading a line: the former means the caller
// already decided, the latter means there is nobody to answer.
func confirmOverwriteOrAbort(path string) error {
	if *yesFlag {
		return nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return zvfs.NewError(zvfs.KindBadArguments, "mkfs", errNotATerminal(path))
	}

	line := liner.NewLiner()
	defer line.Close()

	answer, err := line.Prompt(
		"The file system " + path + " already exists, do you wish to abort the action or overwrite the file system. Please write 'OVERWRITE' or 'ABORT': ")
	if err != nil {
		return zvfs.NewError(zvfs.KindBadArguments, "mkfs", err)
	}
	if answer != "OVERWRITE" {
		return zvfs.NewError(zvfs.KindBadArguments, "mkfs", errAborted(path))
	}
	return nil
}

// resolveExtractionDestination implements getfs's destination prompt:
// if dest already exists, ask for OVERWRITE or a replacement filename,
// and use any non-OVERWRITE answer verbatim as the new destination.
func resolveExtractionDestination(dest string) (string, error) {
	if !pathExists(dest) {
		return dest, nil
	}
	if *yesFlag {
		return dest, nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", zvfs.NewError(zvfs.KindBadArguments, "getfs", errNotATerminal(dest))
	}

	line := liner.NewLiner()
	defer line.Close()

	answer, err := line.Prompt(
		"The file " + dest + " is already/still on your disk. If you wish to overwrite, then write 'OVERWRITE' or if you want to save it under a different name, then write the new filename with the correct file appendix (e.g. .txt). Write your answer here: ")
	if err != nil {
		return "", zvfs.NewError(zvfs.KindBadArguments, "getfs", err)
	}
	if answer == "OVERWRITE" {
		return dest, nil
	}
	return answer, nil
}
