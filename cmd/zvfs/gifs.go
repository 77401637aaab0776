package main

import (
	"fmt"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func cmdGifs(args []string) error {
	st, err := zvfs.StatContainer(args[0])
	if err != nil {
		return err
	}
	fmt.Printf(
		"File System: %s,\nNon-deleted files: %d,\nFree entries: %d,\nDeleted files: %d,\nTotal system size: %d bytes\n",
		st.Path, st.FileCount, st.FreeEntries, st.DeletedFiles, st.ContainerSize,
	)
	return nil
}
