package main

import (
	"fmt"

	"github.com/google/renameio"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func cmdGetfs(args []string) error {
	image, name := args[0], args[1]

	data, err := zvfs.Extract(image, name)
	if err != nil {
		return err
	}

	dest, err := resolveExtractionDestination(name)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(dest, data, 0o644); err != nil {
		return zvfs.NewError(zvfs.KindHostIo, "getfs", err)
	}
	fmt.Printf("File %s was retrieved from the file system %s to the disk\n", dest, image)
	return nil
}
