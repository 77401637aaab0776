package main

import (
	"fmt"
	"os"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func cmdAddfs(args []string) error {
	image, source := args[0], args[1]

	payload, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return zvfs.NewError(zvfs.KindNotFound, "addfs", err)
		}
		return zvfs.NewError(zvfs.KindHostIo, "addfs", err)
	}

	if err := zvfs.Add(image, source, payload); err != nil {
		return err
	}
	fmt.Printf("File %s was added to the file system %s\n", source, image)
	return nil
}
