package main

import (
	"fmt"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func cmdRmfs(args []string) error {
	image, name := args[0], args[1]
	if err := zvfs.Remove(image, name); err != nil {
		return err
	}
	fmt.Printf("File %s was removed from the file system %s\n", name, image)
	return nil
}
