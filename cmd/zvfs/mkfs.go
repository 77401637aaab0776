package main

import (
	"fmt"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func cmdMkfs(args []string) error {
	path := args[0]

	if zvfs.Exists(path) {
		if err := confirmOverwriteOrAbort(path); err != nil {
			return err
		}
	}

	if err := zvfs.Create(path); err != nil {
		return err
	}
	fmt.Printf("File system %s was created\n", path)
	return nil
}
