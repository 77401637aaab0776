package main

import (
	"fmt"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func cmdDfrgfs(args []string) error {
	image := args[0]
	res, err := zvfs.Defragment(image)
	if err != nil {
		return err
	}
	fmt.Printf(
		"Defragmented file system: %s,\nRemoved file count: %d,\nFreed bytes: %d\n",
		image, res.RemovedCount, res.RemovedBytes,
	)
	return nil
}
