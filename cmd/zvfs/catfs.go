package main

import (
	"os"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func cmdCatfs(args []string) error {
	data, err := zvfs.Cat(args[0], args[1])
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return zvfs.NewError(zvfs.KindHostIo, "catfs", err)
	}
	return nil
}
