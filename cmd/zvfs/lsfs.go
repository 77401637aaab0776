package main

import (
	"fmt"
	"time"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func cmdLsfs(args []string) error {
	infos, err := zvfs.List(args[0])
	if err != nil {
		return err
	}
	for _, fi := range infos {
		created := time.Unix(fi.Created, 0).Local().Format("2006-01-02 15:04:05")
		fmt.Printf("File Name: %s,\nFile Size: %d bytes,\nCreated: %s\n\n", fi.Name, fi.Length, created)
	}
	return nil
}
