// Command zvfs is the CLI shell around the internal/zvfs container
// format: verb dispatch, interactive overwrite/abort prompts, and
// formatting container state for display.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

var (
	debugFlag = flag.Bool("debug", false, "format error messages with additional detail")
	yesFlag   = flag.Bool("yes", false, "assume OVERWRITE for every interactive prompt")
)

type verb struct {
	fn       func(args []string) error
	help     string
	needFile bool // true if the verb takes <image> <file>, false for <image> alone
}

func verbs() map[string]verb {
	return map[string]verb{
		"mkfs":   {fn: cmdMkfs, help: "mkfs <image>          create a new container"},
		"gifs":   {fn: cmdGifs, help: "gifs <image>          print container stats"},
		"addfs":  {fn: cmdAddfs, help: "addfs <image> <file>  add a host file to the container", needFile: true},
		"getfs":  {fn: cmdGetfs, help: "getfs <image> <file>  extract a file to the host filesystem", needFile: true},
		"rmfs":   {fn: cmdRmfs, help: "rmfs <image> <file>   soft-delete a file", needFile: true},
		"lsfs":   {fn: cmdLsfs, help: "lsfs <image>          list live files"},
		"catfs":  {fn: cmdCatfs, help: "catfs <image> <file>  print a file's contents to stdout", needFile: true},
		"dfrgfs": {fn: cmdDfrgfs, help: "dfrgfs <image>        compact deleted entries and payloads"},
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "zvfs [-flags] <command> <image> [<file>]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, v := range verbs() {
		fmt.Fprintf(os.Stderr, "  %s\n", v.help)
	}
}

func funcmain() error {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	name, args := args[0], args[1:]
	v, ok := verbs()[name]
	if !ok {
		usage()
		return zvfs.NewError(zvfs.KindBadArguments, "main", fmt.Errorf("unknown command %q", name))
	}
	want := 1
	if v.needFile {
		want = 2
	}
	if len(args) != want {
		usage()
		return zvfs.NewError(zvfs.KindBadArguments, name, fmt.Errorf("wrong number of arguments"))
	}
	return v.fn(args)
}

func main() {
	if err := funcmain(); err != nil {
		if *debugFlag {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if zvfs.KindOf(err) == zvfs.KindBadArguments {
		return 2
	}
	return 1
}
