package main

import (
	"fmt"
	"os"

	"github.com/osuushi/geokit/internal/cli"
)

// Demo of the geometry toolkit. Points are read on stdin as newline separated
// "x y" pairs, with blocks of points separated by an extra newline. See
// `geokit --help` for the commands.
func main() {
	if err := cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "geokit:", err)
		os.Exit(1)
	}
}
