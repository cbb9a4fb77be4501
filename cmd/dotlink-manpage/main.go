// Command dotlink-manpage generates man pages for dotlink.
//
// With no argument the single dotlink(1) page is written to stdout. With a
// directory argument one page per command is written there
// (dotlink.1, dotlink-check.1, ...).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotlink/internal/cli"
	"github.com/arthur-debert/dotlink/internal/version"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "DOTLINK",
		Section: "1",
		Source:  "dotlink " + version.Version,
		Manual:  "dotlink manual",
	}
	rootCmd := cli.NewRootCmd()

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
