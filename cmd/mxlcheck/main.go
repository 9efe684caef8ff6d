package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	musicxml "github.com/agentflare-ai/go-musicxml"
)

type cmdopts struct {
	Format  bool   `long:"format" description:"re-emit the parsed document as indented MusicXML"`
	NoCheck bool   `long:"no-check" description:"disable schema checking"`
	Output  string `long:"output" short:"o" description:"write formatted output to a file instead of stdout"`
	Version bool   `long:"version" description:"print the library version"`
}

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Printf(`Usage: mxlcheck [options] file.musicxml ...
	Parse MusicXML files, run the schema checks and report the first error.
	--format : re-emit the parsed document
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}
	if opts.Version {
		fmt.Printf("mxlcheck: go-musicxml %s\n", musicxml.Version)
		return 0
	}
	if len(args) == 0 {
		showUsage()
		return 1
	}

	for _, path := range args {
		root, err := musicxml.ParseMusicXML(path, musicxml.WithXSDCheck(!opts.NoCheck))
		if err != nil {
			fmt.Fprintf(os.Stderr, "mxlcheck: %s\n", err)
			return 1
		}
		switch {
		case opts.Format && opts.Output != "":
			if err := root.WriteFile(opts.Output); err != nil {
				fmt.Fprintf(os.Stderr, "mxlcheck: %s\n", err)
				return 1
			}
		case opts.Format:
			if err := root.Write(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "mxlcheck: %s\n", err)
				return 1
			}
		default:
			if err := root.Write(io.Discard); err != nil {
				fmt.Fprintf(os.Stderr, "mxlcheck: %s: %s\n", path, err)
				return 1
			}
			fmt.Printf("%s: ok (root %s)\n", path, root.Name())
		}
	}
	return 0
}
