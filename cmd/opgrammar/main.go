// Package main parses operator definition files and prints the resulting records.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/opgrammar/opgrammar"
)

var (
	version = "dev"
	cli     struct {
		Version kong.VersionFlag
		Files   []string `arg:"" required:"" help:"Operator definition files to parse. Globs accepted."`
		Format  string   `short:"f" enum:"text,repr,yaml,toml,ebnf" default:"text" help:"Output format (${enum})."`
		Trace   bool     `help:"Trace the parse to stderr."`
		Strict  bool     `help:"Reject entries that set the same field twice."`
		Time    bool     `short:"t" help:"Report how long each file took to parse."`
	}
)

func main() {
	ctx := kong.Parse(&cli,
		kong.Description("Parse operator definition files."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	options := []opgrammar.Option{}
	if cli.Trace {
		options = append(options, opgrammar.Trace(os.Stderr))
	}
	if cli.Strict {
		options = append(options, opgrammar.DisallowDuplicateFields())
	}
	parser, err := opgrammar.New(options...)
	ctx.FatalIfErrorf(err)

	var records []*opgrammar.Record
	for _, pat := range cli.Files {
		matches, err := filepath.Glob(pat)
		ctx.FatalIfErrorf(err)
		if len(matches) == 0 {
			ctx.Fatalf("no files match %q", pat)
		}

		for _, m := range matches {
			fd, err := os.Open(m)
			ctx.FatalIfErrorf(err)

			start := time.Now()
			parsed, err := parser.Parse(m, fd)
			elapsed := time.Since(start)
			ctx.FatalIfErrorf(fd.Close())
			ctx.FatalIfErrorf(err)

			if cli.Time {
				fmt.Fprintf(os.Stderr, "%s: %d records in %s\n", m, len(parsed), elapsed)
			}
			records = append(records, parsed...)
		}
	}

	err = render(os.Stdout, cli.Format, records)
	ctx.FatalIfErrorf(err)
}
