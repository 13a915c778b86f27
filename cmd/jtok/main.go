// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jtok reads JSON text from standard input, one line at a time, and
// prints the tokens of each line. If a line is not lexically valid, jtok
// prints a diagnostic pointing at the offending byte and exits with status 1.
//
// Usage:
//
//	echo '{"a": [1, true]}' | jtok
//	jtok --lines --format=text < input.jsonl
//	jtok --hujson < config.hujson
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New("jtok", "Print the JSON tokens of each line of standard input.")
	opts := addFlags(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(os.Stdin, os.Stdout, os.Stderr, *opts); err != nil {
		level.Error(logger).Log("msg", "lexing failed", "err", err)
		os.Exit(1)
	}
}

func addFlags(app *kingpin.Application) *options {
	opts := new(options)
	app.Flag("hujson", "Accept comments and trailing commas, as in HuJSON.").BoolVar(&opts.HuJSON)
	app.Flag("format", "Output format: dump or text.").Default(formatDump).EnumVar(&opts.Format, formatDump, formatText)
	app.Flag("lines", "Lex every line of input, not only the first.").BoolVar(&opts.AllLines)
	app.Flag("no-color", "Disable colored diagnostics.").BoolVar(&opts.NoColor)
	return opts
}
