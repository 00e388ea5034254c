// Package main is the entry point for the scribe command.
//
// scribe loads a text file (or starts from an empty buffer), optionally
// inserts text at a line/offset position, and writes the resulting content
// to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/engine/coord"
	"github.com/dshills/scribe/internal/logging"
	"github.com/dshills/scribe/internal/vfs"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, vfs.NewOSFS(), os.LookupEnv))
}

type options struct {
	configPath  string
	logLevel    string
	line        uint32
	offset      uint32
	insert      string
	hasInsert   bool
	showVersion bool
	file        string
}

func run(args []string, stdout, stderr io.Writer, fsys vfs.VFS, lookup func(string) (string, bool)) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "scribe %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.NewLoader(fsys).WithLookup(lookup).Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	level := cfg.LogLevel()
	if opts.logLevel != "" {
		l, ok := logging.ParseLevel(opts.logLevel)
		if !ok {
			fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			return 1
		}
		level = l
	}
	logger := logging.New(logging.Config{Level: level, Output: stderr, Prefix: "scribe"})
	logger.Debug("configuration: %s", cfg)

	docOpts := []buffer.Option{
		buffer.WithGrowthMargin(cfg.Buffer.GrowthMargin),
		buffer.WithColumnUnit(cfg.ColumnUnit()),
		buffer.WithLogger(logger),
	}

	var doc *buffer.Document
	if opts.file == "" {
		doc = buffer.New(docOpts...)
	} else {
		doc, err = buffer.Open(fsys, opts.file, docOpts...)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	doc.SetCursor(coord.Position{Line: opts.line, Offset: opts.offset})
	if opts.hasInsert {
		doc.Insert(opts.insert)
		logger.Info("inserted %d bytes at %s", len(opts.insert), doc.Cursor())
	}

	if _, err := io.WriteString(stdout, doc.Data()); err != nil {
		logger.Error("writing output: %v", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts         options
		line, offset uint64
	)
	fs := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the configuration")
	fs.Uint64Var(&line, "line", 0, "Cursor line (0-based)")
	fs.Uint64Var(&offset, "offset", 0, "Cursor offset within the line (0-based)")
	fs.Func("insert", "Text to insert at the cursor", func(s string) error {
		opts.insert = s
		opts.hasInsert = true
		return nil
	})
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "scribe - line/column addressed text buffer\n\n")
		fmt.Fprintf(stderr, "Usage: scribe [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  scribe notes.txt                              Print a file\n")
		fmt.Fprintf(stderr, "  scribe -line 1 -offset 4 -insert - notes.txt  Insert at line 1, offset 4\n")
		fmt.Fprintf(stderr, "  scribe -insert hello                          Insert into an empty buffer\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.line = saturate(line)
	opts.offset = saturate(offset)

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: expected at most one file, got %d\n", fs.NArg())
		fs.Usage()
		return opts, errors.New("too many arguments")
	}

	return opts, nil
}

// saturate narrows a coordinate flag. Values past the largest Position
// coordinate are clamped by the buffer like any other out-of-range value.
func saturate(v uint64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
