// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jcat reads JSON documents in fixed-size chunks, checks them for
// validity, and writes them in compact form to stdout.
//
// Usage:
//
//	jcat [flags] [file ...]
//
// With no files, or a file named "-", jcat reads stdin. The outcome for each
// input is logged to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/creachadair/jcell"
	"github.com/creachadair/jcell/tree"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type config struct {
	opts      jcell.Options
	chunkSize int
	multi     bool
	sortKeys  bool
	check     bool
	rename    map[string]string
}

func main() {
	app := kingpin.New("jcat", "Validate and normalize JSON read in fixed-size chunks.")
	var cfg config
	chunk := app.Flag("chunk-size", "Size of reads from each input.").Default("4KiB").Bytes()
	app.Flag("allow-comments", "Accept // and /* */ comments.").BoolVar(&cfg.opts.AllowComments)
	app.Flag("trailing-commas", "Accept a comma before a closing bracket.").BoolVar(&cfg.opts.AllowTrailingCommas)
	app.Flag("nan-inf", "Accept the literals NaN, Infinity and -Infinity.").BoolVar(&cfg.opts.AllowNaNInf)
	app.Flag("max-depth", "Maximum nesting depth.").Default("1024").IntVar(&cfg.opts.MaxDepth)
	app.Flag("lossless", "Keep the exact text of non-integer numbers.").BoolVar(&cfg.opts.LosslessNumbers)
	app.Flag("multi", "Read a sequence of concatenated documents.").BoolVar(&cfg.multi)
	app.Flag("sort-keys", "Sort object members by key.").BoolVar(&cfg.sortKeys)
	app.Flag("check", "Validate only; do not write output.").BoolVar(&cfg.check)
	rename := app.Flag("rename", "Rename object keys (old=new).").StringMap()
	logLevel := app.Flag("log-level", "Log level.").Default("info").Enum("debug", "info", "warn", "error")
	files := app.Arg("file", "Input files (default stdin).").Strings()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg.chunkSize = int(*chunk)
	cfg.rename = *rename
	logger := newLogger(os.Stderr, *logLevel)

	if len(*files) == 0 {
		*files = []string{"-"}
	}
	failed := false
	for _, name := range *files {
		if err := catFile(cfg, name, os.Stdout, logger); err != nil {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}

func catFile(cfg config, name string, out io.Writer, logger log.Logger) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			level.Error(logger).Log("file", name, "err", err)
			return err
		}
		defer f.Close()
		r = f
	}
	return cat(cfg, name, r, out, logger)
}

// stats records the outcome of processing one input.
type stats struct {
	docs  int
	bytes int64
}

// countingReader counts the bytes read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// cat copies the documents read from r to out in compact form, and logs the
// outcome.
func cat(cfg config, name string, r io.Reader, out io.Writer, logger log.Logger) error {
	cr := &countingReader{r: r}
	st, err := process(cfg, cr, out)
	st.bytes = cr.n
	if err != nil {
		kv := []any{"file", name, "docs", st.docs}
		var serr *jcell.SyntaxError
		if errors.As(err, &serr) {
			kv = append(kv, "line", serr.Pos.Line, "column", serr.Pos.Column, "offset", serr.Pos.Offset)
		}
		level.Error(logger).Log(append(kv, "err", err)...)
		return err
	}
	level.Info(logger).Log("file", name, "docs", st.docs, "bytes", humanize.Bytes(uint64(st.bytes)))
	return nil
}

func process(cfg config, r io.Reader, out io.Writer) (stats, error) {
	var st stats
	if cfg.check {
		out = io.Discard
	}
	enc := jcell.NewEncoder(out)

	s := jcell.NewStream(r, &cfg.opts)
	s.SetChunkSize(cfg.chunkSize)

	// With sorted keys each document is decoded to a tree and re-emitted;
	// otherwise events flow from the parser directly to the encoder. Keys are
	// renamed before they are sorted.
	var dec *tree.Decoder
	var v jcell.Visitor = enc
	if cfg.sortKeys {
		dec = tree.NewDecoder(tree.Sorted)
		v = dec
	}
	if len(cfg.rename) != 0 {
		v = jcell.RenameKeys(v, cfg.rename)
	}
	emit := func() error {
		st.docs++
		if dec != nil {
			return tree.Walk(dec.Value(), enc)
		}
		return nil
	}

	if cfg.multi {
		for {
			err := s.ParseOne(v)
			if err == io.EOF {
				break
			} else if err != nil {
				return st, err
			} else if err := emit(); err != nil {
				return st, err
			}
		}
	} else {
		if err := s.Parse(v); err != nil {
			return st, err
		} else if err := emit(); err != nil {
			return st, err
		}
	}
	if st.docs != 0 && !cfg.check {
		if _, err := fmt.Fprintln(out); err != nil {
			return st, err
		}
	}
	return st, nil
}
