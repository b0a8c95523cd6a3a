/*
 * Copyright (c) 2016 Dan Kortschak <dan.kortschak@adelaide.edu.au>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kortschak/dbg"
)

var (
	verbosity      int
	outPath        string
	toStdout       bool
	appendOut      bool
	sortKeys       bool
	reflectStructs bool
	indent         string

	rootCmd = &cobra.Command{
		Use:   "dbg [file ...]",
		Short: "Pretty-print YAML documents through the dbg engine",
		Long: `dbg reads YAML documents from the given files (or standard input) and
renders each document as one debug-invocation block: every top-level key
becomes a "name: Type = value" line with its value recursively
pretty-printed.  Output goes to dbg.log unless redirected.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase diagnostic verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "dbg.log", "file the rendered blocks are written to")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "write rendered blocks to standard output instead of a file")
	rootCmd.Flags().BoolVar(&appendOut, "append", false, "append to the output file instead of rewriting it")
	rootCmd.Flags().BoolVar(&sortKeys, "sort-keys", true, "render map and set keys in sorted order")
	rootCmd.Flags().BoolVar(&reflectStructs, "reflect", false, "render unknown aggregates reflectively")
	rootCmd.Flags().StringVar(&indent, "indent", "  ", "indentation unit for nested blocks")
}

func run(cmd *cobra.Command, args []string) error {
	w, closeSink, err := openSink()
	if err != nil {
		log.Error().Err(err).Msg("cannot open output sink")
		return err
	}
	defer closeSink()

	session := dbg.New(w,
		dbg.WithConfig(&dbg.ConfigState{
			Indent:         indent,
			SortKeys:       sortKeys,
			ReflectStructs: reflectStructs,
		}),
		dbg.WithLogger(log.Logger),
	)

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if err := inspectFile(session, path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("inspection failed")
			return err
		}
	}
	return nil
}

// openSink chooses the process-lifetime output sink once, per the flags.
func openSink() (io.Writer, func() error, error) {
	if toStdout {
		return os.Stdout, func() error { return nil }, nil
	}
	mode := os.O_CREATE | os.O_WRONLY
	if appendOut {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}
	f, err := os.OpenFile(outPath, mode, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", outPath, err)
	}
	return f, f.Close, nil
}

func inspectFile(s *dbg.Session, path string) error {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	dec := yaml.NewDecoder(r)
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if err := inspectDocument(s, path, &doc); err != nil {
			return err
		}
	}
}

// inspectDocument renders one YAML document as one invocation block.  A
// top-level mapping contributes one name/value pair per key in document
// order; any other document renders as a single value named "document".
func inspectDocument(s *dbg.Session, path string, doc *yaml.Node) error {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	loc := dbg.Location{File: path, Line: root.Line, Func: "document"}

	if root.Kind == yaml.MappingNode {
		names := make([]string, 0, len(root.Content)/2)
		values := make([]interface{}, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, val := root.Content[i], root.Content[i+1]
			var v interface{}
			if err := val.Decode(&v); err != nil {
				return fmt.Errorf("decode %s:%d: %w", path, val.Line, err)
			}
			names = append(names, key.Value)
			values = append(values, v)
		}
		return s.DbgNames(loc, names, values...)
	}

	var v interface{}
	if err := root.Decode(&v); err != nil {
		return fmt.Errorf("decode %s:%d: %w", path, root.Line, err)
	}
	return s.DbgNames(loc, []string{"document"}, v)
}
