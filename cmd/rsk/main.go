// Copyright 2026, The rsk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command rsk is the command-line front-end for the rsk package: it
// selects compress vs. decompress, reports file sizes, and decides the
// .rsk extension handling. None of this is part of the codec's tested
// contract (see rsk's package doc); it exists only to give the library a
// runnable entry point.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rushik8626/rsk/rsk"
)

func main() {
	var compress, decompress bool

	root := &cobra.Command{
		Use:   "rsk <path>",
		Short: "Compress or decompress a file with the rsk BWT/MTF/Huffman codec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case compress == decompress:
				return fmt.Errorf("exactly one of -c or -d must be given")
			case compress:
				return runCompress(args[0])
			default:
				return runDecompress(args[0])
			}
		},
	}
	root.Flags().BoolVarP(&compress, "compress", "c", false, "compress the input file")
	root.Flags().BoolVarP(&decompress, "decompress", "d", false, "decompress the input file")

	// -C and -D are accepted as uppercase spellings of -c and -d.
	args := append([]string(nil), os.Args[1:]...)
	for i, a := range args {
		switch a {
		case "-C":
			args[i] = "-c"
		case "-D":
			args[i] = "-d"
		}
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCompress(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ext := filepath.Ext(path)
	out, err := rsk.Compress(data, ext)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(path, ext)
	dst := base + ".rsk"
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d -> %d bytes\n", dst, len(data), len(out))
	return nil
}

func runDecompress(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ext, out, err := rsk.Decompress(data)
	if err != nil {
		return err
	}
	dir, base := filepath.Split(strings.TrimSuffix(path, filepath.Ext(path)))
	dst := filepath.Join(dir, "decompressed_"+base+ext)
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d -> %d bytes\n", dst, len(data), len(out))
	return nil
}
