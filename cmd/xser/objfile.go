package main

import (
	"fmt"
	"io"
	"os"

	"github.com/deuxsucres/xserializer/ir"
	"github.com/deuxsucres/xserializer/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	node, err := parse.ParseReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return node, nil
}

// eachFile calls f with the document of every file in args, or of stdin
// when there are none.
func eachFile(cc *cli.Context, args []string, opts []parse.ParseOption, f func(i int, node *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		node, err := getObjFile(cc, file, opts...)
		if err != nil {
			return err
		}
		if err := f(i, node); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
