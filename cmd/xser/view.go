package main

import (
	"fmt"
	"io"

	"github.com/deuxsucres/xserializer/encode"
	"github.com/deuxsucres/xserializer/format"
	"github.com/deuxsucres/xserializer/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if f := cfg.outFormat(format.XMLFormat); !f.IsXML() {
		icfg := &InferConfig{MainConfig: cfg.MainConfig}
		return eachFile(cc, args, cfg.parseOpts(), func(i int, node *ir.Node) error {
			return writeInferred(icfg, cc.Out, node, f, i > 0)
		})
	}
	return eachFile(cc, args, cfg.parseOpts(), func(i int, node *ir.Node) error {
		return viewNode(cfg.MainConfig, cc.Out, node, i > 0)
	})
}

func viewNode(cfg *MainConfig, w io.Writer, node *ir.Node, sep bool) error {
	if sep {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
