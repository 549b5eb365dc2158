package main

import (
	"fmt"

	"github.com/deuxsucres/xserializer/format"
	"github.com/deuxsucres/xserializer/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an element path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	f := cfg.outFormat(format.XMLFormat)
	icfg := &InferConfig{MainConfig: cfg.MainConfig}
	return eachFile(cc, args[1:], cfg.parseOpts(), func(i int, doc *ir.Node) error {
		node, err := doc.GetPath(path)
		if err != nil {
			return err
		}
		if f.IsXML() {
			return viewNode(cfg.MainConfig, cc.Out, node, i > 0)
		}
		return writeInferred(icfg, cc.Out, node, f, i > 0)
	})
}
