package main

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/deuxsucres/xserializer/debug"
	"github.com/deuxsucres/xserializer/format"
	"github.com/deuxsucres/xserializer/ir"
	"github.com/deuxsucres/xserializer/ordered"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func infer(cfg *InferConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Infer.Parse(cc, args)
	if err != nil {
		return err
	}
	f := cfg.outFormat(format.JSONFormat)
	return eachFile(cc, args, cfg.parseOpts(), func(i int, node *ir.Node) error {
		return writeInferred(cfg, cc.Out, node, f, i > 0)
	})
}

// writeInferred prints the value inferred from node. XML output
// serializes that value again under the root's name, which normalizes
// scalar text to the invariant forms.
func writeInferred(cfg *InferConfig, w io.Writer, node *ir.Node, f format.Format, sep bool) error {
	s, err := cfg.serializer()
	if err != nil {
		return err
	}
	v := s.DeserializeAny(node)
	if debug.Read() {
		debug.Logf("inferred %s from %s:\n%v\n", fmt.Sprintf("%T", v), node.Name, v)
	}
	if cfg.Root {
		m := ordered.New()
		m.Set(node.Name, v)
		v = m
	}
	switch f {
	case format.XMLFormat:
		out := ir.New(node.Name)
		inv := s.WithLocale(nil)
		if m, ok := v.(*ordered.Map); ok {
			if err := inv.SerializeInto(m, out); err != nil {
				return err
			}
		} else {
			text, _, err := inv.Table().Format(reflect.ValueOf(v))
			if err != nil {
				return err
			}
			out.SetText(text)
		}
		return viewNode(cfg.MainConfig, w, out, sep)
	case format.JSONFormat:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		if sep {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: unsupported output format %s", cli.ErrUsage, f)
}
