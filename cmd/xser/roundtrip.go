package main

import (
	"reflect"

	"github.com/deuxsucres/xserializer/debug"
	"github.com/deuxsucres/xserializer/ir"
	"github.com/deuxsucres/xserializer/ordered"

	"github.com/scott-cotton/cli"
)

// roundTrip checks that documents survive inference and serialization,
// printing a diff for each one that does not. Attributes come back as
// child elements and repeated names collapse to one entry, so documents
// with either do not pass.
func roundTrip(cfg *RoundTripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RoundTrip.Parse(cc, args)
	if err != nil {
		return err
	}
	s, err := cfg.serializer()
	if err != nil {
		return err
	}
	differs := false
	err = eachFile(cc, args, cfg.parseOpts(), func(_ int, node *ir.Node) error {
		out := ir.New(node.Name)
		switch v := s.DeserializeAny(node).(type) {
		case *ordered.Map:
			if err := s.SerializeInto(v, out); err != nil {
				return err
			}
		default:
			text, ok, err := s.Table().Format(reflect.ValueOf(v))
			if err != nil {
				return err
			}
			if ok && node.HasText {
				out.SetText(text)
			}
		}
		if debug.Read() {
			debug.Logf("roundtrip %v:\n%v\n", node, out)
		}
		d, err := diffInputs(cfg.MainConfig, cc, node, out)
		differs = differs || d
		return err
	})
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
