package main

import (
	"fmt"
	"io"
	"os"

	"github.com/deuxsucres/xserializer/encode"
	"github.com/deuxsucres/xserializer/format"
	"github.com/deuxsucres/xserializer/gomap"
	"github.com/deuxsucres/xserializer/locale"
	"github.com/deuxsucres/xserializer/parse"
	"github.com/deuxsucres/xserializer/scalar"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Indent int    `cli:"name=indent desc='spaces per nesting level, 0 for one line'"`
	Decl   bool   `cli:"name=decl desc='write an xml declaration'"`
	WS     bool   `cli:"name=ws desc='keep whitespace between child elements'"`
	Locale string `cli:"name=locale desc='locale of numbers and dates, e.g. fr-FR'"`
	Strict bool   `cli:"name=strict desc='fail on unparsable scalar text'"`
	Float  bool   `cli:"name=float desc='infer non integer numbers as floating point'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.KeepWhitespace(cfg.WS)}
}

func (cfg *MainConfig) serializer() (*gomap.Serializer, error) {
	loc, err := locale.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	numbers := scalar.InferDecimal
	if cfg.Float {
		numbers = scalar.InferFloat
	}
	return gomap.New(
		gomap.WithLocale(loc),
		gomap.Strict(cfg.Strict),
		gomap.InferNumbers(numbers)), nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeDeclaration(cfg.Decl),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type InferConfig struct {
	*MainConfig
	Root bool `cli:"name=root desc='wrap the value in an object keyed by the root element name'"`

	Infer *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type RoundTripConfig struct {
	*MainConfig

	RoundTrip *cli.Command
}
