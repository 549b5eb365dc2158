package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/deuxsucres/xserializer/format"
	"github.com/deuxsucres/xserializer/parse"

	"github.com/scott-cotton/cli"
)

func testConfig(loc string) *InferConfig {
	return &InferConfig{MainConfig: &MainConfig{Locale: loc, Main: cli.NewCommand("xser")}}
}

func TestWriteInferred(t *testing.T) {
	node, err := parse.Parse([]byte(`<root><a>1</a><b>2,5</b><c>true</c></root>`))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		f    format.Format
		want string
	}{
		{format.JSONFormat, "{\n  \"a\": 1,\n  \"b\": \"2.5\",\n  \"c\": true\n}\n"},
		{format.XMLFormat, "<root><a>1</a><b>2.5</b><c>true</c></root>\n"},
	}
	for _, c := range cases {
		t.Run(c.f.String(), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := writeInferred(testConfig("fr-FR"), buf, node, c.f, false); err != nil {
				t.Fatal(err)
			}
			if buf.String() != c.want {
				t.Errorf("got %q, want %q", buf.String(), c.want)
			}
		})
	}
}

func TestWriteInferredYAML(t *testing.T) {
	node, err := parse.Parse([]byte(`<root><z>1</z><a>x</a><m>true</m></root>`))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := writeInferred(testConfig(""), buf, node, format.YAMLFormat, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "z: 1\na: x\nm: true\n" {
		t.Errorf("got %q", got)
	}
}

func TestWriteInferredBadLocale(t *testing.T) {
	node, _ := parse.Parse([]byte(`<a>1</a>`))
	err := writeInferred(testConfig("!!"), bytes.NewBuffer(nil), node, format.JSONFormat, false)
	if err == nil || !strings.Contains(err.Error(), "locale") {
		t.Errorf("got %v", err)
	}
}
