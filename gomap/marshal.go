package gomap

import (
	"bytes"
	"io"

	"github.com/deuxsucres/xserializer/encode"
	"github.com/deuxsucres/xserializer/parse"
)

// Marshal serializes v and encodes the tree as XML.
func (s *Serializer) Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := s.Encode(v, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode serializes v and writes it to w as XML.
func (s *Serializer) Encode(v any, w io.Writer, opts ...encode.EncodeOption) error {
	node, err := s.Serialize(v)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, opts...)
}

// Unmarshal parses XML data and populates target from its root element,
// see Populate.
func (s *Serializer) Unmarshal(data []byte, target any) error {
	node, err := parse.Parse(data)
	if err != nil {
		return err
	}
	return s.Populate(node, target)
}

// ToXML marshals v with a Serializer configured by opts.
func ToXML(v any, opts ...Option) ([]byte, error) {
	return New(opts...).Marshal(v)
}

// FromXML unmarshals data into target with a Serializer configured by
// opts.
func FromXML(data []byte, target any, opts ...Option) error {
	return New(opts...).Unmarshal(data, target)
}
