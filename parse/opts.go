package parse

type parseOpts struct {
	keepWhitespace bool
	keepNamespaces bool
}

type ParseOption func(*parseOpts)

// KeepWhitespace keeps whitespace only text of elements that have child
// elements. By default such text is layout and is dropped.
func KeepWhitespace(v bool) ParseOption {
	return func(o *parseOpts) { o.keepWhitespace = v }
}

// KeepNamespaces keeps xmlns declarations as attributes.
func KeepNamespaces(v bool) ParseOption {
	return func(o *parseOpts) { o.keepNamespaces = v }
}
