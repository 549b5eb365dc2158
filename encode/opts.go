package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per nesting level. Zero writes
// the document on one line.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}
func EncodeDeclaration(v bool) EncodeOption {
	return func(es *EncState) { es.decl = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
