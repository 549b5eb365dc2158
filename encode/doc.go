// Package encode writes ir trees as XML text.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout)
//
//	// indented, with an XML declaration and terminal colors
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeIndent(2),
//	    encode.EncodeDeclaration(true),
//	    encode.EncodeColors(encode.NewColors()))
//
// Elements holding both text and child elements are written without
// indentation inside them so that their text survives a parse.
//
// # Related Packages
//
//   - github.com/deuxsucres/xserializer/ir - the tree
//   - github.com/deuxsucres/xserializer/parse - reads XML into trees
package encode
