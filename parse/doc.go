// Package parse reads XML documents into ir trees.
//
// # Usage
//
//	node, err := parse.Parse(data)
//
//	// keep indentation between child elements as text
//	node, err := parse.Parse(data, parse.KeepWhitespace(true))
//
// Element and attribute names keep their local part only. Namespace
// declarations are dropped unless KeepNamespaces is set.
//
// # Related Packages
//
//   - github.com/deuxsucres/xserializer/ir - the tree
//   - github.com/deuxsucres/xserializer/encode - writes trees as XML
package parse
