// Package format names the output formats of the xser command.
//
// XML output is the tree itself. JSON and YAML output render the value
// inferred from the tree, see gomap.Serializer.DeserializeAny.
package format
