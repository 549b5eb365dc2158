// Package describe builds structural descriptors of Go types.
//
// A Descriptor tells the serializer which of the five shapes a type has
// (scalar, map, collection, record or untyped) and, for records, lists the
// members in declaration order with a getter and, when writable, a setter.
// Descriptors are computed once per type and cached in a Registry, so the
// serializer never inspects a type ad hoc.
//
// Record members are the exported struct fields, including fields promoted
// from embedded structs, followed by the method-backed members a type
// declares through Accessors.
package describe
