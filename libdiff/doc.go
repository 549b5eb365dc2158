// Package libdiff computes differences between ir trees.
//
// # Usage
//
//	// nil when the trees are equal
//	d := libdiff.Diff(oldNode, newNode)
//
// A diff is itself a tree. Its root carries the name of the compared
// roots. Changed children appear in it in document order with their
// position in the new tree, or in the old one for deletions, in the
// diff.at attribute; unchanged children are left out.
// Inserted and deleted elements are copied whole and marked with the diff
// attribute. Attribute and text changes are recorded in diff.attrs and
// diff.text children.
//
// # Related Packages
//
//   - github.com/deuxsucres/xserializer/ir - the tree
//   - github.com/deuxsucres/xserializer/encode - prints diffs
package libdiff
