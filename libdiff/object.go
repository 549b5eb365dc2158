package libdiff

import (
	"github.com/deuxsucres/xserializer/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffChildren aligns the children of from and to by name and appends to
// res one element per deleted, inserted or changed child. Children aligned
// with a child of the same name are compared with df.
func DiffChildren(res, from, to *ir.Node, df DiffFunc) {
	nameMap := map[string]rune{}
	fromRunes := mapNamesTo(nameMap, from)
	toRunes := mapNamesTo(nameMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res.Append(at(MakeDiff(from.Children[fi], nil), fi))
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				if d := df(from.Children[fi], to.Children[ti]); d != nil {
					res.Append(at(d, ti))
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res.Append(at(MakeDiff(nil, to.Children[ti]), ti))
				ti++
			}
		}
	}
}

func mapNamesTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Children))
	for i, c := range node.Children {
		r, ok := m[c.Name]
		if !ok {
			r = rune(len(m))
			m[c.Name] = r
		}
		rs[i] = r
	}
	return rs
}
