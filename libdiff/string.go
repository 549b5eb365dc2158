package libdiff

import (
	"strings"

	"github.com/deuxsucres/xserializer/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText returns a diff.text element describing how the text of from
// became that of to, or nil. Small edits are listed as equal, insert and
// delete runs; larger ones as a whole replacement.
func DiffText(from, to *ir.Node) *ir.Node {
	if from.HasText == to.HasText && from.Text == to.Text {
		return nil
	}
	res := ir.New(TextTag)
	if !from.HasText || !to.HasText {
		res.SetAttr(OpAttr, Replace)
		if from.HasText {
			res.AddChild(FromTag).SetText(from.Text)
		}
		if to.HasText {
			res.AddChild(ToTag).SetText(to.Text)
		}
		return res
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from.Text, "\n") && strings.Contains(to.Text, "\n")
	diffs := diffCfg.DiffCleanupSemantic(diffCfg.DiffMain(from.Text, to.Text, doMultiLine))
	diffSize := 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			res.AddChild(Insert).SetText(diff.Text)
			diffSize += len(diff.Text)
		case diffpatch.DiffDelete:
			res.AddChild(Delete).SetText(diff.Text)
			diffSize += len(diff.Text)
		case diffpatch.DiffEqual:
			res.AddChild(Equal).SetText(diff.Text)
		}
	}
	if diffSize > min(len(from.Text), len(to.Text))/2 {
		res.Clear()
		res.SetAttr(OpAttr, Replace)
		res.AddChild(FromTag).SetText(from.Text)
		res.AddChild(ToTag).SetText(to.Text)
	}
	return res
}
