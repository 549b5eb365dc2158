package libdiff

const (
	// OpAttr marks an element of a diff as inserted, deleted or replaced.
	OpAttr = "diff"
	// AtAttr is the position of a changed child among its siblings.
	AtAttr = "diff.at"

	AttrsTag = "diff.attrs"
	TextTag  = "diff.text"

	FromTag = "from"
	ToTag   = "to"

	Insert  = "insert"
	Delete  = "delete"
	Replace = "replace"
	Equal   = "equal"
)
