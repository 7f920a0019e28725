package node

// Column names for self-referencing tree binding. A rendering layer binds
// KeyColumn and ParentKeyColumn to reconstruct the hierarchy from the
// flat list.
const (
	KeyColumn       = "ID"
	ParentKeyColumn = "ParentID"
)

// HiddenColumns lists fields that are projection bookkeeping rather than
// display data; a rendering layer should not show them to the user.
func HiddenColumns() []string {
	return []string{"Target", "Kind"}
}
