package project

type projOpts struct {
	rootName string
	sortKeys bool
	maxDepth int
}

type Option func(*projOpts)

// RootName sets the display name of the synthetic root row. The default
// is the root value's type name.
func RootName(s string) Option { return func(o *projOpts) { o.rootName = s } }

// SortKeys controls whether map entries are emitted in sorted key order.
// On by default so repeated projections of the same graph are identical.
func SortKeys(v bool) Option { return func(o *projOpts) { o.sortKeys = v } }

// MaxDepth bounds the nesting depth of the walk; 0 means unlimited.
// The cycle guard already rejects self-referencing graphs, this bounds
// merely deep ones.
func MaxDepth(n int) Option { return func(o *projOpts) { o.maxDepth = n } }
