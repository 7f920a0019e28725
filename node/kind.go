package node

import "fmt"

// Kind classifies a row in the flattened output.
type Kind int

const (
	RootKind Kind = iota
	ObjectKind
	SliceKind
	MapKind
	EntryKind
	LeafKind
	NullKind
	EmptyKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		RootKind:   "Root",
		ObjectKind: "Object",
		SliceKind:  "Slice",
		MapKind:    "Map",
		EntryKind:  "Entry",
		LeafKind:   "Leaf",
		NullKind:   "Null",
		EmptyKind:  "Empty",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Root":   RootKind,
		"Object": ObjectKind,
		"Slice":  SliceKind,
		"Map":    MapKind,
		"Entry":  EntryKind,
		"Leaf":   LeafKind,
		"Null":   NullKind,
		"Empty":  EmptyKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		RootKind,
		ObjectKind,
		SliceKind,
		MapKind,
		EntryKind,
		LeafKind,
		NullKind,
		EmptyKind,
	}
}

// IsGroup reports whether rows of this kind own children.
func (k Kind) IsGroup() bool {
	switch k {
	case RootKind, ObjectKind, SliceKind, MapKind, EntryKind:
		return true
	default:
		return false
	}
}
