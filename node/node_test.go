package node

import "testing"

func sampleList() List {
	return List{
		{ID: 1, ParentID: 0, Name: "Settings", Kind: RootKind},
		{ID: 2, ParentID: 1, Name: "Network", Kind: ObjectKind},
		{ID: 3, ParentID: 2, Name: "Host", Kind: LeafKind, Value: "h"},
		{ID: 4, ParentID: 1, Name: "Tags", Kind: SliceKind},
		{ID: 5, ParentID: 4, Name: "[0]", Kind: LeafKind, Value: "a"},
	}
}

func TestPath(t *testing.T) {
	l := sampleList()
	tests := []struct {
		id   int
		want string
	}{
		{1, ""},
		{2, "Network"},
		{3, "Network.Host"},
		{5, "Tags.[0]"},
	}
	byID := l.ByID()
	for _, tt := range tests {
		if got := l.Path(byID[tt.id]); got != tt.want {
			t.Errorf("Path(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	l := sampleList()
	if n := l.Find("Network.Host"); n == nil || n.ID != 3 {
		t.Errorf("Find(Network.Host) = %v", n)
	}
	if n := l.Find("Nope"); n != nil {
		t.Errorf("Find(Nope) = %v, want nil", n)
	}
}

func TestTerminalAndDepth(t *testing.T) {
	l := sampleList()
	byID := l.ByID()
	if l.Terminal(byID[2]) {
		t.Error("Network has children, not terminal")
	}
	if !l.Terminal(byID[5]) {
		t.Error("[0] is terminal")
	}
	if d := l.Depth(byID[3]); d != 2 {
		t.Errorf("Depth(Host) = %d, want 2", d)
	}
	if d := l.Depth(byID[1]); d != 0 {
		t.Errorf("Depth(root) = %d, want 0", d)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error = %v", int(k), err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", d, err)
		}
		if back != k {
			t.Errorf("round trip %s -> %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Bogus")); err == nil {
		t.Error("UnmarshalText(Bogus) succeeded")
	}
}

func TestIsLeaf(t *testing.T) {
	n := &Node{Kind: LeafKind}
	if n.IsLeaf() {
		t.Error("leaf without target must not be editable")
	}
}
