package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/fieldline/treelist/node"
)

type Colorable struct {
	Kind node.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	TypeColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range node.Kinds() {
		able := Colorable{Kind: k, Attr: TypeColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = NameColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = node.LeafKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = node.NullKind
	colors.Map[able] = color.HiBlackString
	able.Kind = node.EmptyKind
	colors.Map[able] = color.HiBlackString

	able = Colorable{Attr: NameColor}
	able.Kind = node.RootKind
	colors.Map[able] = color.GreenString
	able.Kind = node.ObjectKind
	colors.Map[able] = color.CyanString
	able.Kind = node.SliceKind
	colors.Map[able] = color.CyanString
	able.Kind = node.MapKind
	colors.Map[able] = color.CyanString
	able.Kind = node.EntryKind
	colors.Map[able] = color.BlueString
	able.Kind = node.EmptyKind
	colors.Map[able] = color.HiBlackString

	return colors
}

func colorDefault(s string, args ...any) string {
	return fmt.Sprintf(s, args...)
}

func (c *Colors) Color(k node.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	if f == nil {
		return s
	}
	return f("%s", s)
}
