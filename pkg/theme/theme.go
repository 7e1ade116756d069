// Package theme bundles style color and style variable overrides and applies
// them through the guarded style stack in pkg/sugar.
//
// A theme is an ordered batch of pushes with a single release:
//
//	dark := theme.DefaultDark()
//	release := dark.Apply(ui)
//	defer release()
//
// Themes can be written in YAML and loaded with Load; see Parse for the file
// format.
package theme

import (
	"fmt"

	"github.com/go-imscope/imscope/pkg/guard"
	"github.com/go-imscope/imscope/pkg/im"
	"github.com/go-imscope/imscope/pkg/sugar"
)

// ColorEntry overrides one style color slot.
type ColorEntry struct {
	Target im.Col
	Value  im.Color
}

// VarEntry overrides one style variable slot. Vec is used when the slot takes
// a two-component value, Float otherwise.
type VarEntry struct {
	Target im.StyleVarID
	Float  float32
	Vec    im.Vec2
	IsVec  bool
}

// Theme is an ordered set of style overrides. Entries apply in slice order
// and release in reverse.
type Theme struct {
	Name   string
	Colors []ColorEntry
	Vars   []VarEntry
}

// Validate checks that every var entry's value shape matches its slot.
func (t *Theme) Validate() error {
	for _, v := range t.Vars {
		if v.IsVec != v.Target.IsVec2() {
			want := "a scalar"
			if v.Target.IsVec2() {
				want = "a two-component value"
			}
			return fmt.Errorf("theme %q: style var %s takes %s", t.Name, v.Target, want)
		}
	}
	return nil
}

// Apply pushes every override and returns a single release that pops them all
// in reverse order. The release runs each pop at most once.
func (t *Theme) Apply(u *sugar.UI) guard.EndFunc {
	ends := make([]guard.EndFunc, 0, len(t.Colors)+len(t.Vars))
	for _, c := range t.Colors {
		ends = append(ends, sugar.SetStyleColor(u, c.Target, c.Value))
	}
	for _, v := range t.Vars {
		if v.IsVec {
			ends = append(ends, sugar.SetStyleVar(u, v.Target, v.Vec))
		} else {
			ends = append(ends, sugar.SetStyleVar(u, v.Target, v.Float))
		}
	}
	return func() {
		for i := len(ends) - 1; i >= 0; i-- {
			ends[i]()
		}
	}
}

// Scoped applies the theme for the duration of body.
func (t *Theme) Scoped(u *sugar.UI, body func()) {
	release := t.Apply(u)
	defer release()
	if body != nil {
		body()
	}
}

// DefaultDark returns a dark baseline theme.
func DefaultDark() *Theme {
	return &Theme{
		Name: "dark",
		Colors: []ColorEntry{
			{Target: im.ColWindowBg, Value: im.RGB(0x1E, 0x1E, 0x2E)},
			{Target: im.ColText, Value: im.RGB(0xCD, 0xD6, 0xF4)},
			{Target: im.ColButton, Value: im.RGB(0x31, 0x32, 0x44)},
			{Target: im.ColButtonHovered, Value: im.RGB(0x45, 0x47, 0x5A)},
			{Target: im.ColFrameBg, Value: im.RGB(0x18, 0x18, 0x25)},
		},
		Vars: []VarEntry{
			{Target: im.StyleVarFrameRounding, Float: 4},
			{Target: im.StyleVarWindowPadding, Vec: im.Vec2{10, 10}, IsVec: true},
			{Target: im.StyleVarItemSpacing, Vec: im.Vec2{8, 4}, IsVec: true},
		},
	}
}

// DefaultLight returns a light baseline theme.
func DefaultLight() *Theme {
	return &Theme{
		Name: "light",
		Colors: []ColorEntry{
			{Target: im.ColWindowBg, Value: im.RGB(0xEF, 0xF1, 0xF5)},
			{Target: im.ColText, Value: im.RGB(0x4C, 0x4F, 0x69)},
			{Target: im.ColButton, Value: im.RGB(0xCC, 0xD0, 0xDA)},
			{Target: im.ColButtonHovered, Value: im.RGB(0xBC, 0xC0, 0xCC)},
			{Target: im.ColFrameBg, Value: im.RGB(0xE6, 0xE9, 0xEF)},
		},
		Vars: []VarEntry{
			{Target: im.StyleVarFrameRounding, Float: 4},
			{Target: im.StyleVarWindowPadding, Vec: im.Vec2{10, 10}, IsVec: true},
			{Target: im.StyleVarItemSpacing, Vec: im.Vec2{8, 4}, IsVec: true},
		},
	}
}
