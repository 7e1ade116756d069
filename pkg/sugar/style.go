package sugar

import (
	"github.com/go-imscope/imscope/pkg/guard"
	"github.com/go-imscope/imscope/pkg/im"
)

// ColorValue constrains style-color arguments: a packed ARGB word, an
// im.Color, or an unpacked RGBA vector. The constraint picks the backend
// variant; an argument of any other type does not compile.
type ColorValue interface {
	uint32 | im.Color | im.Vec4
}

// VarValue constrains style-variable arguments: a scalar for float slots or a
// Vec2 for two-component slots.
type VarValue interface {
	int | float32 | float64 | im.Vec2
}

// StyleColor scopes a style color push to body. It is a package function
// because Go methods cannot take type parameters.
func StyleColor[C ColorValue](u *UI, idx im.Col, value C, body func()) {
	g := pushStyleColor(u, idx, value)
	defer g.End()
	runBody(body)
}

// SetStyleColor pushes a style color until the returned release runs.
func SetStyleColor[C ColorValue](u *UI, idx im.Col, value C) guard.EndFunc {
	g := pushStyleColor(u, idx, value)
	return g.End
}

// StyleVar scopes a style variable push to body.
func StyleVar[V VarValue](u *UI, idx im.StyleVarID, value V, body func()) {
	g := pushStyleVar(u, idx, value)
	defer g.End()
	runBody(body)
}

// SetStyleVar pushes a style variable until the returned release runs.
func SetStyleVar[V VarValue](u *UI, idx im.StyleVarID, value V) guard.EndFunc {
	g := pushStyleVar(u, idx, value)
	return g.End
}

func pushStyleColor[C ColorValue](u *UI, idx im.Col, value C) guard.Void {
	switch v := any(value).(type) {
	case im.Vec4:
		return guard.NewVoid2(u.b.PushStyleColorVec4, u.popStyleColor, idx, v)
	case im.Color:
		return guard.NewVoid2(u.b.PushStyleColorU32, u.popStyleColor, idx, uint32(v))
	default:
		return guard.NewVoid2(u.b.PushStyleColorU32, u.popStyleColor, idx, v.(uint32))
	}
}

func pushStyleVar[V VarValue](u *UI, idx im.StyleVarID, value V) guard.Void {
	switch v := any(value).(type) {
	case im.Vec2:
		return guard.NewVoid2(u.b.PushStyleVarVec2, u.popStyleVar, idx, v)
	case float32:
		return guard.NewVoid2(u.b.PushStyleVarFloat, u.popStyleVar, idx, v)
	case float64:
		return guard.NewVoid2(u.b.PushStyleVarFloat, u.popStyleVar, idx, float32(v))
	default:
		return guard.NewVoid2(u.b.PushStyleVarFloat, u.popStyleVar, idx, float32(v.(int)))
	}
}
