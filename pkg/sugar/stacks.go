package sugar

import (
	"github.com/go-imscope/imscope/pkg/guard"
	"github.com/go-imscope/imscope/pkg/im"
)

// Void entries come in two flavors: the With-style methods scope the push to
// the body, the Set-style methods push immediately and return the release for
// the caller to defer at the end of the enclosing block.

// Group scopes a layout group to body.
func (u *UI) Group(body func()) {
	g := guard.NewVoid0(u.b.BeginGroup, u.b.EndGroup)
	defer g.End()
	runBody(body)
}

// Tooltip scopes a tooltip window to body.
func (u *UI) Tooltip(body func()) {
	g := guard.NewVoid0(u.b.BeginTooltip, u.b.EndTooltip)
	defer g.End()
	runBody(body)
}

// Font scopes a font push to body.
func (u *UI) Font(font im.Font, body func()) {
	g := guard.NewVoid1(u.b.PushFont, u.b.PopFont, font)
	defer g.End()
	runBody(body)
}

// SetFont pushes a font until the returned release runs.
func (u *UI) SetFont(font im.Font) guard.EndFunc {
	g := guard.NewVoid1(u.b.PushFont, u.b.PopFont, font)
	return g.End
}

// AllowKeyboardFocus scopes the tab-stop flag to body.
func (u *UI) AllowKeyboardFocus(allow bool, body func()) {
	g := guard.NewVoid1(u.b.PushAllowKeyboardFocus, u.b.PopAllowKeyboardFocus, allow)
	defer g.End()
	runBody(body)
}

// SetAllowKeyboardFocus pushes the tab-stop flag until the returned release runs.
func (u *UI) SetAllowKeyboardFocus(allow bool) guard.EndFunc {
	g := guard.NewVoid1(u.b.PushAllowKeyboardFocus, u.b.PopAllowKeyboardFocus, allow)
	return g.End
}

// ButtonRepeat scopes the button-repeat flag to body.
func (u *UI) ButtonRepeat(repeat bool, body func()) {
	g := guard.NewVoid1(u.b.PushButtonRepeat, u.b.PopButtonRepeat, repeat)
	defer g.End()
	runBody(body)
}

// SetButtonRepeat pushes the button-repeat flag until the returned release runs.
func (u *UI) SetButtonRepeat(repeat bool) guard.EndFunc {
	g := guard.NewVoid1(u.b.PushButtonRepeat, u.b.PopButtonRepeat, repeat)
	return g.End
}

// ItemWidth scopes an item width to body.
func (u *UI) ItemWidth(width float32, body func()) {
	g := guard.NewVoid1(u.b.PushItemWidth, u.b.PopItemWidth, width)
	defer g.End()
	runBody(body)
}

// SetItemWidth pushes an item width until the returned release runs.
func (u *UI) SetItemWidth(width float32) guard.EndFunc {
	g := guard.NewVoid1(u.b.PushItemWidth, u.b.PopItemWidth, width)
	return g.End
}

// TextWrapPos scopes a text wrap position to body.
func (u *UI) TextWrapPos(wrapX float32, body func()) {
	g := guard.NewVoid1(u.b.PushTextWrapPos, u.b.PopTextWrapPos, wrapX)
	defer g.End()
	runBody(body)
}

// SetTextWrapPos pushes a text wrap position until the returned release runs.
func (u *UI) SetTextWrapPos(wrapX float32) guard.EndFunc {
	g := guard.NewVoid1(u.b.PushTextWrapPos, u.b.PopTextWrapPos, wrapX)
	return g.End
}

// ID scopes a string identifier to body.
func (u *UI) ID(id string, body func()) {
	g := guard.NewVoid1(u.b.PushIDStr, u.b.PopID, id)
	defer g.End()
	runBody(body)
}

// SetID pushes a string identifier until the returned release runs.
func (u *UI) SetID(id string) guard.EndFunc {
	g := guard.NewVoid1(u.b.PushIDStr, u.b.PopID, id)
	return g.End
}

// IDInt scopes an integer identifier to body.
func (u *UI) IDInt(id int, body func()) {
	g := guard.NewVoid1(u.b.PushIDInt, u.b.PopID, id)
	defer g.End()
	runBody(body)
}

// SetIDInt pushes an integer identifier until the returned release runs.
func (u *UI) SetIDInt(id int) guard.EndFunc {
	g := guard.NewVoid1(u.b.PushIDInt, u.b.PopID, id)
	return g.End
}

// ClipRect scopes a clip rectangle to body.
func (u *UI) ClipRect(min, max im.Vec2, intersect bool, body func()) {
	g := guard.NewVoid3(u.b.PushClipRect, u.b.PopClipRect, min, max, intersect)
	defer g.End()
	runBody(body)
}

// SetClipRect pushes a clip rectangle until the returned release runs.
func (u *UI) SetClipRect(min, max im.Vec2, intersect bool) guard.EndFunc {
	g := guard.NewVoid3(u.b.PushClipRect, u.b.PopClipRect, min, max, intersect)
	return g.End
}

// TextureID scopes a texture binding to body.
func (u *UI) TextureID(texture im.TextureID, body func()) {
	g := guard.NewVoid1(u.b.PushTextureID, u.b.PopTextureID, texture)
	defer g.End()
	runBody(body)
}

// SetTextureID pushes a texture binding until the returned release runs.
func (u *UI) SetTextureID(texture im.TextureID) guard.EndFunc {
	g := guard.NewVoid1(u.b.PushTextureID, u.b.PopTextureID, texture)
	return g.End
}
