package im

// Backend is the fixed catalogue of paired region and stack operations an
// immediate-mode UI binding exposes. Every Begin/Push call must eventually be
// balanced by its End/Pop counterpart according to the library's stack
// discipline; pkg/sugar enforces that pairing.
//
// Boolean Begin* methods report whether the region is open. For Begin and
// BeginChild the matching End call is required regardless of the result; for
// every other boolean pair a false result means nothing was pushed and the End
// call must be skipped.
type Backend interface {
	// Begin opens a window. End is required even when Begin returns false.
	Begin(name string, open *bool, flags WindowFlags) bool
	End()

	// BeginChild opens an embedded scrolling region. EndChild is required
	// even when BeginChild returns false.
	BeginChild(id string, size Vec2, childFlags ChildFlags, windowFlags WindowFlags) bool
	EndChild()

	// BeginChildFrame opens a framed child region styled like a frame widget.
	// EndChildFrame is required even when BeginChildFrame returns false.
	BeginChildFrame(id ID, size Vec2) bool
	EndChildFrame()

	BeginCombo(label, preview string, flags ComboFlags) bool
	EndCombo()

	BeginListBox(label string, size Vec2) bool
	EndListBox()

	BeginMenuBar() bool
	EndMenuBar()

	BeginMainMenuBar() bool
	EndMainMenuBar()

	BeginMenu(label string, enabled bool) bool
	EndMenu()

	// BeginPopup and its variants share a single EndPopup counterpart.
	BeginPopup(id string, flags WindowFlags) bool
	BeginPopupModal(name string, open *bool, flags WindowFlags) bool
	BeginPopupContextItem(id string, flags PopupFlags) bool
	BeginPopupContextWindow(id string, flags PopupFlags) bool
	BeginPopupContextVoid(id string, flags PopupFlags) bool
	EndPopup()

	BeginTable(id string, columns int, flags TableFlags, outerSize Vec2, innerWidth float32) bool
	EndTable()

	BeginTabBar(id string, flags TabBarFlags) bool
	EndTabBar()

	BeginTabItem(label string, open *bool, flags TabItemFlags) bool
	EndTabItem()

	BeginDragDropSource(flags DragDropFlags) bool
	EndDragDropSource()

	BeginDragDropTarget() bool
	EndDragDropTarget()

	// TreeNode variants share a single TreePop counterpart.
	TreeNode(label string) bool
	TreeNodeEx(label string, flags TreeNodeFlags) bool
	TreeNodeID(id string, flags TreeNodeFlags, label string) bool
	TreePop()

	// CollapsingHeader has no matching end call.
	CollapsingHeader(label string, flags TreeNodeFlags) bool

	BeginGroup()
	EndGroup()

	BeginTooltip()
	EndTooltip()

	PushFont(font Font)
	PopFont()

	PushAllowKeyboardFocus(allow bool)
	PopAllowKeyboardFocus()

	PushButtonRepeat(repeat bool)
	PopButtonRepeat()

	PushItemWidth(width float32)
	PopItemWidth()

	PushTextWrapPos(wrapX float32)
	PopTextWrapPos()

	PushIDStr(id string)
	PushIDInt(id int)
	PopID()

	PushClipRect(min, max Vec2, intersect bool)
	PopClipRect()

	PushTextureID(texture TextureID)
	PopTextureID()

	// PushStyleColorU32 takes the color as a packed ARGB word (see Color).
	PushStyleColorU32(idx Col, color uint32)
	PushStyleColorVec4(idx Col, color Vec4)
	PopStyleColor(count int)

	PushStyleVarFloat(idx StyleVarID, value float32)
	PushStyleVarVec2(idx StyleVarID, value Vec2)
	PopStyleVar(count int)

	// Version reports the bound library release, e.g. "1.90.4".
	Version() string
}
