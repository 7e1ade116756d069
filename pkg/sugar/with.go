package sugar

import (
	"github.com/go-imscope/imscope/pkg/guard"
	"github.com/go-imscope/imscope/pkg/im"
)

// Self-scoped entries for boolean begin calls. Each method's release policy
// mirrors the backend contract documented on im.Backend: Window, Child, and
// ChildFrame balance unconditionally, everything else only when open.

// Window shows a window and runs body while it is visible. The window is
// balanced even when collapsed or clipped.
func (u *UI) Window(name string, open *bool, flags im.WindowFlags, body func()) {
	g := guard.NewBool[guard.Always](u.b.Begin(name, open, flags), u.b.End)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// Child shows an embedded scrolling region.
func (u *UI) Child(id string, size im.Vec2, childFlags im.ChildFlags, windowFlags im.WindowFlags, body func()) {
	g := guard.NewBool[guard.Always](u.b.BeginChild(id, size, childFlags, windowFlags), u.b.EndChild)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// ChildFrame shows a framed child region.
func (u *UI) ChildFrame(id im.ID, size im.Vec2, body func()) {
	g := guard.NewBool[guard.Always](u.b.BeginChildFrame(id, size), u.b.EndChildFrame)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// Combo runs body while the combo popup is open.
func (u *UI) Combo(label, preview string, flags im.ComboFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginCombo(label, preview, flags), u.b.EndCombo)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// ListBox runs body while the list box is open.
func (u *UI) ListBox(label string, size im.Vec2, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginListBox(label, size), u.b.EndListBox)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// MenuBar runs body while the current window's menu bar is active.
func (u *UI) MenuBar(body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginMenuBar(), u.b.EndMenuBar)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// MainMenuBar runs body while the application menu bar is active.
func (u *UI) MainMenuBar(body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginMainMenuBar(), u.b.EndMainMenuBar)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// Menu runs body while the menu is open.
func (u *UI) Menu(label string, enabled bool, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginMenu(label, enabled), u.b.EndMenu)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// Popup runs body while the popup is open.
func (u *UI) Popup(id string, flags im.WindowFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginPopup(id, flags), u.b.EndPopup)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// PopupModal runs body while the modal popup is open.
func (u *UI) PopupModal(name string, open *bool, flags im.WindowFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginPopupModal(name, open, flags), u.b.EndPopup)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// PopupContextItem runs body while the last item's context popup is open.
func (u *UI) PopupContextItem(id string, flags im.PopupFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginPopupContextItem(id, flags), u.b.EndPopup)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// PopupContextWindow runs body while the current window's context popup is open.
func (u *UI) PopupContextWindow(id string, flags im.PopupFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginPopupContextWindow(id, flags), u.b.EndPopup)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// PopupContextVoid runs body while the void (no window) context popup is open.
func (u *UI) PopupContextVoid(id string, flags im.PopupFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginPopupContextVoid(id, flags), u.b.EndPopup)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// Table runs body while the table is being submitted.
func (u *UI) Table(id string, columns int, flags im.TableFlags, outerSize im.Vec2, innerWidth float32, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginTable(id, columns, flags, outerSize, innerWidth), u.b.EndTable)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// TabBar runs body while the tab bar is active.
func (u *UI) TabBar(id string, flags im.TabBarFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginTabBar(id, flags), u.b.EndTabBar)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// TabItem runs body while the tab is selected.
func (u *UI) TabItem(label string, open *bool, flags im.TabItemFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginTabItem(label, open, flags), u.b.EndTabItem)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// DragDropSource runs body while the last item is being dragged.
func (u *UI) DragDropSource(flags im.DragDropFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginDragDropSource(flags), u.b.EndDragDropSource)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// DragDropTarget runs body while the last item can accept a drop.
func (u *UI) DragDropTarget(body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.BeginDragDropTarget(), u.b.EndDragDropTarget)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// TreeNode runs body while the node is expanded. Callers needing formatted
// labels build them with fmt.Sprintf.
func (u *UI) TreeNode(label string, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.TreeNode(label), u.b.TreePop)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// TreeNodeEx is TreeNode with flags.
func (u *UI) TreeNodeEx(label string, flags im.TreeNodeFlags, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.TreeNodeEx(label, flags), u.b.TreePop)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// TreeNodeID is TreeNodeEx with an identifier distinct from the label.
func (u *UI) TreeNodeID(id string, flags im.TreeNodeFlags, label string, body func()) {
	g := guard.NewBool[guard.WhenOpen](u.b.TreeNodeID(id, flags, label), u.b.TreePop)
	defer g.End()
	if g.Active() {
		runBody(body)
	}
}

// CollapsingHeader runs body while the header is expanded. The backend keeps
// no stack entry for headers, so there is nothing to release.
func (u *UI) CollapsingHeader(label string, flags im.TreeNodeFlags, body func()) {
	if u.b.CollapsingHeader(label, flags) {
		runBody(body)
	}
}
