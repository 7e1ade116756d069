// Package imtest provides a recording im.Backend for tests.
//
// Recorder captures every backend call in order, counts calls per name, and
// checks the begin/end stack discipline the real library enforces. Boolean
// begin calls return true unless the test forces them closed:
//
//	rec := imtest.NewRecorder()
//	rec.Close("BeginCombo")
//	ui := sugar.MustNew(rec)
//	// ... exercise guarded calls ...
//	if rec.Count("EndCombo") != 0 { ... }
package imtest

import (
	"fmt"

	"github.com/go-imscope/imscope/pkg/im"
)

// Call is one recorded backend invocation.
type Call struct {
	Name string
	Args []any
}

// Recorder implements im.Backend by recording calls. The zero value is not
// usable; construct with NewRecorder.
type Recorder struct {
	// BackendVersion is reported by Version.
	BackendVersion string

	calls  []Call
	counts map[string]int
	open   []string
	closed map[string]bool
	err    error
}

// NewRecorder returns a Recorder reporting a supported backend version.
func NewRecorder() *Recorder {
	return &Recorder{
		BackendVersion: "1.90.4",
		counts:         make(map[string]int),
		closed:         make(map[string]bool),
	}
}

// Close forces the named boolean begin calls (and CollapsingHeader) to
// return false from now on.
func (r *Recorder) Close(names ...string) {
	for _, name := range names {
		r.closed[name] = true
	}
}

// Open reverts Close for the named begin calls.
func (r *Recorder) Open(names ...string) {
	for _, name := range names {
		delete(r.closed, name)
	}
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Trace returns the recorded call names in order.
func (r *Recorder) Trace() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named call was recorded.
func (r *Recorder) Count(name string) int {
	return r.counts[name]
}

// Depth returns the number of regions still awaiting their end call.
func (r *Recorder) Depth() int {
	return len(r.open)
}

// Err returns the first stack-discipline violation observed, if any.
func (r *Recorder) Err() error {
	if r.err != nil {
		return r.err
	}
	if len(r.open) > 0 {
		return fmt.Errorf("imtest: %d region(s) left open, next owed end is %s",
			len(r.open), r.open[len(r.open)-1])
	}
	return nil
}

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
	r.counts[name]++
}

// begin records a boolean begin call. endName is pushed onto the owed stack
// when the region opens, or unconditionally for alwaysBalance pairs.
func (r *Recorder) begin(name, endName string, alwaysBalance bool, args ...any) bool {
	r.record(name, args...)
	state := !r.closed[name]
	if state || alwaysBalance {
		r.open = append(r.open, endName)
	}
	return state
}

// push records a void begin/push call and its owed end.
func (r *Recorder) push(name, endName string, args ...any) {
	r.record(name, args...)
	r.open = append(r.open, endName)
}

// pop records an end/pop call and checks it against the owed stack.
func (r *Recorder) pop(name string, args ...any) {
	r.record(name, args...)
	r.unwind(name)
}

// unwind checks one owed stack entry without recording a call.
func (r *Recorder) unwind(name string) {
	if len(r.open) == 0 {
		if r.err == nil {
			r.err = fmt.Errorf("imtest: %s with no open region", name)
		}
		return
	}
	owed := r.open[len(r.open)-1]
	if owed != name {
		if r.err == nil {
			r.err = fmt.Errorf("imtest: got %s, stack owes %s", name, owed)
		}
		return
	}
	r.open = r.open[:len(r.open)-1]
}

func (r *Recorder) Begin(name string, open *bool, flags im.WindowFlags) bool {
	return r.begin("Begin", "End", true, name, flags)
}

func (r *Recorder) End() { r.pop("End") }

func (r *Recorder) BeginChild(id string, size im.Vec2, childFlags im.ChildFlags, windowFlags im.WindowFlags) bool {
	return r.begin("BeginChild", "EndChild", true, id, size, childFlags, windowFlags)
}

func (r *Recorder) EndChild() { r.pop("EndChild") }

func (r *Recorder) BeginChildFrame(id im.ID, size im.Vec2) bool {
	return r.begin("BeginChildFrame", "EndChildFrame", true, id, size)
}

func (r *Recorder) EndChildFrame() { r.pop("EndChildFrame") }

func (r *Recorder) BeginCombo(label, preview string, flags im.ComboFlags) bool {
	return r.begin("BeginCombo", "EndCombo", false, label, preview, flags)
}

func (r *Recorder) EndCombo() { r.pop("EndCombo") }

func (r *Recorder) BeginListBox(label string, size im.Vec2) bool {
	return r.begin("BeginListBox", "EndListBox", false, label, size)
}

func (r *Recorder) EndListBox() { r.pop("EndListBox") }

func (r *Recorder) BeginMenuBar() bool {
	return r.begin("BeginMenuBar", "EndMenuBar", false)
}

func (r *Recorder) EndMenuBar() { r.pop("EndMenuBar") }

func (r *Recorder) BeginMainMenuBar() bool {
	return r.begin("BeginMainMenuBar", "EndMainMenuBar", false)
}

func (r *Recorder) EndMainMenuBar() { r.pop("EndMainMenuBar") }

func (r *Recorder) BeginMenu(label string, enabled bool) bool {
	return r.begin("BeginMenu", "EndMenu", false, label, enabled)
}

func (r *Recorder) EndMenu() { r.pop("EndMenu") }

func (r *Recorder) BeginPopup(id string, flags im.WindowFlags) bool {
	return r.begin("BeginPopup", "EndPopup", false, id, flags)
}

func (r *Recorder) BeginPopupModal(name string, open *bool, flags im.WindowFlags) bool {
	return r.begin("BeginPopupModal", "EndPopup", false, name, flags)
}

func (r *Recorder) BeginPopupContextItem(id string, flags im.PopupFlags) bool {
	return r.begin("BeginPopupContextItem", "EndPopup", false, id, flags)
}

func (r *Recorder) BeginPopupContextWindow(id string, flags im.PopupFlags) bool {
	return r.begin("BeginPopupContextWindow", "EndPopup", false, id, flags)
}

func (r *Recorder) BeginPopupContextVoid(id string, flags im.PopupFlags) bool {
	return r.begin("BeginPopupContextVoid", "EndPopup", false, id, flags)
}

func (r *Recorder) EndPopup() { r.pop("EndPopup") }

func (r *Recorder) BeginTable(id string, columns int, flags im.TableFlags, outerSize im.Vec2, innerWidth float32) bool {
	return r.begin("BeginTable", "EndTable", false, id, columns, flags, outerSize, innerWidth)
}

func (r *Recorder) EndTable() { r.pop("EndTable") }

func (r *Recorder) BeginTabBar(id string, flags im.TabBarFlags) bool {
	return r.begin("BeginTabBar", "EndTabBar", false, id, flags)
}

func (r *Recorder) EndTabBar() { r.pop("EndTabBar") }

func (r *Recorder) BeginTabItem(label string, open *bool, flags im.TabItemFlags) bool {
	return r.begin("BeginTabItem", "EndTabItem", false, label, flags)
}

func (r *Recorder) EndTabItem() { r.pop("EndTabItem") }

func (r *Recorder) BeginDragDropSource(flags im.DragDropFlags) bool {
	return r.begin("BeginDragDropSource", "EndDragDropSource", false, flags)
}

func (r *Recorder) EndDragDropSource() { r.pop("EndDragDropSource") }

func (r *Recorder) BeginDragDropTarget() bool {
	return r.begin("BeginDragDropTarget", "EndDragDropTarget", false)
}

func (r *Recorder) EndDragDropTarget() { r.pop("EndDragDropTarget") }

func (r *Recorder) TreeNode(label string) bool {
	return r.begin("TreeNode", "TreePop", false, label)
}

func (r *Recorder) TreeNodeEx(label string, flags im.TreeNodeFlags) bool {
	return r.begin("TreeNodeEx", "TreePop", false, label, flags)
}

func (r *Recorder) TreeNodeID(id string, flags im.TreeNodeFlags, label string) bool {
	return r.begin("TreeNodeID", "TreePop", false, id, flags, label)
}

func (r *Recorder) TreePop() { r.pop("TreePop") }

func (r *Recorder) CollapsingHeader(label string, flags im.TreeNodeFlags) bool {
	r.record("CollapsingHeader", label, flags)
	return !r.closed["CollapsingHeader"]
}

func (r *Recorder) BeginGroup() { r.push("BeginGroup", "EndGroup") }

func (r *Recorder) EndGroup() { r.pop("EndGroup") }

func (r *Recorder) BeginTooltip() { r.push("BeginTooltip", "EndTooltip") }

func (r *Recorder) EndTooltip() { r.pop("EndTooltip") }

func (r *Recorder) PushFont(font im.Font) { r.push("PushFont", "PopFont", font) }

func (r *Recorder) PopFont() { r.pop("PopFont") }

func (r *Recorder) PushAllowKeyboardFocus(allow bool) {
	r.push("PushAllowKeyboardFocus", "PopAllowKeyboardFocus", allow)
}

func (r *Recorder) PopAllowKeyboardFocus() { r.pop("PopAllowKeyboardFocus") }

func (r *Recorder) PushButtonRepeat(repeat bool) {
	r.push("PushButtonRepeat", "PopButtonRepeat", repeat)
}

func (r *Recorder) PopButtonRepeat() { r.pop("PopButtonRepeat") }

func (r *Recorder) PushItemWidth(width float32) {
	r.push("PushItemWidth", "PopItemWidth", width)
}

func (r *Recorder) PopItemWidth() { r.pop("PopItemWidth") }

func (r *Recorder) PushTextWrapPos(wrapX float32) {
	r.push("PushTextWrapPos", "PopTextWrapPos", wrapX)
}

func (r *Recorder) PopTextWrapPos() { r.pop("PopTextWrapPos") }

func (r *Recorder) PushIDStr(id string) { r.push("PushIDStr", "PopID", id) }

func (r *Recorder) PushIDInt(id int) { r.push("PushIDInt", "PopID", id) }

func (r *Recorder) PopID() { r.pop("PopID") }

func (r *Recorder) PushClipRect(min, max im.Vec2, intersect bool) {
	r.push("PushClipRect", "PopClipRect", min, max, intersect)
}

func (r *Recorder) PopClipRect() { r.pop("PopClipRect") }

func (r *Recorder) PushTextureID(texture im.TextureID) {
	r.push("PushTextureID", "PopTextureID", texture)
}

func (r *Recorder) PopTextureID() { r.pop("PopTextureID") }

func (r *Recorder) PushStyleColorU32(idx im.Col, color uint32) {
	r.push("PushStyleColorU32", "PopStyleColor", idx, color)
}

func (r *Recorder) PushStyleColorVec4(idx im.Col, color im.Vec4) {
	r.push("PushStyleColorVec4", "PopStyleColor", idx, color)
}

func (r *Recorder) PopStyleColor(count int) {
	r.record("PopStyleColor", count)
	for i := 0; i < count; i++ {
		r.unwind("PopStyleColor")
	}
}

func (r *Recorder) PushStyleVarFloat(idx im.StyleVarID, value float32) {
	r.push("PushStyleVarFloat", "PopStyleVar", idx, value)
}

func (r *Recorder) PushStyleVarVec2(idx im.StyleVarID, value im.Vec2) {
	r.push("PushStyleVarVec2", "PopStyleVar", idx, value)
}

func (r *Recorder) PopStyleVar(count int) {
	r.record("PopStyleVar", count)
	for i := 0; i < count; i++ {
		r.unwind("PopStyleVar")
	}
}

func (r *Recorder) Version() string { return r.BackendVersion }
