package sugar

import (
	"testing"

	"github.com/go-imscope/imscope/pkg/guard"
	"github.com/go-imscope/imscope/pkg/im"
	"github.com/go-imscope/imscope/pkg/imtest"
)

func newUI(t *testing.T) (*UI, *imtest.Recorder) {
	t.Helper()
	rec := imtest.NewRecorder()
	ui, err := New(rec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ui, rec
}

func assertTrace(t *testing.T, rec *imtest.Recorder, want ...string) {
	t.Helper()
	got := rec.Trace()
	if len(got) != len(want) {
		t.Fatalf("trace = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("trace = %v, want %v", got, want)
		}
	}
}

// boolEntries enumerates every self-scoped entry whose begin call returns a
// bool, with its backend pair and release policy.
var boolEntries = []struct {
	name   string
	begin  string
	end    string
	always bool
	invoke func(u *UI, body func())
}{
	{"Window", "Begin", "End", true,
		func(u *UI, b func()) { u.Window("w", nil, 0, b) }},
	{"Child", "BeginChild", "EndChild", true,
		func(u *UI, b func()) { u.Child("c", im.Vec2{}, 0, 0, b) }},
	{"ChildFrame", "BeginChildFrame", "EndChildFrame", true,
		func(u *UI, b func()) { u.ChildFrame(7, im.Vec2{}, b) }},
	{"Combo", "BeginCombo", "EndCombo", false,
		func(u *UI, b func()) { u.Combo("c", "preview", 0, b) }},
	{"ListBox", "BeginListBox", "EndListBox", false,
		func(u *UI, b func()) { u.ListBox("l", im.Vec2{}, b) }},
	{"MenuBar", "BeginMenuBar", "EndMenuBar", false,
		func(u *UI, b func()) { u.MenuBar(b) }},
	{"MainMenuBar", "BeginMainMenuBar", "EndMainMenuBar", false,
		func(u *UI, b func()) { u.MainMenuBar(b) }},
	{"Menu", "BeginMenu", "EndMenu", false,
		func(u *UI, b func()) { u.Menu("m", true, b) }},
	{"Popup", "BeginPopup", "EndPopup", false,
		func(u *UI, b func()) { u.Popup("p", 0, b) }},
	{"PopupModal", "BeginPopupModal", "EndPopup", false,
		func(u *UI, b func()) { u.PopupModal("m", nil, 0, b) }},
	{"PopupContextItem", "BeginPopupContextItem", "EndPopup", false,
		func(u *UI, b func()) { u.PopupContextItem("i", 0, b) }},
	{"PopupContextWindow", "BeginPopupContextWindow", "EndPopup", false,
		func(u *UI, b func()) { u.PopupContextWindow("w", 0, b) }},
	{"PopupContextVoid", "BeginPopupContextVoid", "EndPopup", false,
		func(u *UI, b func()) { u.PopupContextVoid("v", 0, b) }},
	{"Table", "BeginTable", "EndTable", false,
		func(u *UI, b func()) { u.Table("t", 3, 0, im.Vec2{}, 0, b) }},
	{"TabBar", "BeginTabBar", "EndTabBar", false,
		func(u *UI, b func()) { u.TabBar("tb", 0, b) }},
	{"TabItem", "BeginTabItem", "EndTabItem", false,
		func(u *UI, b func()) { u.TabItem("ti", nil, 0, b) }},
	{"DragDropSource", "BeginDragDropSource", "EndDragDropSource", false,
		func(u *UI, b func()) { u.DragDropSource(0, b) }},
	{"DragDropTarget", "BeginDragDropTarget", "EndDragDropTarget", false,
		func(u *UI, b func()) { u.DragDropTarget(b) }},
	{"TreeNode", "TreeNode", "TreePop", false,
		func(u *UI, b func()) { u.TreeNode("n", b) }},
	{"TreeNodeEx", "TreeNodeEx", "TreePop", false,
		func(u *UI, b func()) { u.TreeNodeEx("n", 0, b) }},
	{"TreeNodeID", "TreeNodeID", "TreePop", false,
		func(u *UI, b func()) { u.TreeNodeID("id", 0, "n", b) }},
}

func TestSelfScopedOpen(t *testing.T) {
	for _, tt := range boolEntries {
		t.Run(tt.name, func(t *testing.T) {
			ui, rec := newUI(t)
			ran := 0
			tt.invoke(ui, func() { ran++ })

			if ran != 1 {
				t.Errorf("body ran %d times, want 1", ran)
			}
			assertTrace(t, rec, tt.begin, tt.end)
			if err := rec.Err(); err != nil {
				t.Errorf("stack discipline: %v", err)
			}
		})
	}
}

func TestSelfScopedClosed(t *testing.T) {
	for _, tt := range boolEntries {
		t.Run(tt.name, func(t *testing.T) {
			ui, rec := newUI(t)
			rec.Close(tt.begin)
			ran := 0
			tt.invoke(ui, func() { ran++ })

			if ran != 0 {
				t.Errorf("body ran %d times, want 0", ran)
			}
			wantEnds := 0
			if tt.always {
				wantEnds = 1
			}
			if got := rec.Count(tt.end); got != wantEnds {
				t.Errorf("%s called %d times, want %d", tt.end, got, wantEnds)
			}
			if err := rec.Err(); err != nil {
				t.Errorf("stack discipline: %v", err)
			}
		})
	}
}

func TestSelfScopedPanicStillReleases(t *testing.T) {
	for _, tt := range boolEntries {
		t.Run(tt.name, func(t *testing.T) {
			ui, rec := newUI(t)
			func() {
				defer func() {
					if recover() == nil {
						t.Error("expected panic to propagate")
					}
				}()
				tt.invoke(ui, func() { panic("body") })
			}()

			if got := rec.Count(tt.end); got != 1 {
				t.Errorf("%s called %d times, want 1", tt.end, got)
			}
			if err := rec.Err(); err != nil {
				t.Errorf("stack discipline: %v", err)
			}
		})
	}
}

// voidEntries enumerates every push/pop entry, with both its self-scoped and
// (where present) parent-scoped form.
var voidEntries = []struct {
	name   string
	push   string
	pop    string
	invoke func(u *UI, body func())
	set    func(u *UI) guard.EndFunc
}{
	{"Group", "BeginGroup", "EndGroup",
		func(u *UI, b func()) { u.Group(b) }, nil},
	{"Tooltip", "BeginTooltip", "EndTooltip",
		func(u *UI, b func()) { u.Tooltip(b) }, nil},
	{"Font", "PushFont", "PopFont",
		func(u *UI, b func()) { u.Font(1, b) },
		func(u *UI) guard.EndFunc { return u.SetFont(1) }},
	{"AllowKeyboardFocus", "PushAllowKeyboardFocus", "PopAllowKeyboardFocus",
		func(u *UI, b func()) { u.AllowKeyboardFocus(false, b) },
		func(u *UI) guard.EndFunc { return u.SetAllowKeyboardFocus(false) }},
	{"ButtonRepeat", "PushButtonRepeat", "PopButtonRepeat",
		func(u *UI, b func()) { u.ButtonRepeat(true, b) },
		func(u *UI) guard.EndFunc { return u.SetButtonRepeat(true) }},
	{"ItemWidth", "PushItemWidth", "PopItemWidth",
		func(u *UI, b func()) { u.ItemWidth(80, b) },
		func(u *UI) guard.EndFunc { return u.SetItemWidth(80) }},
	{"TextWrapPos", "PushTextWrapPos", "PopTextWrapPos",
		func(u *UI, b func()) { u.TextWrapPos(0, b) },
		func(u *UI) guard.EndFunc { return u.SetTextWrapPos(0) }},
	{"ID", "PushIDStr", "PopID",
		func(u *UI, b func()) { u.ID("node", b) },
		func(u *UI) guard.EndFunc { return u.SetID("node") }},
	{"IDInt", "PushIDInt", "PopID",
		func(u *UI, b func()) { u.IDInt(3, b) },
		func(u *UI) guard.EndFunc { return u.SetIDInt(3) }},
	{"ClipRect", "PushClipRect", "PopClipRect",
		func(u *UI, b func()) { u.ClipRect(im.Vec2{0, 0}, im.Vec2{64, 64}, true, b) },
		func(u *UI) guard.EndFunc { return u.SetClipRect(im.Vec2{0, 0}, im.Vec2{64, 64}, true) }},
	{"TextureID", "PushTextureID", "PopTextureID",
		func(u *UI, b func()) { u.TextureID(9, b) },
		func(u *UI) guard.EndFunc { return u.SetTextureID(9) }},
}

func TestVoidSelfScoped(t *testing.T) {
	for _, tt := range voidEntries {
		t.Run(tt.name, func(t *testing.T) {
			ui, rec := newUI(t)
			ran := 0
			tt.invoke(ui, func() { ran++ })

			if ran != 1 {
				t.Errorf("body ran %d times, want 1", ran)
			}
			assertTrace(t, rec, tt.push, tt.pop)
			if err := rec.Err(); err != nil {
				t.Errorf("stack discipline: %v", err)
			}
		})
	}
}

func TestVoidSelfScopedPanicStillReleases(t *testing.T) {
	for _, tt := range voidEntries {
		t.Run(tt.name, func(t *testing.T) {
			ui, rec := newUI(t)
			func() {
				defer func() {
					if recover() == nil {
						t.Error("expected panic to propagate")
					}
				}()
				tt.invoke(ui, func() { panic("body") })
			}()

			if got := rec.Count(tt.pop); got != 1 {
				t.Errorf("%s called %d times, want 1", tt.pop, got)
			}
		})
	}
}

func TestParentScopedReleasesAtEnclosingBlockEnd(t *testing.T) {
	for _, tt := range voidEntries {
		if tt.set == nil {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			ui, rec := newUI(t)
			func() {
				defer tt.set(ui)()
				// Statements after the Set call stay under the push.
				ui.Group(nil)
			}()

			assertTrace(t, rec, tt.push, "BeginGroup", "EndGroup", tt.pop)
			if err := rec.Err(); err != nil {
				t.Errorf("stack discipline: %v", err)
			}
		})
	}
}

func TestNestedGuardsReleaseLIFO(t *testing.T) {
	ui, rec := newUI(t)
	ui.Window("a", nil, 0, func() {
		ui.TreeNode("b", func() {
			ui.Group(nil)
		})
	})

	assertTrace(t, rec, "Begin", "TreeNode", "BeginGroup", "EndGroup", "TreePop", "End")
	if err := rec.Err(); err != nil {
		t.Fatalf("stack discipline: %v", err)
	}
}

func TestNestedGuardsReleaseLIFOUnderPanic(t *testing.T) {
	ui, rec := newUI(t)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		ui.Window("a", nil, 0, func() {
			ui.TreeNode("b", func() {
				ui.Group(func() {
					panic("innermost body")
				})
			})
		})
	}()

	assertTrace(t, rec, "Begin", "TreeNode", "BeginGroup", "EndGroup", "TreePop", "End")
	if err := rec.Err(); err != nil {
		t.Fatalf("stack discipline: %v", err)
	}
}

func TestNilBodyIsEmptyBody(t *testing.T) {
	ui, rec := newUI(t)
	ui.Window("w", nil, 0, nil)
	ui.Group(nil)
	ui.TreeNode("n", nil)

	assertTrace(t, rec, "Begin", "End", "BeginGroup", "EndGroup", "TreeNode", "TreePop")
}

func TestCollapsingHeaderHasNoEndCall(t *testing.T) {
	ui, rec := newUI(t)
	ran := 0
	ui.CollapsingHeader("h", 0, func() { ran++ })
	if ran != 1 {
		t.Errorf("body ran %d times, want 1", ran)
	}
	assertTrace(t, rec, "CollapsingHeader")

	rec2 := imtest.NewRecorder()
	rec2.Close("CollapsingHeader")
	ui2 := MustNew(rec2)
	ui2.CollapsingHeader("h", 0, func() { t.Error("body must not run when collapsed") })
	assertTrace(t, rec2, "CollapsingHeader")
}

func TestNewRejectsUnsupportedVersions(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.90.4", false},
		{"1.90.4 WIP", false},
		{"1.81.0", false},
		{"1.81", false},
		{"1.80.2", true},
		{"1.74", true},
		{"", true},
		{"devel", true},
	}
	for _, tt := range tests {
		rec := imtest.NewRecorder()
		rec.BackendVersion = tt.version
		_, err := New(rec)
		if (err != nil) != tt.wantErr {
			t.Errorf("New with version %q: err = %v, wantErr %v", tt.version, err, tt.wantErr)
		}
	}
}
