// Package sugar turns the paired Begin*/End* and Push*/Pop* calls of an
// immediate-mode UI backend into block-scoped, automatically balanced regions.
//
// # Self-scoped constructs
//
// Each With-style method performs the begin call, runs the body when the
// region is open, and guarantees the matching end call on every exit path:
//
//	ui.Window("Demo", nil, 0, func() {
//		ui.TreeNode("settings", func() {
//			ui.ItemWidth(120, func() {
//				// widgets
//			})
//		})
//	})
//
// Whether the end call happens when the begin call reports a closed region is
// fixed per entry: windows and child regions always balance, while combos,
// popups, menus, tabs, tables, and trees push nothing when closed and are not
// balanced. A nil body is allowed and treated as an empty body.
//
// # Parent-scoped constructs
//
// Each Set-style method performs the push immediately and returns the release
// for the caller to defer, so a push can cover the rest of the enclosing
// block without extra nesting:
//
//	defer ui.SetItemWidth(120)()
//	defer sugar.SetStyleVar(ui, im.StyleVarFrameRounding, 4)()
//
// # Overloaded entries
//
// StyleColor and StyleVar accept either packed or vector values; the backend
// call is selected from the static type argument. They are package functions
// because Go methods cannot take type parameters.
//
// All constructs are single-threaded: the backend assumes one logical UI
// thread with strictly nested begin/end calls per frame.
package sugar
