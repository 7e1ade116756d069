// Command imscope-trace runs a representative guarded frame against the
// recording backend and prints the resulting call trace, one call per line.
// It exits nonzero if the trace violates the begin/end stack discipline,
// which makes it usable as a quick smoke check for catalogue changes.
//
// Usage:
//
//	imscope-trace [-theme file.yaml] [-close Begin,BeginCombo]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-imscope/imscope/pkg/im"
	"github.com/go-imscope/imscope/pkg/imtest"
	"github.com/go-imscope/imscope/pkg/sugar"
	"github.com/go-imscope/imscope/pkg/theme"
)

func main() {
	themePath := flag.String("theme", "", "apply a YAML theme file around the frame")
	closeList := flag.String("close", "", "comma-separated begin calls forced to return false")
	flag.Parse()

	rec := imtest.NewRecorder()
	if *closeList != "" {
		rec.Close(strings.Split(*closeList, ",")...)
	}

	ui, err := sugar.New(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "imscope-trace: %v\n", err)
		os.Exit(1)
	}

	frame := func() { demoFrame(ui) }
	if *themePath != "" {
		th, err := theme.Load(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "imscope-trace: %v\n", err)
			os.Exit(1)
		}
		inner := frame
		frame = func() { th.Scoped(ui, inner) }
	}

	if err := ui.Frame("imscope-trace", frame); err != nil {
		fmt.Fprintf(os.Stderr, "imscope-trace: %v\n", err)
		os.Exit(1)
	}

	for _, call := range rec.Calls() {
		if len(call.Args) == 0 {
			fmt.Println(call.Name)
			continue
		}
		parts := make([]string, len(call.Args))
		for i, a := range call.Args {
			parts[i] = fmt.Sprint(a)
		}
		fmt.Printf("%s(%s)\n", call.Name, strings.Join(parts, ", "))
	}

	if err := rec.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "imscope-trace: %v\n", err)
		os.Exit(1)
	}
}

// demoFrame touches every kind of entry: always-release windows, conditional
// regions, void stacks, parent-scoped pushes, and the overloaded style calls.
func demoFrame(ui *sugar.UI) {
	ui.MainMenuBar(func() {
		ui.Menu("File", true, func() {
			ui.Backend().CollapsingHeader("Recent", 0)
		})
	})

	ui.Window("Demo", nil, im.WindowFlagsMenuBar, func() {
		ui.MenuBar(func() {
			ui.Menu("Edit", true, nil)
		})

		defer ui.SetItemWidth(120)()

		sugar.StyleColor(ui, im.ColText, im.ColorWhite, func() {
			ui.TreeNode("settings", func() {
				ui.IDInt(1, func() {
					ui.Combo("mode", "fast", 0, nil)
				})
			})
		})

		sugar.StyleVar(ui, im.StyleVarWindowPadding, im.Vec2{8, 8}, func() {
			ui.Child("log", im.Vec2{0, 120}, im.ChildFlagsBorder, 0, func() {
				ui.Group(nil)
			})
		})

		ui.Table("stats", 3, im.TableFlagsRowBg, im.Vec2{}, 0, nil)
		ui.CollapsingHeader("About", 0, func() {
			ui.Tooltip(nil)
		})
	})
}
