package im

// Col indexes a style color slot.
type Col int

const (
	ColText Col = iota
	ColTextDisabled
	ColWindowBg
	ColChildBg
	ColPopupBg
	ColBorder
	ColBorderShadow
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg
	ColTitleBgActive
	ColTitleBgCollapsed
	ColMenuBarBg
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	ColScrollbarGrabActive
	ColCheckMark
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
	ColSeparator
	ColSeparatorHovered
	ColSeparatorActive
	ColResizeGrip
	ColResizeGripHovered
	ColResizeGripActive
	ColTab
	ColTabHovered
	ColTabActive
	ColTabUnfocused
	ColTabUnfocusedActive
	ColPlotLines
	ColPlotLinesHovered
	ColPlotHistogram
	ColPlotHistogramHovered
	ColTableHeaderBg
	ColTableBorderStrong
	ColTableBorderLight
	ColTableRowBg
	ColTableRowBgAlt
	ColTextSelectedBg
	ColDragDropTarget
	ColNavHighlight
	ColNavWindowingHighlight
	ColNavWindowingDimBg
	ColModalWindowDimBg
	colCount
)

// colNames is indexed by Col. Names match the upstream enum suffixes so theme
// files read the way the library documents them.
var colNames = [colCount]string{
	"Text", "TextDisabled", "WindowBg", "ChildBg", "PopupBg",
	"Border", "BorderShadow", "FrameBg", "FrameBgHovered", "FrameBgActive",
	"TitleBg", "TitleBgActive", "TitleBgCollapsed", "MenuBarBg",
	"ScrollbarBg", "ScrollbarGrab", "ScrollbarGrabHovered", "ScrollbarGrabActive",
	"CheckMark", "SliderGrab", "SliderGrabActive",
	"Button", "ButtonHovered", "ButtonActive",
	"Header", "HeaderHovered", "HeaderActive",
	"Separator", "SeparatorHovered", "SeparatorActive",
	"ResizeGrip", "ResizeGripHovered", "ResizeGripActive",
	"Tab", "TabHovered", "TabActive", "TabUnfocused", "TabUnfocusedActive",
	"PlotLines", "PlotLinesHovered", "PlotHistogram", "PlotHistogramHovered",
	"TableHeaderBg", "TableBorderStrong", "TableBorderLight",
	"TableRowBg", "TableRowBgAlt", "TextSelectedBg", "DragDropTarget",
	"NavHighlight", "NavWindowingHighlight", "NavWindowingDimBg",
	"ModalWindowDimBg",
}

var colsByName = func() map[string]Col {
	m := make(map[string]Col, len(colNames))
	for i, name := range colNames {
		m[name] = Col(i)
	}
	return m
}()

func (c Col) String() string {
	if c < 0 || c >= colCount {
		return "Col(?)"
	}
	return colNames[c]
}

// ColByName resolves a style color slot from its name (e.g. "WindowBg").
func ColByName(name string) (Col, bool) {
	c, ok := colsByName[name]
	return c, ok
}
