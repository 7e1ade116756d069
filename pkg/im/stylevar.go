package im

// StyleVarID indexes a style variable slot.
type StyleVarID int

const (
	StyleVarAlpha StyleVarID = iota
	StyleVarDisabledAlpha
	StyleVarWindowPadding
	StyleVarWindowRounding
	StyleVarWindowBorderSize
	StyleVarWindowMinSize
	StyleVarWindowTitleAlign
	StyleVarChildRounding
	StyleVarChildBorderSize
	StyleVarPopupRounding
	StyleVarPopupBorderSize
	StyleVarFramePadding
	StyleVarFrameRounding
	StyleVarFrameBorderSize
	StyleVarItemSpacing
	StyleVarItemInnerSpacing
	StyleVarIndentSpacing
	StyleVarCellPadding
	StyleVarScrollbarSize
	StyleVarScrollbarRounding
	StyleVarGrabMinSize
	StyleVarGrabRounding
	StyleVarTabRounding
	StyleVarButtonTextAlign
	StyleVarSelectableTextAlign
	styleVarCount
)

var styleVarNames = [styleVarCount]string{
	"Alpha", "DisabledAlpha", "WindowPadding", "WindowRounding",
	"WindowBorderSize", "WindowMinSize", "WindowTitleAlign",
	"ChildRounding", "ChildBorderSize", "PopupRounding", "PopupBorderSize",
	"FramePadding", "FrameRounding", "FrameBorderSize",
	"ItemSpacing", "ItemInnerSpacing", "IndentSpacing", "CellPadding",
	"ScrollbarSize", "ScrollbarRounding", "GrabMinSize", "GrabRounding",
	"TabRounding", "ButtonTextAlign", "SelectableTextAlign",
}

// styleVarVec2 marks the slots that take a two-component value.
var styleVarVec2 = map[StyleVarID]bool{
	StyleVarWindowPadding:       true,
	StyleVarWindowMinSize:       true,
	StyleVarWindowTitleAlign:    true,
	StyleVarFramePadding:        true,
	StyleVarItemSpacing:         true,
	StyleVarItemInnerSpacing:    true,
	StyleVarCellPadding:         true,
	StyleVarButtonTextAlign:     true,
	StyleVarSelectableTextAlign: true,
}

var styleVarsByName = func() map[string]StyleVarID {
	m := make(map[string]StyleVarID, len(styleVarNames))
	for i, name := range styleVarNames {
		m[name] = StyleVarID(i)
	}
	return m
}()

func (v StyleVarID) String() string {
	if v < 0 || v >= styleVarCount {
		return "StyleVar(?)"
	}
	return styleVarNames[v]
}

// IsVec2 reports whether the slot takes a Vec2 rather than a scalar.
func (v StyleVarID) IsVec2() bool {
	return styleVarVec2[v]
}

// StyleVarByName resolves a style variable slot from its name
// (e.g. "FrameRounding").
func StyleVarByName(name string) (StyleVarID, bool) {
	v, ok := styleVarsByName[name]
	return v, ok
}
