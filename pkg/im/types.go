package im

import "golang.org/x/image/math/f32"

// Vec2 is a two-component float vector (positions, sizes, paddings).
type Vec2 = f32.Vec2

// Vec4 is a four-component float vector (unpacked RGBA colors).
type Vec4 = f32.Vec4

// ID is a hashed widget identifier.
type ID uint32

// Font is an opaque handle to a font owned by the backend.
type Font uintptr

// TextureID is an opaque handle to a texture owned by the backend.
type TextureID uintptr

// Cond controls when a setting is applied.
type Cond int

const (
	CondNone Cond = iota
	CondAlways
	CondOnce
	CondFirstUseEver
	CondAppearing
)

// WindowFlags configure windows, child windows, and popups.
type WindowFlags int

const (
	WindowFlagsNone             WindowFlags = 0
	WindowFlagsNoTitleBar       WindowFlags = 1 << 0
	WindowFlagsNoResize         WindowFlags = 1 << 1
	WindowFlagsNoMove           WindowFlags = 1 << 2
	WindowFlagsNoScrollbar      WindowFlags = 1 << 3
	WindowFlagsNoCollapse       WindowFlags = 1 << 5
	WindowFlagsAlwaysAutoResize WindowFlags = 1 << 6
	WindowFlagsNoBackground     WindowFlags = 1 << 7
	WindowFlagsNoSavedSettings  WindowFlags = 1 << 8
	WindowFlagsMenuBar          WindowFlags = 1 << 10
	WindowFlagsNoNav            WindowFlags = 1<<16 | 1<<17
)

// ChildFlags configure child regions.
type ChildFlags int

const (
	ChildFlagsNone                   ChildFlags = 0
	ChildFlagsBorder                 ChildFlags = 1 << 0
	ChildFlagsAlwaysUseWindowPadding ChildFlags = 1 << 1
	ChildFlagsResizeX                ChildFlags = 1 << 2
	ChildFlagsResizeY                ChildFlags = 1 << 3
	ChildFlagsAutoResizeX            ChildFlags = 1 << 4
	ChildFlagsAutoResizeY            ChildFlags = 1 << 5
)

// ComboFlags configure combo boxes.
type ComboFlags int

const (
	ComboFlagsNone           ComboFlags = 0
	ComboFlagsPopupAlignLeft ComboFlags = 1 << 0
	ComboFlagsHeightSmall    ComboFlags = 1 << 1
	ComboFlagsHeightRegular  ComboFlags = 1 << 2
	ComboFlagsHeightLarge    ComboFlags = 1 << 3
	ComboFlagsHeightLargest  ComboFlags = 1 << 4
	ComboFlagsNoArrowButton  ComboFlags = 1 << 5
	ComboFlagsNoPreview      ComboFlags = 1 << 6
)

// PopupFlags configure popup open behavior (context popups).
type PopupFlags int

const (
	PopupFlagsNone                    PopupFlags = 0
	PopupFlagsMouseButtonLeft         PopupFlags = 0
	PopupFlagsMouseButtonRight        PopupFlags = 1
	PopupFlagsMouseButtonMiddle       PopupFlags = 2
	PopupFlagsNoOpenOverExistingPopup PopupFlags = 1 << 5
	PopupFlagsNoOpenOverItems         PopupFlags = 1 << 6
)

// TableFlags configure tables.
type TableFlags int

const (
	TableFlagsNone        TableFlags = 0
	TableFlagsResizable   TableFlags = 1 << 0
	TableFlagsReorderable TableFlags = 1 << 1
	TableFlagsHideable    TableFlags = 1 << 2
	TableFlagsSortable    TableFlags = 1 << 3
	TableFlagsRowBg       TableFlags = 1 << 6
	TableFlagsBorders     TableFlags = 1<<7 | 1<<8 | 1<<9 | 1<<10
	TableFlagsScrollX     TableFlags = 1 << 24
	TableFlagsScrollY     TableFlags = 1 << 25
)

// TabBarFlags configure tab bars.
type TabBarFlags int

const (
	TabBarFlagsNone                         TabBarFlags = 0
	TabBarFlagsReorderable                  TabBarFlags = 1 << 0
	TabBarFlagsAutoSelectNewTabs            TabBarFlags = 1 << 1
	TabBarFlagsTabListPopupButton           TabBarFlags = 1 << 2
	TabBarFlagsNoCloseWithMiddleMouseButton TabBarFlags = 1 << 3
	TabBarFlagsFittingPolicyResizeDown      TabBarFlags = 1 << 6
	TabBarFlagsFittingPolicyScroll          TabBarFlags = 1 << 7
)

// TabItemFlags configure tab items.
type TabItemFlags int

const (
	TabItemFlagsNone                         TabItemFlags = 0
	TabItemFlagsUnsavedDocument              TabItemFlags = 1 << 0
	TabItemFlagsSetSelected                  TabItemFlags = 1 << 1
	TabItemFlagsNoCloseWithMiddleMouseButton TabItemFlags = 1 << 2
	TabItemFlagsLeading                      TabItemFlags = 1 << 6
	TabItemFlagsTrailing                     TabItemFlags = 1 << 7
)

// TreeNodeFlags configure tree nodes and collapsing headers.
type TreeNodeFlags int

const (
	TreeNodeFlagsNone             TreeNodeFlags = 0
	TreeNodeFlagsSelected         TreeNodeFlags = 1 << 0
	TreeNodeFlagsFramed           TreeNodeFlags = 1 << 1
	TreeNodeFlagsAllowOverlap     TreeNodeFlags = 1 << 2
	TreeNodeFlagsNoTreePushOnOpen TreeNodeFlags = 1 << 3
	TreeNodeFlagsDefaultOpen      TreeNodeFlags = 1 << 5
	TreeNodeFlagsOpenOnArrow      TreeNodeFlags = 1 << 7
	TreeNodeFlagsLeaf             TreeNodeFlags = 1 << 8
	TreeNodeFlagsBullet           TreeNodeFlags = 1 << 9
)

// DragDropFlags configure drag and drop sources and targets.
type DragDropFlags int

const (
	DragDropFlagsNone                    DragDropFlags = 0
	DragDropFlagsSourceNoPreviewTooltip  DragDropFlags = 1 << 0
	DragDropFlagsSourceNoDisableHover    DragDropFlags = 1 << 1
	DragDropFlagsSourceAllowNullID       DragDropFlags = 1 << 3
	DragDropFlagsSourceExtern            DragDropFlags = 1 << 4
	DragDropFlagsAcceptBeforeDelivery    DragDropFlags = 1 << 10
	DragDropFlagsAcceptNoDrawDefaultRect DragDropFlags = 1 << 11
)
