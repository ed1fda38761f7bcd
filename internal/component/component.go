// Package component defines the capability model the path-resolution engine
// operates on. The engine never depends on a concrete UI toolkit; it queries
// opaque components for small orthogonal capabilities through the interfaces
// declared here. Adapters (one per host toolkit, see internal/snapshot for the
// snapshot adapter) implement the subset of capabilities each concrete widget
// actually has.
package component

// Point identifies a location in screen coordinates.
type Point struct {
	X int
	Y int
}

// Rect describes a screen-aligned bounding box.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rectangle.
func (rectangle Rect) Contains(point Point) bool {
	return point.X >= rectangle.X && point.X < rectangle.X+rectangle.Width &&
		point.Y >= rectangle.Y && point.Y < rectangle.Y+rectangle.Height
}

// CenterY returns the vertical center of the rectangle.
func (rectangle Rect) CenterY() int {
	return rectangle.Y + rectangle.Height/2
}

// Right returns the x coordinate just past the rectangle's right edge.
func (rectangle Rect) Right() int {
	return rectangle.X + rectangle.Width
}

// Component is an opaque node in the host's visual component tree. The engine
// only reads components; it never owns or mutates them. Bounds may be
// unavailable when the component is not currently rendered.
type Component interface {
	Parent() Component
	Children() []Component
	Visible() bool
	Bounds() (Rect, bool)
}

// InputEvent is the optional triggering event of one resolution call. It is
// used solely to recover the click point.
type InputEvent interface {
	ClickPoint() (Point, bool)
}

// PointerEvent is a trivial InputEvent carrying a known click location.
type PointerEvent struct {
	Location Point
}

// ClickPoint returns the recorded click location.
func (event PointerEvent) ClickPoint() (Point, bool) {
	return event.Location, true
}

// TextHolder is implemented by components carrying their own visible text,
// such as labels, buttons, and checkboxes.
type TextHolder interface {
	Text() string
}

// StyledText exposes styling of a text-bearing component. Title searches
// prefer bold text over plain text.
type StyledText interface {
	Bold() bool
}

// FragmentHolder is implemented by multi-fragment colored-text components.
// Fragments are joined in order when text is extracted.
type FragmentHolder interface {
	Fragments() []string
}

// TabContainer is a container whose children are organized in tabs. The
// currently selected tab title, not structural position, determines the
// waypoint contributed during ancestor traversal.
type TabContainer interface {
	Component
	SelectedTabTitle() string
}

// TitledGroup is a container carrying a titled border.
type TitledGroup interface {
	Component
	BorderTitle() string
}

// GroupSeparator is a titled separator line that visually introduces the
// controls below it.
type GroupSeparator interface {
	Component
	SeparatorTitle() string
}

// Renderer renders an opaque selection value into a throwaway component from
// which display text can be mined. Many selection values have meaningless
// default stringification, so the rendered output is authoritative.
type Renderer interface {
	RenderValue(value any) Component
}

// TreeView is a tree-shaped selectable container.
type TreeView interface {
	Component
	Renderer
	RowAtPoint(point Point) (int, bool)
	SelectedTreeRow() (int, bool)
	// NodeChain returns the raw node values from the root down to the row.
	NodeChain(row int) []any
	RootVisible() bool
}

// TableView is a grid-shaped selectable container.
type TableView interface {
	Component
	Renderer
	CellAtPoint(point Point) (row int, column int, ok bool)
	SelectedCell() (row int, column int, ok bool)
	CellValue(row int, column int) any
}

// ListView is a flat selectable container. ClosestIndex follows the host
// convention of returning the nearest item even when the point falls outside
// every item; callers must verify containment through ItemBounds.
type ListView interface {
	Component
	Renderer
	ClosestIndex(point Point) (int, bool)
	ItemBounds(index int) (Rect, bool)
	SelectedListIndex() (int, bool)
	ItemValue(index int) any
}

// LabeledBy links a widget to the label component describing it.
type LabeledBy interface {
	LabeledBy() Component
}

// LabelFor links a label to the value-bearing component it describes.
type LabelFor interface {
	LabelFor() Component
}

// Toggle is a two-state widget such as a checkbox or radio button.
type Toggle interface {
	Component
	ToggleSelected() bool
}

// TextEntry is a widget holding free-form editable text.
type TextEntry interface {
	Component
	EntryText() string
}

// NumericWidget is a spinner or slider holding a numeric value.
type NumericWidget interface {
	Component
	NumberText() string
}

// SelectionWidget is a widget presenting one chosen value, such as a
// combo box. The chosen value is resolved through the widget's renderer when
// one is available.
type SelectionWidget interface {
	Component
	SelectedValue() any
}

// DescriptionArea marks large description-style text components that must not
// be treated as value-bearing despite technically holding text.
type DescriptionArea interface {
	IsDescriptionArea() bool
}

// DialogWindow is the root of a modal dialog.
type DialogWindow interface {
	Component
	DialogTitle() string
}

// PathNameProvider is implemented by structured settings surfaces that can
// produce a ready-made ordered segment list for their own location.
type PathNameProvider interface {
	NamedPath() []string
}

// OverlayRoot is the root of a non-modal floating overlay.
type OverlayRoot interface {
	Component
	OverlayTitle() string
}

// SearchOverlay is a search-style overlay with its own title rule.
type SearchOverlay interface {
	OverlayRoot
	SearchTitle() string
}

// SwitcherOverlay is a switcher-style overlay with its own title rule.
type SwitcherOverlay interface {
	OverlayRoot
	SwitcherTitle() string
}

// FindOverlay is a find-in-content overlay with its own title rule.
type FindOverlay interface {
	OverlayRoot
	FindLabel() string
}

// ToolPanel is a named docked panel.
type ToolPanel interface {
	Component
	PanelName() string
	SelectedContentTabTitle() string
}

// HeaderPanel marks a sub-panel that renders as a dialog header. A label
// found inside a header panel is the preferred title candidate.
type HeaderPanel interface {
	IsHeaderPanel() bool
}

// MenuItem is an entry of a menu bar or menu popup.
type MenuItem interface {
	Component
	ItemText() string
}

// MenuPopup is a transient popup opened by a menu; Invoker returns the menu
// item or menu that opened it.
type MenuPopup interface {
	Component
	Invoker() Component
}

// MenuBar marks the top-level menu bar; the menu chain walk stops there.
type MenuBar interface {
	IsMenuBar() bool
}

// ActionRegistry resolves host action identifiers to human-readable labels.
type ActionRegistry interface {
	ActionLabel(identifier string) (string, bool)
}

// Accessor interfaces tried, in this order, against arbitrary selection
// values whose direct stringification is not presentable.

// DisplayNamed exposes a display name.
type DisplayNamed interface {
	DisplayName() string
}

// Named exposes a plain name.
type Named interface {
	Name() string
}

// PresentableTexted exposes presentable text.
type PresentableTexted interface {
	PresentableText() string
}

// Titled exposes a title.
type Titled interface {
	Title() string
}
