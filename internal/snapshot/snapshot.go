// Package snapshot adapts a JSON-serialized component tree to the capability
// model in internal/component. A snapshot document captures one moment of a
// host UI: every node declares a kind, and the adapter wraps each node in a
// concrete type implementing exactly the capabilities that kind has. The
// resolution engine never sees the raw nodes.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/uicrumb/uicrumb/internal/component"
)

// Node kinds recognized by the adapter. Unknown kinds adapt to plain
// containers.
const (
	KindContainer       = "container"
	KindLabel           = "label"
	KindDialog          = "dialog"
	KindSettingsDialog  = "settings_dialog"
	KindOverlay         = "overlay"
	KindSearchOverlay   = "search_overlay"
	KindSwitcherOverlay = "switcher_overlay"
	KindFindOverlay     = "find_overlay"
	KindPanel           = "panel"
	KindTabContainer    = "tabs"
	KindGroup           = "group"
	KindSeparator       = "separator"
	KindTree            = "tree"
	KindTable           = "table"
	KindList            = "list"
	KindCombo           = "combo"
	KindCheckbox        = "checkbox"
	KindRadio           = "radio"
	KindTextField       = "text_field"
	KindTextArea        = "text_area"
	KindSpinner         = "spinner"
	KindSlider          = "slider"
	KindMenuBar         = "menu_bar"
	KindMenu            = "menu"
	KindMenuItem        = "menu_item"
	KindMenuPopup       = "menu_popup"
)

// Bounds is the JSON form of a component bounding box.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TreeRow describes one visible row of a tree node: the raw value chain from
// the root down to the row, plus the row's on-screen bounds.
type TreeRow struct {
	Chain  []string `json:"chain"`
	Bounds *Bounds  `json:"bounds,omitempty"`
}

// TableRow describes one row of a table node.
type TableRow struct {
	Cells  []string `json:"cells"`
	Bounds *Bounds  `json:"bounds,omitempty"`
}

// ListItem describes one item of a list node.
type ListItem struct {
	Value  string  `json:"value"`
	Bounds *Bounds `json:"bounds,omitempty"`
}

// Node is one element of a snapshot document. Fields apply depending on the
// node kind; irrelevant fields are ignored.
type Node struct {
	Identifier  string            `json:"id,omitempty"`
	Kind        string            `json:"kind"`
	Text        string            `json:"text,omitempty"`
	Title       string            `json:"title,omitempty"`
	Bold        bool              `json:"bold,omitempty"`
	Fragments   []string          `json:"fragments,omitempty"`
	Hidden      bool              `json:"hidden,omitempty"`
	Bounds      *Bounds           `json:"bounds,omitempty"`
	Selected    bool              `json:"selected,omitempty"`
	Value       string            `json:"value,omitempty"`
	Display     map[string]string `json:"display,omitempty"`
	SelectedTab string            `json:"selected_tab,omitempty"`
	Path        []string          `json:"path,omitempty"`
	Header      bool              `json:"header,omitempty"`
	Description bool              `json:"description,omitempty"`
	LabelID     string            `json:"label_id,omitempty"`
	ForID       string            `json:"for_id,omitempty"`
	InvokerID   string            `json:"invoker_id,omitempty"`

	TreeRows    []TreeRow  `json:"tree_rows,omitempty"`
	RootHidden  bool       `json:"root_hidden,omitempty"`
	SelectedRow *int       `json:"selected_row,omitempty"`
	TableRows   []TableRow `json:"table_rows,omitempty"`
	SelectedCol *int       `json:"selected_col,omitempty"`
	ColumnXs    []int      `json:"column_xs,omitempty"`
	ListItems   []ListItem `json:"list_items,omitempty"`
	SelectedIdx *int       `json:"selected_idx,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Document is the top-level snapshot file: one root node plus an optional
// action-identifier label registry.
type Document struct {
	Root    *Node             `json:"root"`
	Actions map[string]string `json:"actions,omitempty"`
}

// Snapshot is an adapted snapshot document ready for resolution.
type Snapshot struct {
	rootComponent component.Component
	byIdentifier  map[string]component.Component
	actionLabels  map[string]string
}

// Load reads and adapts a snapshot document from a file.
func Load(filePath string) (*Snapshot, error) {
	documentBytes, readError := os.ReadFile(filePath) // #nosec G304
	if readError != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", filePath, readError)
	}
	parsedSnapshot, parseError := Parse(documentBytes)
	if parseError != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", filePath, parseError)
	}
	return parsedSnapshot, nil
}

// Parse adapts a snapshot document from its JSON encoding.
func Parse(documentBytes []byte) (*Snapshot, error) {
	var document Document
	if decodeError := json.Unmarshal(documentBytes, &document); decodeError != nil {
		return nil, fmt.Errorf("decode snapshot document: %w", decodeError)
	}
	if document.Root == nil {
		return nil, fmt.Errorf("snapshot document has no root node")
	}
	adapted := &Snapshot{
		byIdentifier: map[string]component.Component{},
		actionLabels: document.Actions,
	}
	builtNodes := map[*Node]*baseNode{}
	adapted.rootComponent = adaptNode(document.Root, nil, adapted.byIdentifier, builtNodes)
	resolveLinks(builtNodes, adapted.byIdentifier)
	return adapted, nil
}

// Root returns the adapted root component.
func (snapshotValue *Snapshot) Root() component.Component {
	return snapshotValue.rootComponent
}

// Lookup returns the component with the given node identifier.
func (snapshotValue *Snapshot) Lookup(identifier string) (component.Component, bool) {
	found, exists := snapshotValue.byIdentifier[identifier]
	return found, exists
}

// ActionLabel resolves a host action identifier to its human-readable label.
// Snapshot implements component.ActionRegistry.
func (snapshotValue *Snapshot) ActionLabel(identifier string) (string, bool) {
	label, exists := snapshotValue.actionLabels[identifier]
	return label, exists
}

var _ component.ActionRegistry = (*Snapshot)(nil)

// baseNode carries the structural capabilities every adapted node shares.
type baseNode struct {
	source       *Node
	parent       component.Component
	childAdapted []component.Component
	labelLink    component.Component
	forLink      component.Component
	invokerLink  component.Component
}

func (node *baseNode) Parent() component.Component {
	return node.parent
}

func (node *baseNode) Children() []component.Component {
	return node.childAdapted
}

func (node *baseNode) Visible() bool {
	return !node.source.Hidden
}

func (node *baseNode) Bounds() (component.Rect, bool) {
	if node.source.Bounds == nil {
		return component.Rect{}, false
	}
	return component.Rect{
		X:      node.source.Bounds.X,
		Y:      node.source.Bounds.Y,
		Width:  node.source.Bounds.Width,
		Height: node.source.Bounds.Height,
	}, true
}

func (node *baseNode) LabeledBy() component.Component {
	return node.labelLink
}

// renderDisplay is the shared renderer implementation: the node's display
// map rewrites raw values into presentable text, the way a configured cell
// renderer would.
func (node *baseNode) renderDisplay(value any) component.Component {
	rawText, isString := value.(string)
	if !isString {
		return nil
	}
	displayText, exists := node.source.Display[rawText]
	if !exists {
		return nil
	}
	return &renderedLabel{text: displayText}
}

// renderedLabel is the throwaway component produced by the snapshot
// renderer; it exists only long enough for text extraction.
type renderedLabel struct {
	text string
}

func (label *renderedLabel) Parent() component.Component     { return nil }
func (label *renderedLabel) Children() []component.Component { return nil }
func (label *renderedLabel) Visible() bool                   { return true }
func (label *renderedLabel) Bounds() (component.Rect, bool)  { return component.Rect{}, false }
func (label *renderedLabel) Text() string                    { return label.text }

type containerNode struct {
	*baseNode
}

func (node *containerNode) IsHeaderPanel() bool {
	return node.source.Header
}

type labelNode struct {
	*baseNode
}

func (node *labelNode) Text() string {
	return node.source.Text
}

func (node *labelNode) Bold() bool {
	return node.source.Bold
}

func (node *labelNode) Fragments() []string {
	return node.source.Fragments
}

func (node *labelNode) LabelFor() component.Component {
	return node.forLink
}

type dialogNode struct {
	*baseNode
}

func (node *dialogNode) DialogTitle() string {
	return node.source.Title
}

type settingsDialogNode struct {
	dialogNode
}

func (node *settingsDialogNode) NamedPath() []string {
	return node.source.Path
}

type overlayNode struct {
	*baseNode
}

func (node *overlayNode) OverlayTitle() string {
	return node.source.Title
}

type searchOverlayNode struct {
	overlayNode
}

// SearchTitle names the currently selected search scope tab, falling back to
// the overlay's declared title.
func (node *searchOverlayNode) SearchTitle() string {
	if node.source.SelectedTab != "" {
		return node.source.SelectedTab
	}
	return node.source.Title
}

type switcherOverlayNode struct {
	overlayNode
}

func (node *switcherOverlayNode) SwitcherTitle() string {
	return node.source.Title
}

type findOverlayNode struct {
	overlayNode
}

func (node *findOverlayNode) FindLabel() string {
	if node.source.Text != "" {
		return node.source.Text
	}
	return node.source.Title
}

type panelNode struct {
	*baseNode
}

func (node *panelNode) PanelName() string {
	return node.source.Title
}

func (node *panelNode) SelectedContentTabTitle() string {
	return node.source.SelectedTab
}

type tabContainerNode struct {
	*baseNode
}

func (node *tabContainerNode) SelectedTabTitle() string {
	return node.source.SelectedTab
}

type groupNode struct {
	*baseNode
}

func (node *groupNode) BorderTitle() string {
	return node.source.Title
}

type separatorNode struct {
	*baseNode
}

func (node *separatorNode) SeparatorTitle() string {
	return node.source.Title
}

type treeNode struct {
	*baseNode
}

func (node *treeNode) RenderValue(value any) component.Component {
	return node.renderDisplay(value)
}

func (node *treeNode) RowAtPoint(point component.Point) (int, bool) {
	for rowIndex, row := range node.source.TreeRows {
		if row.Bounds != nil && rectOf(row.Bounds).Contains(point) {
			return rowIndex, true
		}
	}
	return 0, false
}

func (node *treeNode) SelectedTreeRow() (int, bool) {
	if node.source.SelectedRow == nil {
		return 0, false
	}
	return *node.source.SelectedRow, true
}

func (node *treeNode) NodeChain(row int) []any {
	if row < 0 || row >= len(node.source.TreeRows) {
		return nil
	}
	chain := make([]any, 0, len(node.source.TreeRows[row].Chain))
	for _, chainValue := range node.source.TreeRows[row].Chain {
		chain = append(chain, chainValue)
	}
	return chain
}

func (node *treeNode) RootVisible() bool {
	return !node.source.RootHidden
}

type tableNode struct {
	*baseNode
}

func (node *tableNode) RenderValue(value any) component.Component {
	return node.renderDisplay(value)
}

func (node *tableNode) CellAtPoint(point component.Point) (int, int, bool) {
	for rowIndex, row := range node.source.TableRows {
		if row.Bounds == nil || !rectOf(row.Bounds).Contains(point) {
			continue
		}
		return rowIndex, node.columnAtX(point.X), true
	}
	return 0, 0, false
}

// columnAtX maps a screen x coordinate to a column using the declared column
// start offsets; without offsets everything is column zero.
func (node *tableNode) columnAtX(x int) int {
	column := 0
	for columnIndex, columnStart := range node.source.ColumnXs {
		if x >= columnStart {
			column = columnIndex
		}
	}
	return column
}

func (node *tableNode) SelectedCell() (int, int, bool) {
	if node.source.SelectedRow == nil {
		return 0, 0, false
	}
	selectedColumn := -1
	if node.source.SelectedCol != nil {
		selectedColumn = *node.source.SelectedCol
	}
	return *node.source.SelectedRow, selectedColumn, true
}

func (node *tableNode) CellValue(row int, column int) any {
	if row < 0 || row >= len(node.source.TableRows) {
		return nil
	}
	cells := node.source.TableRows[row].Cells
	if column < 0 || column >= len(cells) {
		return nil
	}
	return cells[column]
}

type listNode struct {
	*baseNode
}

func (node *listNode) RenderValue(value any) component.Component {
	return node.renderDisplay(value)
}

// ClosestIndex mirrors host list behavior: it reports the item nearest to
// the point even when the point is outside every item, such as in the list's
// empty tail.
func (node *listNode) ClosestIndex(point component.Point) (int, bool) {
	closestIndex, closestDistance, found := 0, 0, false
	for itemIndex, item := range node.source.ListItems {
		if item.Bounds == nil {
			continue
		}
		itemRect := rectOf(item.Bounds)
		distance := point.Y - itemRect.CenterY()
		if distance < 0 {
			distance = -distance
		}
		if !found || distance < closestDistance {
			closestIndex, closestDistance, found = itemIndex, distance, true
		}
	}
	return closestIndex, found
}

func (node *listNode) ItemBounds(index int) (component.Rect, bool) {
	if index < 0 || index >= len(node.source.ListItems) || node.source.ListItems[index].Bounds == nil {
		return component.Rect{}, false
	}
	return rectOf(node.source.ListItems[index].Bounds), true
}

func (node *listNode) SelectedListIndex() (int, bool) {
	if node.source.SelectedIdx == nil {
		return 0, false
	}
	return *node.source.SelectedIdx, true
}

func (node *listNode) ItemValue(index int) any {
	if index < 0 || index >= len(node.source.ListItems) {
		return nil
	}
	return node.source.ListItems[index].Value
}

type comboNode struct {
	*baseNode
}

func (node *comboNode) SelectedValue() any {
	return node.source.Value
}

func (node *comboNode) RenderValue(value any) component.Component {
	return node.renderDisplay(value)
}

type toggleNode struct {
	*baseNode
}

func (node *toggleNode) Text() string {
	return node.source.Text
}

func (node *toggleNode) ToggleSelected() bool {
	return node.source.Selected
}

type entryNode struct {
	*baseNode
}

func (node *entryNode) EntryText() string {
	return node.source.Value
}

func (node *entryNode) IsDescriptionArea() bool {
	return node.source.Description
}

type numericNode struct {
	*baseNode
}

func (node *numericNode) NumberText() string {
	return node.source.Value
}

type menuBarNode struct {
	*baseNode
}

func (node *menuBarNode) IsMenuBar() bool {
	return true
}

type menuItemNode struct {
	*baseNode
}

func (node *menuItemNode) ItemText() string {
	return node.source.Text
}

type menuPopupNode struct {
	*baseNode
}

func (node *menuPopupNode) Invoker() component.Component {
	return node.invokerLink
}

func rectOf(bounds *Bounds) component.Rect {
	return component.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: bounds.Height}
}

// adaptNode wraps one source node in the concrete adapter for its kind and
// recursively adapts its children.
func adaptNode(source *Node, parent component.Component, byIdentifier map[string]component.Component, builtNodes map[*Node]*baseNode) component.Component {
	base := &baseNode{source: source, parent: parent}
	adapted := wrapNode(base)
	builtNodes[source] = base
	if source.Identifier != "" {
		byIdentifier[source.Identifier] = adapted
	}
	for _, childSource := range source.Children {
		base.childAdapted = append(base.childAdapted, adaptNode(childSource, adapted, byIdentifier, builtNodes))
	}
	return adapted
}

func wrapNode(base *baseNode) component.Component {
	switch base.source.Kind {
	case KindLabel:
		return &labelNode{baseNode: base}
	case KindDialog:
		return &dialogNode{baseNode: base}
	case KindSettingsDialog:
		return &settingsDialogNode{dialogNode: dialogNode{baseNode: base}}
	case KindOverlay:
		return &overlayNode{baseNode: base}
	case KindSearchOverlay:
		return &searchOverlayNode{overlayNode: overlayNode{baseNode: base}}
	case KindSwitcherOverlay:
		return &switcherOverlayNode{overlayNode: overlayNode{baseNode: base}}
	case KindFindOverlay:
		return &findOverlayNode{overlayNode: overlayNode{baseNode: base}}
	case KindPanel:
		return &panelNode{baseNode: base}
	case KindTabContainer:
		return &tabContainerNode{baseNode: base}
	case KindGroup:
		return &groupNode{baseNode: base}
	case KindSeparator:
		return &separatorNode{baseNode: base}
	case KindTree:
		return &treeNode{baseNode: base}
	case KindTable:
		return &tableNode{baseNode: base}
	case KindList:
		return &listNode{baseNode: base}
	case KindCombo:
		return &comboNode{baseNode: base}
	case KindCheckbox, KindRadio:
		return &toggleNode{baseNode: base}
	case KindTextField, KindTextArea:
		return &entryNode{baseNode: base}
	case KindSpinner, KindSlider:
		return &numericNode{baseNode: base}
	case KindMenuBar:
		return &menuBarNode{baseNode: base}
	case KindMenu, KindMenuItem:
		return &menuItemNode{baseNode: base}
	case KindMenuPopup:
		return &menuPopupNode{baseNode: base}
	default:
		return &containerNode{baseNode: base}
	}
}

var (
	_ component.Component        = (*containerNode)(nil)
	_ component.HeaderPanel      = (*containerNode)(nil)
	_ component.TextHolder       = (*labelNode)(nil)
	_ component.StyledText       = (*labelNode)(nil)
	_ component.FragmentHolder   = (*labelNode)(nil)
	_ component.LabelFor         = (*labelNode)(nil)
	_ component.DialogWindow     = (*dialogNode)(nil)
	_ component.PathNameProvider = (*settingsDialogNode)(nil)
	_ component.OverlayRoot      = (*overlayNode)(nil)
	_ component.SearchOverlay    = (*searchOverlayNode)(nil)
	_ component.SwitcherOverlay  = (*switcherOverlayNode)(nil)
	_ component.FindOverlay      = (*findOverlayNode)(nil)
	_ component.ToolPanel        = (*panelNode)(nil)
	_ component.TabContainer     = (*tabContainerNode)(nil)
	_ component.TitledGroup      = (*groupNode)(nil)
	_ component.GroupSeparator   = (*separatorNode)(nil)
	_ component.TreeView         = (*treeNode)(nil)
	_ component.TableView        = (*tableNode)(nil)
	_ component.ListView         = (*listNode)(nil)
	_ component.SelectionWidget  = (*comboNode)(nil)
	_ component.Renderer         = (*comboNode)(nil)
	_ component.Toggle           = (*toggleNode)(nil)
	_ component.TextEntry        = (*entryNode)(nil)
	_ component.DescriptionArea  = (*entryNode)(nil)
	_ component.NumericWidget    = (*numericNode)(nil)
	_ component.MenuBar          = (*menuBarNode)(nil)
	_ component.MenuItem         = (*menuItemNode)(nil)
	_ component.MenuPopup        = (*menuPopupNode)(nil)
	_ component.LabeledBy        = (*baseNode)(nil)
)

// resolveLinks wires labeled-by, label-for, and invoker references once all
// nodes exist, since links may point forward in document order.
func resolveLinks(builtNodes map[*Node]*baseNode, byIdentifier map[string]component.Component) {
	for source, base := range builtNodes {
		if source.LabelID != "" {
			base.labelLink = byIdentifier[source.LabelID]
		}
		if source.ForID != "" {
			base.forLink = byIdentifier[source.ForID]
		}
		if source.InvokerID != "" {
			base.invokerLink = byIdentifier[source.InvokerID]
		}
	}
}
