package resolve

import (
	"regexp"
	"strings"

	"github.com/uicrumb/uicrumb/internal/component"
)

// Options carries the per-call configuration of one resolution.
type Options struct {
	// Separator is inserted between path segments.
	Separator string
	// IncludeValues gates the adjacent-value lookup for grouping labels.
	IncludeValues bool
	// Registry optionally resolves action identifiers found in tree nodes
	// to human-readable labels.
	Registry component.ActionRegistry
}

// Path reconstructs the breadcrumb path of the target component. It
// classifies the target's context (menu, dialog, overlay, docked panel) in
// strict priority order, establishes the context's base segments, and then
// always appends ancestor waypoints, the extracted selection, and the paired
// label/value, in that fixed order. ok=false means no context or no segment
// could be resolved; the caller must then produce no side effect at all.
func Path(target component.Component, event component.InputEvent, options Options) (string, bool) {
	if target == nil {
		return "", false
	}
	if _, isMenuItem := target.(component.MenuItem); isMenuItem {
		return MenuPath(target, options.Separator)
	}

	builder := &PathBuilder{}
	boundary := appendContextSegments(builder, target, options.Separator)
	if boundary == nil {
		return "", false
	}
	for _, waypoint := range CollectWaypoints(target, boundary) {
		builder.Append(waypoint, options.Separator)
	}
	for _, selectionSegment := range ExtractSelection(target, event, options.Registry) {
		builder.Append(selectionSegment, options.Separator)
	}
	if paired, ok := PairedLabelValue(target, options.IncludeValues); ok {
		builder.Append(paired.Label, options.Separator)
		if paired.HasValue {
			builder.Append(paired.Value, options.Separator)
		}
	}
	if builder.Empty() {
		return "", false
	}
	return builder.Finish(), true
}

// appendContextSegments classifies the target's enclosing context and
// appends the context's base path. It returns the boundary component that
// limits upward waypoint traversal, or nil when no context was found.
func appendContextSegments(builder *PathBuilder, target component.Component, separator string) component.Component {
	if dialog, ok := nearestDialog(target); ok {
		appendDialogSegments(builder, target, dialog, separator)
		return dialog
	}
	if overlay, ok := nearestOverlay(target); ok {
		builder.Append(overlayTitle(overlay), separator)
		return overlay
	}
	if panel, ok := nearestPanel(target); ok {
		panelName := CleanDisplayText(panel.PanelName())
		builder.Append(panelName, separator)
		if contentTab := CleanDisplayText(panel.SelectedContentTabTitle()); contentTab != "" && contentTab != panelName {
			builder.Append(contentTab, separator)
		}
		return panel
	}
	return nil
}

func nearestDialog(target component.Component) (component.DialogWindow, bool) {
	for currentComponent := target; currentComponent != nil; currentComponent = currentComponent.Parent() {
		if dialog, ok := currentComponent.(component.DialogWindow); ok {
			return dialog, true
		}
	}
	return nil, false
}

func nearestOverlay(target component.Component) (component.OverlayRoot, bool) {
	for currentComponent := target; currentComponent != nil; currentComponent = currentComponent.Parent() {
		if overlay, ok := currentComponent.(component.OverlayRoot); ok {
			return overlay, true
		}
	}
	return nil, false
}

func nearestPanel(target component.Component) (component.ToolPanel, bool) {
	for currentComponent := target; currentComponent != nil; currentComponent = currentComponent.Parent() {
		if panel, ok := currentComponent.(component.ToolPanel); ok {
			return panel, true
		}
	}
	return nil, false
}

// appendDialogSegments establishes the base path for a dialog context. A
// structured settings surface in the target's component chain supplies a
// ready-made ordered segment list; otherwise the dialog's own title is used,
// and when that is blank the dialog content is searched for a title-shaped
// label.
func appendDialogSegments(builder *PathBuilder, target component.Component, dialog component.DialogWindow, separator string) {
	for currentComponent := target; currentComponent != nil; currentComponent = currentComponent.Parent() {
		if provider, ok := currentComponent.(component.PathNameProvider); ok {
			namedPath := provider.NamedPath()
			if len(namedPath) > 0 {
				for _, pathSegment := range namedPath {
					builder.Append(pathSegment, separator)
				}
				return
			}
		}
		if currentComponent == component.Component(dialog) {
			break
		}
	}
	if dialogTitle := CleanDisplayText(dialog.DialogTitle()); dialogTitle != "" {
		builder.Append(dialogTitle, separator)
		return
	}
	if searchedTitle, ok := searchTitle(dialog); ok {
		builder.Append(searchedTitle, separator)
	}
}

// overlayTitle resolves the title of a floating overlay. Specialized overlay
// shapes carry their own title rule; generic overlays fall back to their
// declared title and then to the same title search dialogs use.
func overlayTitle(overlay component.OverlayRoot) string {
	switch typedOverlay := overlay.(type) {
	case component.SearchOverlay:
		if title := CleanDisplayText(typedOverlay.SearchTitle()); title != "" {
			return title
		}
	case component.SwitcherOverlay:
		if title := CleanDisplayText(typedOverlay.SwitcherTitle()); title != "" {
			return title
		}
	case component.FindOverlay:
		if title := CleanDisplayText(typedOverlay.FindLabel()); title != "" {
			return title
		}
	}
	if declaredTitle := CleanDisplayText(overlay.OverlayTitle()); declaredTitle != "" {
		return declaredTitle
	}
	if searchedTitle, ok := searchTitle(overlay); ok {
		return searchedTitle
	}
	return ""
}

// titleSearchStrategies is the ordered ladder used to find a title-shaped
// label inside a window whose own title is blank.
var titleSearchStrategies = []strategy[component.Component]{
	{name: "header-panel-label", resolve: headerPanelLabelStrategy},
	{name: "bold-label", resolve: boldLabelStrategy},
	{name: "bold-fragments", resolve: boldFragmentsStrategy},
	{name: "short-plain-label", resolve: shortPlainLabelStrategy},
}

func searchTitle(windowRoot component.Component) (string, bool) {
	return firstResolved(titleSearchStrategies, windowRoot)
}

func headerPanelLabelStrategy(windowRoot component.Component) (string, bool) {
	var foundTitle string
	visitVisible(windowRoot, func(candidate component.Component) bool {
		headerMarker, marked := candidate.(component.HeaderPanel)
		if !marked || !headerMarker.IsHeaderPanel() {
			return true
		}
		if headerText, ok := componentText(candidate); ok {
			foundTitle = headerText
			return false
		}
		return true
	})
	return foundTitle, foundTitle != ""
}

func boldLabelStrategy(windowRoot component.Component) (string, bool) {
	var foundTitle string
	visitVisible(windowRoot, func(candidate component.Component) bool {
		styled, isStyled := candidate.(component.StyledText)
		if !isStyled || !styled.Bold() {
			return true
		}
		textHolder, holdsText := candidate.(component.TextHolder)
		if !holdsText {
			return true
		}
		if boldText := CleanDisplayText(textHolder.Text()); boldText != "" {
			foundTitle = boldText
			return false
		}
		return true
	})
	return foundTitle, foundTitle != ""
}

func boldFragmentsStrategy(windowRoot component.Component) (string, bool) {
	var foundTitle string
	visitVisible(windowRoot, func(candidate component.Component) bool {
		styled, isStyled := candidate.(component.StyledText)
		if !isStyled || !styled.Bold() {
			return true
		}
		if fragmentText, ok := fragmentsText(candidate); ok {
			foundTitle = fragmentText
			return false
		}
		return true
	})
	return foundTitle, foundTitle != ""
}

// shortPlainLabelStrategy accepts any short label that does not end with a
// grouping marker and does not look like a keyboard-shortcut hint.
func shortPlainLabelStrategy(windowRoot component.Component) (string, bool) {
	var foundTitle string
	visitVisible(windowRoot, func(candidate component.Component) bool {
		textHolder, holdsText := candidate.(component.TextHolder)
		if !holdsText {
			return true
		}
		labelText := CleanDisplayText(textHolder.Text())
		if labelText == "" || endsWithGroupingMarker(labelText) {
			return true
		}
		if !isShortTitleText(labelText) || looksLikeShortcutHint(labelText) {
			return true
		}
		foundTitle = labelText
		return false
	})
	return foundTitle, foundTitle != ""
}

const shortTitleWordLimit = 5

func isShortTitleText(labelText string) bool {
	return len(strings.Fields(labelText)) <= shortTitleWordLimit
}

var shortcutHintPattern = regexp.MustCompile(`(?i)\b(?:ctrl|alt|shift|meta|cmd|⌘|⌥|⇧)\s*\+`)

func looksLikeShortcutHint(labelText string) bool {
	return shortcutHintPattern.MatchString(labelText)
}

// visitVisible walks the subtree depth-first, skipping invisible branches.
// The visit callback returns false to stop the walk.
func visitVisible(current component.Component, visit func(component.Component) bool) bool {
	if current == nil || !current.Visible() {
		return true
	}
	if !visit(current) {
		return false
	}
	for _, childComponent := range current.Children() {
		if !visitVisible(childComponent, visit) {
			return false
		}
	}
	return true
}
