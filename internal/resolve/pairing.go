package resolve

import (
	"github.com/uicrumb/uicrumb/internal/component"
)

const (
	// rowAlignmentTolerance relaxes the same-row check by a few pixels to
	// absorb baseline differences between a label and its widget.
	rowAlignmentTolerance = 4
	// ancestorSearchDepth bounds the upward spatial search for a value
	// widget when no structural link exists.
	ancestorSearchDepth = 5
	// closeEnoughDistance is the horizontal gap below which a spatial
	// candidate is accepted immediately without scanning further levels.
	closeEnoughDistance = 32

	toggleEnabledText  = "Enabled"
	toggleDisabledText = "Disabled"
)

// LabelValue is the outcome of pairing a clicked label with an adjacent
// value-bearing widget. Value is meaningful only when HasValue is set.
type LabelValue struct {
	Label    string
	Value    string
	HasValue bool
}

// PairedLabelValue resolves the target component's own label and, when the
// label ends with a grouping marker and includeValue is set, the current
// value of the adjacent value-bearing widget it introduces. ok=false means
// no label text could be resolved at all.
func PairedLabelValue(target component.Component, includeValue bool) (LabelValue, bool) {
	labelComponent, labelText := resolveLabel(target)
	if labelText == "" {
		return LabelValue{}, false
	}
	paired := LabelValue{Label: labelText}
	if !includeValue || !endsWithGroupingMarker(labelText) {
		return paired, true
	}
	valueComponent := findValueComponent(target, labelComponent)
	if valueComponent == nil {
		return paired, true
	}
	if widgetValue, ok := widgetValueText(valueComponent); ok {
		paired.Value = widgetValue
		paired.HasValue = true
	}
	return paired, true
}

// resolveLabel obtains the component's label: an explicit labeled-by link is
// authoritative, then the component's own visible text, then the shared
// group label recovered from sibling toggles. It returns the component the
// label text came from alongside the cleaned text.
func resolveLabel(target component.Component) (component.Component, string) {
	if linked, ok := target.(component.LabeledBy); ok {
		if labelComponent := linked.LabeledBy(); labelComponent != nil {
			if labelText, textOK := componentText(labelComponent); textOK {
				return labelComponent, labelText
			}
		}
	}
	if textHolder, ok := target.(component.TextHolder); ok {
		if ownText := CleanDisplayText(textHolder.Text()); ownText != "" {
			return target, ownText
		}
	}
	if _, isToggle := target.(component.Toggle); isToggle {
		if labelComponent, labelText := sharedToggleGroupLabel(target); labelText != "" {
			return labelComponent, labelText
		}
	}
	return target, ""
}

// sharedToggleGroupLabel recovers the group label when only one member of a
// toggle button group carries the labeled-by association. A sibling toggle's
// link qualifies when its label ends with a grouping marker and sits on the
// same visual row as the target.
func sharedToggleGroupLabel(target component.Component) (component.Component, string) {
	parentComponent := target.Parent()
	if parentComponent == nil {
		return nil, ""
	}
	targetBounds, targetBoundsKnown := target.Bounds()
	for _, sibling := range parentComponent.Children() {
		if sibling == target {
			continue
		}
		if _, siblingIsToggle := sibling.(component.Toggle); !siblingIsToggle {
			continue
		}
		linked, hasLink := sibling.(component.LabeledBy)
		if !hasLink {
			continue
		}
		labelComponent := linked.LabeledBy()
		if labelComponent == nil {
			continue
		}
		labelText, textOK := componentText(labelComponent)
		if !textOK || !endsWithGroupingMarker(labelText) {
			continue
		}
		if targetBoundsKnown {
			siblingBounds, siblingBoundsKnown := sibling.Bounds()
			if siblingBoundsKnown && !sameVisualRow(targetBounds, siblingBounds) {
				continue
			}
		}
		return labelComponent, labelText
	}
	return nil, ""
}

// sameVisualRow is a hard gate, not a scored factor: a spatially closer
// candidate on a different row must never win over a row-aligned one.
func sameVisualRow(firstBounds component.Rect, secondBounds component.Rect) bool {
	smallerHeight := firstBounds.Height
	if secondBounds.Height < smallerHeight {
		smallerHeight = secondBounds.Height
	}
	centerDelta := firstBounds.CenterY() - secondBounds.CenterY()
	if centerDelta < 0 {
		centerDelta = -centerDelta
	}
	return centerDelta <= smallerHeight/2+rowAlignmentTolerance
}

// findValueComponent locates the value-bearing widget a grouping label
// introduces, trying in priority order the explicit label-for link, the next
// visible row-aligned sibling, and a bounded ancestor-climbing spatial
// search to the right of the label.
func findValueComponent(target component.Component, labelComponent component.Component) component.Component {
	if labelComponent != nil {
		if linking, ok := labelComponent.(component.LabelFor); ok {
			if linkTarget := linking.LabelFor(); linkTarget != nil {
				if valueWidget := containedValueWidget(linkTarget); valueWidget != nil {
					return valueWidget
				}
			}
		}
	}
	anchorComponent := labelComponent
	if anchorComponent == nil {
		anchorComponent = target
	}
	if siblingWidget := nextSiblingValueWidget(anchorComponent); siblingWidget != nil {
		return siblingWidget
	}
	return spatialValueWidget(anchorComponent)
}

// nextSiblingValueWidget returns the first visible sibling after the anchor
// in parent order that is (or contains) a value-bearing widget on the same
// visual row.
func nextSiblingValueWidget(anchor component.Component) component.Component {
	parentComponent := anchor.Parent()
	if parentComponent == nil {
		return nil
	}
	anchorBounds, anchorBoundsKnown := anchor.Bounds()
	siblings := parentComponent.Children()
	anchorIndex := -1
	for siblingIndex, sibling := range siblings {
		if sibling == anchor {
			anchorIndex = siblingIndex
			break
		}
	}
	if anchorIndex < 0 {
		return nil
	}
	for _, sibling := range siblings[anchorIndex+1:] {
		if !sibling.Visible() {
			continue
		}
		valueWidget := containedValueWidget(sibling)
		if valueWidget == nil {
			continue
		}
		if anchorBoundsKnown {
			widgetBounds, widgetBoundsKnown := valueWidget.Bounds()
			if widgetBoundsKnown && !sameVisualRow(anchorBounds, widgetBounds) {
				continue
			}
		}
		return valueWidget
	}
	return nil
}

// spatialValueWidget climbs up to ancestorSearchDepth levels above the
// anchor looking for the closest value-bearing widget strictly to the right
// of it on the same visual row. Smaller horizontal distance wins; a
// sub-threshold candidate stops the climb early.
func spatialValueWidget(anchor component.Component) component.Component {
	anchorBounds, anchorBoundsKnown := anchor.Bounds()
	if !anchorBoundsKnown {
		return nil
	}
	var bestWidget component.Component
	bestDistance := 0
	searchRoot := anchor.Parent()
	for level := 0; level < ancestorSearchDepth && searchRoot != nil; level++ {
		visitValueWidgets(searchRoot, func(candidate component.Component, candidateBounds component.Rect) {
			if candidateBounds.X < anchorBounds.Right() {
				return
			}
			if !sameVisualRow(anchorBounds, candidateBounds) {
				return
			}
			horizontalDistance := candidateBounds.X - anchorBounds.Right()
			if bestWidget == nil || horizontalDistance < bestDistance {
				bestWidget = candidate
				bestDistance = horizontalDistance
			}
		})
		if bestWidget != nil && bestDistance <= closeEnoughDistance {
			return bestWidget
		}
		searchRoot = searchRoot.Parent()
	}
	return bestWidget
}

func visitValueWidgets(current component.Component, visit func(component.Component, component.Rect)) {
	if current == nil || !current.Visible() {
		return
	}
	if isValueBearing(current) {
		if currentBounds, boundsKnown := current.Bounds(); boundsKnown {
			visit(current, currentBounds)
		}
	}
	for _, childComponent := range current.Children() {
		visitValueWidgets(childComponent, visit)
	}
}

// containedValueWidget returns the candidate itself when value-bearing, or
// its first visible value-bearing descendant.
func containedValueWidget(candidate component.Component) component.Component {
	if candidate == nil || !candidate.Visible() {
		return nil
	}
	if isValueBearing(candidate) {
		return candidate
	}
	for _, childComponent := range candidate.Children() {
		if valueWidget := containedValueWidget(childComponent); valueWidget != nil {
			return valueWidget
		}
	}
	return nil
}

// isValueBearing reports whether the component's current state represents
// user-meaningful data. Description-style text areas are excluded even
// though they technically hold text; selection widgets stay value-bearing
// regardless of their size.
func isValueBearing(candidate component.Component) bool {
	if _, ok := candidate.(component.SelectionWidget); ok {
		return true
	}
	if _, ok := candidate.(component.Toggle); ok {
		return true
	}
	if _, ok := candidate.(component.NumericWidget); ok {
		return true
	}
	if _, ok := candidate.(component.TextEntry); ok {
		if descriptionMarker, marked := candidate.(component.DescriptionArea); marked && descriptionMarker.IsDescriptionArea() {
			return false
		}
		return true
	}
	return false
}

// widgetValueText extracts the current value of a found widget according to
// its kind: selection widgets yield their rendered display text, toggles
// yield their own text when selected or an Enabled/Disabled state when
// textless, text entries yield their current text, numeric widgets their
// value as text.
func widgetValueText(valueWidget component.Component) (string, bool) {
	if selectionWidget, ok := valueWidget.(component.SelectionWidget); ok {
		renderer, _ := valueWidget.(component.Renderer)
		return RenderedText(renderer, selectionWidget.SelectedValue())
	}
	if toggleWidget, ok := valueWidget.(component.Toggle); ok {
		return toggleValueText(toggleWidget), true
	}
	if textEntry, ok := valueWidget.(component.TextEntry); ok {
		return CleanDisplayText(textEntry.EntryText()), true
	}
	if numericWidget, ok := valueWidget.(component.NumericWidget); ok {
		return CleanDisplayText(numericWidget.NumberText()), true
	}
	return "", false
}

func toggleValueText(toggleWidget component.Toggle) string {
	if textHolder, ok := toggleWidget.(component.TextHolder); ok {
		if ownText := CleanDisplayText(textHolder.Text()); ownText != "" && toggleWidget.ToggleSelected() {
			return ownText
		}
	}
	if toggleWidget.ToggleSelected() {
		return toggleEnabledText
	}
	return toggleDisabledText
}
