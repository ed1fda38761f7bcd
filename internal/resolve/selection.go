package resolve

import (
	"regexp"

	"github.com/uicrumb/uicrumb/internal/component"
)

// actionIdentifierPattern matches plain identifier strings shaped like host
// action ids (dotted or camel-case identifiers without spaces).
var actionIdentifierPattern = regexp.MustCompile(`^[A-Za-z$][\w$]*(\.[\w$]+)*$`)

// ExtractSelection resolves the clicked or selected item inside a list-like
// container. Trees contribute the full node chain from root to the hit row;
// tables and lists contribute a single segment. A target whose shape matches
// nothing returns no segments, which is not an error.
func ExtractSelection(target component.Component, event component.InputEvent, registry component.ActionRegistry) []string {
	switch typedTarget := target.(type) {
	case component.TreeView:
		return treeSelectionSegments(typedTarget, event, registry)
	case component.TableView:
		return tableSelectionSegments(typedTarget, event)
	case component.ListView:
		return listSelectionSegments(typedTarget, event)
	default:
		return nil
	}
}

// treeSelectionSegments resolves the row under the pointer (preferred) or
// the selected row, retrieves its node chain, and resolves every chain node
// to a segment. An invisible tree root is dropped even though it is the
// first structural element of the chain.
func treeSelectionSegments(tree component.TreeView, event component.InputEvent, registry component.ActionRegistry) []string {
	hitRow, rowKnown := -1, false
	if clickPoint, pointKnown := eventPoint(event); pointKnown {
		hitRow, rowKnown = tree.RowAtPoint(clickPoint)
	}
	if !rowKnown {
		hitRow, rowKnown = tree.SelectedTreeRow()
	}
	if !rowKnown {
		return nil
	}
	nodeChain := tree.NodeChain(hitRow)
	if !tree.RootVisible() && len(nodeChain) > 0 {
		nodeChain = nodeChain[1:]
	}
	var segments []string
	for _, nodeValue := range nodeChain {
		if nodeText, ok := treeNodeText(tree, nodeValue, registry); ok {
			segments = append(segments, nodeText)
		}
	}
	return segments
}

// treeNodeText resolves one chain node. Raw values shaped like action
// identifiers are resolved through the action registry to a human label,
// falling back to the raw identifier; everything else goes through the
// renderer and the display-text chain.
func treeNodeText(tree component.TreeView, nodeValue any, registry component.ActionRegistry) (string, bool) {
	if identifier, isString := nodeValue.(string); isString && registry != nil && actionIdentifierPattern.MatchString(identifier) {
		if actionLabel, ok := registry.ActionLabel(identifier); ok {
			if cleanedLabel := CleanDisplayText(actionLabel); cleanedLabel != "" {
				return cleanedLabel, true
			}
		}
	}
	return RenderedText(tree, nodeValue)
}

// tableSelectionSegments resolves the cell under the pointer (preferred) or
// the selected cell, defaulting the column to zero when only a row is known.
func tableSelectionSegments(table component.TableView, event component.InputEvent) []string {
	hitRow, hitColumn, cellKnown := -1, 0, false
	if clickPoint, pointKnown := eventPoint(event); pointKnown {
		hitRow, hitColumn, cellKnown = table.CellAtPoint(clickPoint)
	}
	if !cellKnown {
		hitRow, hitColumn, cellKnown = table.SelectedCell()
	}
	if !cellKnown {
		return nil
	}
	if hitColumn < 0 {
		hitColumn = 0
	}
	cellText, ok := RenderedText(table, table.CellValue(hitRow, hitColumn))
	if !ok {
		return nil
	}
	return []string{cellText}
}

// listSelectionSegments resolves the item under the pointer, verifying the
// point actually falls inside the item's bounds. The closest-index lookup
// alone is not enough: near the list's empty tail it reports the last item
// even though the pointer is outside it. Without pointer information the
// selected item is used.
func listSelectionSegments(list component.ListView, event component.InputEvent) []string {
	hitIndex, indexKnown := -1, false
	if clickPoint, pointKnown := eventPoint(event); pointKnown {
		if closestIndex, closestKnown := list.ClosestIndex(clickPoint); closestKnown {
			if itemBounds, boundsKnown := list.ItemBounds(closestIndex); boundsKnown && itemBounds.Contains(clickPoint) {
				hitIndex, indexKnown = closestIndex, true
			}
		}
	}
	if !indexKnown {
		hitIndex, indexKnown = list.SelectedListIndex()
	}
	if !indexKnown {
		return nil
	}
	itemText, ok := RenderedText(list, list.ItemValue(hitIndex))
	if !ok {
		return nil
	}
	return []string{itemText}
}

func eventPoint(event component.InputEvent) (component.Point, bool) {
	if event == nil {
		return component.Point{}, false
	}
	return event.ClickPoint()
}
