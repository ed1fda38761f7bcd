package resolve

import (
	"github.com/uicrumb/uicrumb/internal/component"
)

// CollectWaypoints walks the parent chain from target up to boundary
// (exclusive) and gathers grouping waypoints: the selected tab title of every
// tab container and the border title of every titled group crossed on the
// way. Traversal is bottom-up but the returned order is top-down, from the
// boundary toward the target. A spatial waypoint from the nearest titled
// separator above the target, if any, is appended last.
func CollectWaypoints(target component.Component, boundary component.Component) []string {
	var waypoints []string
	for currentComponent := target; currentComponent != nil && currentComponent != boundary; currentComponent = currentComponent.Parent() {
		var nodeWaypoints []string
		if titledGroup, ok := currentComponent.(component.TitledGroup); ok {
			if borderTitle := CleanDisplayText(titledGroup.BorderTitle()); borderTitle != "" {
				nodeWaypoints = append(nodeWaypoints, borderTitle)
			}
		}
		if tabContainer, ok := currentComponent.(component.TabContainer); ok {
			if tabTitle := CleanDisplayText(tabContainer.SelectedTabTitle()); tabTitle != "" {
				nodeWaypoints = append(nodeWaypoints, tabTitle)
			}
		}
		if len(nodeWaypoints) > 0 {
			waypoints = append(nodeWaypoints, waypoints...)
		}
	}
	if separatorTitle, ok := nearestSeparatorTitle(target, boundary); ok {
		waypoints = append(waypoints, separatorTitle)
	}
	return waypoints
}

// nearestSeparatorTitle finds the titled group separator closest above the
// target inside the boundary subtree. Qualifying separators must be
// effectively visible: card-style containers keep inactive pages resident in
// the tree, so a structural "exists" check is not enough and every candidate
// is gated on the visibility of its whole ancestor chain.
func nearestSeparatorTitle(target component.Component, boundary component.Component) (string, bool) {
	if target == nil || boundary == nil {
		return "", false
	}
	targetBounds, targetBoundsKnown := target.Bounds()
	if !targetBoundsKnown {
		return "", false
	}
	var bestTitle string
	bestY := -1
	found := false
	visitSeparatorCandidates(boundary, boundary, func(separator component.GroupSeparator) {
		separatorBounds, boundsKnown := separator.Bounds()
		if !boundsKnown {
			return
		}
		if separatorBounds.Y > targetBounds.Y {
			return
		}
		separatorTitle := CleanDisplayText(separator.SeparatorTitle())
		if separatorTitle == "" {
			return
		}
		if !found || separatorBounds.Y > bestY {
			bestTitle = separatorTitle
			bestY = separatorBounds.Y
			found = true
		}
	})
	return bestTitle, found
}

// visitSeparatorCandidates walks the subtree rooted at current, skipping any
// branch that is not visible, and reports every visible group separator.
func visitSeparatorCandidates(current component.Component, boundary component.Component, visit func(component.GroupSeparator)) {
	if current == nil {
		return
	}
	if current != boundary && !current.Visible() {
		return
	}
	if separator, ok := current.(component.GroupSeparator); ok {
		visit(separator)
	}
	for _, childComponent := range current.Children() {
		visitSeparatorCandidates(childComponent, boundary, visit)
	}
}
