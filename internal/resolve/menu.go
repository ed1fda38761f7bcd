package resolve

import (
	"github.com/uicrumb/uicrumb/internal/component"
)

// MenuPath walks the invoker chain of a clicked menu item and joins the
// collected texts root-to-leaf. Menu hierarchy is strictly structural: no
// title search and no spatial heuristics apply. The walk resolves the item's
// own text, then repeatedly hops from a transient menu popup to the menu
// that opened it, stopping at the menu bar.
func MenuPath(menuItem component.Component, separator string) (string, bool) {
	var collectedTexts []string
	currentComponent := menuItem
	for currentComponent != nil {
		if item, ok := currentComponent.(component.MenuItem); ok {
			if itemText := CleanDisplayText(item.ItemText()); itemText != "" {
				collectedTexts = append(collectedTexts, itemText)
			}
		}
		parentComponent := currentComponent.Parent()
		if parentComponent == nil {
			break
		}
		if menuBar, ok := parentComponent.(component.MenuBar); ok && menuBar.IsMenuBar() {
			break
		}
		if popup, ok := parentComponent.(component.MenuPopup); ok {
			invokerComponent := popup.Invoker()
			if invokerComponent == nil {
				break
			}
			currentComponent = invokerComponent
			continue
		}
		currentComponent = parentComponent
	}
	if len(collectedTexts) == 0 {
		return "", false
	}
	builder := &PathBuilder{}
	for textIndex := len(collectedTexts) - 1; textIndex >= 0; textIndex-- {
		builder.Append(collectedTexts[textIndex], separator)
	}
	return builder.Finish(), true
}
