package resolve_test

import (
	"testing"

	"github.com/uicrumb/uicrumb/internal/resolve"
)

// TestMenuPathInvokerChain verifies the walk across nested popups back to the
// menu bar: each popup hops to the menu that opened it.
func TestMenuPathInvokerChain(testInstance *testing.T) {
	document := `{"root":{"kind":"container","children":[
		{"kind":"menu_bar","children":[
			{"kind":"menu","id":"file_menu","text":"File"}
		]},
		{"kind":"menu_popup","id":"file_popup","invoker_id":"file_menu","children":[
			{"kind":"menu","id":"manage_menu","text":"Manage IDE Settings"}
		]},
		{"kind":"menu_popup","id":"manage_popup","invoker_id":"manage_menu","children":[
			{"kind":"menu_item","id":"export_item","text":"Export Settings"}
		]}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	pathText, ok := resolve.MenuPath(mustLookup(testInstance, parsedSnapshot, "export_item"), " | ")
	if !ok {
		testInstance.Fatal("expected a resolved menu path")
	}
	expected := "File | Manage IDE Settings | Export Settings"
	if pathText != expected {
		testInstance.Errorf("menu path %q, expected %q", pathText, expected)
	}
}

// TestMenuPathThroughDispatcher verifies that a menu item routed through the
// general entry point takes the structural menu walk, not the context search.
func TestMenuPathThroughDispatcher(testInstance *testing.T) {
	document := `{"root":{"kind":"container","children":[
		{"kind":"menu_bar","children":[
			{"kind":"menu","id":"code_menu","text":"Code"}
		]},
		{"kind":"menu_popup","id":"code_popup","invoker_id":"code_menu","children":[
			{"kind":"menu_item","id":"reformat_item","text":"Reformat Code"}
		]}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	pathText, ok := resolve.Path(mustLookup(testInstance, parsedSnapshot, "reformat_item"), nil, resolve.Options{Separator: " > "})
	if !ok {
		testInstance.Fatal("expected a resolved menu path")
	}
	expected := "Code > Reformat Code"
	if pathText != expected {
		testInstance.Errorf("menu path %q, expected %q", pathText, expected)
	}
}

// TestMenuPathTopLevelItem verifies that a direct child of the menu bar
// produces a single-segment path.
func TestMenuPathTopLevelItem(testInstance *testing.T) {
	document := `{"root":{"kind":"menu_bar","children":[
		{"kind":"menu","id":"help_menu","text":"Help"}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	pathText, ok := resolve.MenuPath(mustLookup(testInstance, parsedSnapshot, "help_menu"), " | ")
	if !ok {
		testInstance.Fatal("expected a resolved menu path")
	}
	if pathText != "Help" {
		testInstance.Errorf("menu path %q, expected %q", pathText, "Help")
	}
}

// TestMenuPathTextlessItem verifies that a chain with no resolvable text
// yields no path.
func TestMenuPathTextlessItem(testInstance *testing.T) {
	document := `{"root":{"kind":"menu_popup","id":"popup","children":[
		{"kind":"menu_item","id":"blank_item"}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	if pathText, ok := resolve.MenuPath(mustLookup(testInstance, parsedSnapshot, "blank_item"), " | "); ok {
		testInstance.Errorf("expected no path, got %q", pathText)
	}
}
