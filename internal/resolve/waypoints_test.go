package resolve_test

import (
	"testing"

	"github.com/uicrumb/uicrumb/internal/component"
	"github.com/uicrumb/uicrumb/internal/resolve"
	"github.com/uicrumb/uicrumb/internal/snapshot"
)

// mustLookup resolves a node identifier inside a parsed snapshot document.
func mustLookup(testInstance *testing.T, parsedSnapshot *snapshot.Snapshot, identifier string) component.Component {
	testInstance.Helper()
	found, known := parsedSnapshot.Lookup(identifier)
	if !known {
		testInstance.Fatalf("component %s not found in snapshot", identifier)
	}
	return found
}

// mustParse parses a snapshot document literal.
func mustParse(testInstance *testing.T, document string) *snapshot.Snapshot {
	testInstance.Helper()
	parsedSnapshot, parseError := snapshot.Parse([]byte(document))
	if parseError != nil {
		testInstance.Fatalf("parse snapshot: %v", parseError)
	}
	return parsedSnapshot
}

func equalSegments(first []string, second []string) bool {
	if len(first) != len(second) {
		return false
	}
	for segmentIndex := range first {
		if first[segmentIndex] != second[segmentIndex] {
			return false
		}
	}
	return true
}

// TestCollectWaypointsOrder verifies that waypoints discovered bottom-up are
// returned in boundary-to-target order.
func TestCollectWaypointsOrder(testInstance *testing.T) {
	document := `{"root":{"kind":"dialog","id":"dialog","title":"Settings","children":[
		{"kind":"tabs","selected_tab":"Editor","children":[
			{"kind":"group","title":"Auto Import","children":[
				{"kind":"label","id":"target","text":"Insert imports on paste:"}
			]}
		]}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	waypoints := resolve.CollectWaypoints(
		mustLookup(testInstance, parsedSnapshot, "target"),
		mustLookup(testInstance, parsedSnapshot, "dialog"),
	)
	expected := []string{"Editor", "Auto Import"}
	if !equalSegments(waypoints, expected) {
		testInstance.Errorf("waypoints %v, expected %v", waypoints, expected)
	}
}

// TestCollectWaypointsStopsAtBoundary verifies that waypoints above the
// boundary never leak into the result.
func TestCollectWaypointsStopsAtBoundary(testInstance *testing.T) {
	document := `{"root":{"kind":"group","title":"Outside Group","children":[
		{"kind":"dialog","id":"dialog","title":"Inner","children":[
			{"kind":"group","title":"Inside Group","children":[
				{"kind":"label","id":"target","text":"x"}
			]}
		]}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	waypoints := resolve.CollectWaypoints(
		mustLookup(testInstance, parsedSnapshot, "target"),
		mustLookup(testInstance, parsedSnapshot, "dialog"),
	)
	expected := []string{"Inside Group"}
	if !equalSegments(waypoints, expected) {
		testInstance.Errorf("waypoints %v, expected %v", waypoints, expected)
	}
}

// TestNearestSeparatorAboveTarget verifies that the closest titled separator
// vertically above the target wins and separators below are ignored.
func TestNearestSeparatorAboveTarget(testInstance *testing.T) {
	document := `{"root":{"kind":"dialog","id":"dialog","title":"Settings","children":[
		{"kind":"container","children":[
			{"kind":"separator","title":"General","bounds":{"x":0,"y":10,"w":300,"h":10}},
			{"kind":"separator","title":"Formatting","bounds":{"x":0,"y":60,"w":300,"h":10}},
			{"kind":"label","id":"target","text":"Wrap:","bounds":{"x":10,"y":90,"w":100,"h":20}},
			{"kind":"separator","title":"Below","bounds":{"x":0,"y":140,"w":300,"h":10}}
		]}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	waypoints := resolve.CollectWaypoints(
		mustLookup(testInstance, parsedSnapshot, "target"),
		mustLookup(testInstance, parsedSnapshot, "dialog"),
	)
	expected := []string{"Formatting"}
	if !equalSegments(waypoints, expected) {
		testInstance.Errorf("waypoints %v, expected %v", waypoints, expected)
	}
}

// TestHiddenCardPageSeparatorExcluded verifies that a separator belonging to
// a resident but invisible sibling page never contributes, even though it
// exists in the tree and sits closer to the target.
func TestHiddenCardPageSeparatorExcluded(testInstance *testing.T) {
	document := `{"root":{"kind":"dialog","id":"dialog","title":"Settings","children":[
		{"kind":"container","children":[
			{"kind":"container","hidden":true,"children":[
				{"kind":"separator","title":"Hidden Page Group","bounds":{"x":0,"y":80,"w":300,"h":10}}
			]},
			{"kind":"container","children":[
				{"kind":"separator","title":"Active Page Group","bounds":{"x":0,"y":20,"w":300,"h":10}},
				{"kind":"checkbox","id":"target","text":"Enable","bounds":{"x":10,"y":100,"w":120,"h":20}}
			]}
		]}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	waypoints := resolve.CollectWaypoints(
		mustLookup(testInstance, parsedSnapshot, "target"),
		mustLookup(testInstance, parsedSnapshot, "dialog"),
	)
	expected := []string{"Active Page Group"}
	if !equalSegments(waypoints, expected) {
		testInstance.Errorf("waypoints %v, expected %v", waypoints, expected)
	}
}

// TestSelectedTabDeterminesWaypoint verifies that tab waypoints follow the
// selection state rather than structural position.
func TestSelectedTabDeterminesWaypoint(testInstance *testing.T) {
	document := `{"root":{"kind":"dialog","id":"dialog","title":"Settings","children":[
		{"kind":"tabs","id":"tabs","selected_tab":"General","children":[
			{"kind":"label","id":"target","text":"x"}
		]}
	]}}`
	parsedSnapshot := mustParse(testInstance, document)
	waypoints := resolve.CollectWaypoints(
		mustLookup(testInstance, parsedSnapshot, "target"),
		mustLookup(testInstance, parsedSnapshot, "dialog"),
	)
	expected := []string{"General"}
	if !equalSegments(waypoints, expected) {
		testInstance.Errorf("waypoints %v, expected %v", waypoints, expected)
	}
}
