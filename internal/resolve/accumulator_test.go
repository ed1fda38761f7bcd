package resolve_test

import (
	"testing"

	"github.com/uicrumb/uicrumb/internal/resolve"
)

// pipeSeparator is the separator used by most accumulator tests.
const pipeSeparator = " | "

// appendedItem pairs one Append call's item with its separator.
type appendedItem struct {
	item      string
	separator string
}

// TestPathBuilderAppend verifies cleaning, deduplication, and grouping
// behavior of the path accumulator.
func TestPathBuilderAppend(testInstance *testing.T) {
	testCases := []struct {
		testName string
		appended []appendedItem
		expected string
	}{
		{
			testName: "blank_items_contribute_nothing",
			appended: []appendedItem{
				{item: "", separator: pipeSeparator},
				{item: "   ", separator: pipeSeparator},
				{item: "Editor", separator: pipeSeparator},
			},
			expected: "Editor",
		},
		{
			testName: "immediate_repetition_collapses",
			appended: []appendedItem{
				{item: "Project", separator: pipeSeparator},
				{item: "Project", separator: pipeSeparator},
				{item: "src", separator: pipeSeparator},
			},
			expected: "Project | src",
		},
		{
			testName: "repetition_after_marker_trimming_collapses",
			appended: []appendedItem{
				{item: "Appearance", separator: pipeSeparator},
				{item: "Appearance:", separator: pipeSeparator},
			},
			expected: "Appearance",
		},
		{
			testName: "grouping_label_joined_by_single_space",
			appended: []appendedItem{
				{item: "Settings", separator: pipeSeparator},
				{item: "Insert imports on paste:", separator: pipeSeparator},
				{item: "Ask", separator: pipeSeparator},
			},
			expected: "Settings | Insert imports on paste: Ask",
		},
		{
			testName: "consecutive_grouping_labels_stay_space_joined",
			appended: []appendedItem{
				{item: "Font:", separator: pipeSeparator},
				{item: "Size:", separator: pipeSeparator},
				{item: "12", separator: pipeSeparator},
			},
			expected: "Font: Size: 12",
		},
		{
			testName: "markup_tags_stripped",
			appended: []appendedItem{
				{item: "<html><b>Code Style</b></html>", separator: pipeSeparator},
				{item: "Java", separator: pipeSeparator},
			},
			expected: "Code Style | Java",
		},
		{
			testName: "advanced_setting_suffix_stripped",
			appended: []appendedItem{
				{item: "Tab limit advanced.setting.editor.tab.limit", separator: pipeSeparator},
			},
			expected: "Tab limit",
		},
		{
			testName: "whitespace_runs_collapse",
			appended: []appendedItem{
				{item: "  Auto   Import  ", separator: pipeSeparator},
			},
			expected: "Auto Import",
		},
		{
			testName: "nothing_appended_yields_empty",
			appended: nil,
			expected: "",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.testName, func(subtestInstance *testing.T) {
			builder := &resolve.PathBuilder{}
			for _, appendCall := range testCase.appended {
				builder.Append(appendCall.item, appendCall.separator)
			}
			assembled := builder.Finish()
			if assembled != testCase.expected {
				subtestInstance.Errorf("assembled path %q, expected %q", assembled, testCase.expected)
			}
		})
	}
}

// TestPathBuilderEmpty verifies the emptiness gate used to abandon
// resolutions that produced no segments.
func TestPathBuilderEmpty(testInstance *testing.T) {
	builder := &resolve.PathBuilder{}
	if !builder.Empty() {
		testInstance.Error("new builder reported non-empty")
	}
	builder.Append("", pipeSeparator)
	if !builder.Empty() {
		testInstance.Error("builder with only blank appends reported non-empty")
	}
	builder.Append("Settings", pipeSeparator)
	if builder.Empty() {
		testInstance.Error("builder with one segment reported empty")
	}
}

// TestCleanDisplayText verifies the shared text cleaning step.
func TestCleanDisplayText(testInstance *testing.T) {
	testCases := []struct {
		testName string
		rawText  string
		expected string
	}{
		{testName: "plain_text_unchanged", rawText: "Editor", expected: "Editor"},
		{testName: "html_markup_removed", rawText: "<html>Editor</html>", expected: "Editor"},
		{testName: "nested_tags_removed", rawText: "<b><i>Bold</i></b>", expected: "Bold"},
		{testName: "advanced_setting_identifier_removed", rawText: "Limit advanced.setting.tab.limit", expected: "Limit"},
		{testName: "internal_whitespace_collapsed", rawText: "Code\t\tStyle", expected: "Code Style"},
		{testName: "blank_yields_empty", rawText: "   ", expected: ""},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.testName, func(subtestInstance *testing.T) {
			cleaned := resolve.CleanDisplayText(testCase.rawText)
			if cleaned != testCase.expected {
				subtestInstance.Errorf("cleaned %q, expected %q", cleaned, testCase.expected)
			}
		})
	}
}
