package resolve

import (
	"regexp"
	"strings"
)

// groupingMarker is the trailing token signaling that a label introduces an
// adjacent value rather than standing on its own.
const groupingMarker = ":"

var (
	markupTagPattern        = regexp.MustCompile(`<[^<>]*>`)
	advancedSettingPattern  = regexp.MustCompile(`\s*advanced\.setting(?:\.[\w-]+)+\s*$`)
	whitespaceRunPattern    = regexp.MustCompile(`\s+`)
	trailingSeparatorRunes  = " \t|>»"
	groupingMarkerAlternate = "：" // full-width colon
)

// CleanDisplayText strips markup tags and advanced-setting identifier
// suffixes from raw display text and collapses internal whitespace runs.
// Blank or unresolvable input yields the empty string.
func CleanDisplayText(rawText string) string {
	cleaned := markupTagPattern.ReplaceAllString(rawText, "")
	cleaned = advancedSettingPattern.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRunPattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// endsWithGroupingMarker reports whether the cleaned text is a grouping label.
func endsWithGroupingMarker(cleanedText string) bool {
	return strings.HasSuffix(cleanedText, groupingMarker) || strings.HasSuffix(cleanedText, groupingMarkerAlternate)
}

// trimGroupingMarker removes a trailing grouping marker for comparison.
func trimGroupingMarker(cleanedText string) string {
	cleanedText = strings.TrimSuffix(cleanedText, groupingMarker)
	cleanedText = strings.TrimSuffix(cleanedText, groupingMarkerAlternate)
	return strings.TrimRight(cleanedText, " ")
}

type pathEntry struct {
	text      string
	grouping  bool
	separator string
}

// PathBuilder accumulates cleaned path segments in append order and joins
// them on Finish. Appends are best effort: blank or unresolvable input
// contributes nothing, and a segment equal to the previously appended one
// (compared after marker trimming) is skipped. A grouping label is joined to
// its successor with a single space instead of the separator, and separation
// does not resume until the next non-grouping segment lands.
type PathBuilder struct {
	entries []pathEntry
}

// Append adds one segment joined by the given separator. No-op on blank
// input and on exact repetition of the last appended segment.
func (builder *PathBuilder) Append(item string, separator string) {
	cleanedItem := CleanDisplayText(item)
	if cleanedItem == "" {
		return
	}
	if len(builder.entries) > 0 {
		lastEntry := builder.entries[len(builder.entries)-1]
		if trimGroupingMarker(lastEntry.text) == trimGroupingMarker(cleanedItem) {
			return
		}
	}
	builder.entries = append(builder.entries, pathEntry{
		text:      cleanedItem,
		grouping:  endsWithGroupingMarker(cleanedItem),
		separator: separator,
	})
}

// Empty reports whether nothing has been appended.
func (builder *PathBuilder) Empty() bool {
	return len(builder.entries) == 0
}

// Finish assembles the accumulated segments into the final path string,
// trimming trailing separators and markers.
func (builder *PathBuilder) Finish() string {
	var assembled strings.Builder
	previousGrouping := false
	for entryIndex, entry := range builder.entries {
		if entryIndex > 0 {
			if previousGrouping {
				assembled.WriteString(" ")
			} else {
				assembled.WriteString(entry.separator)
			}
		}
		assembled.WriteString(entry.text)
		previousGrouping = entry.grouping
	}
	return strings.TrimRight(assembled.String(), trailingSeparatorRunes)
}
