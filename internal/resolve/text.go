package resolve

import (
	"fmt"
	"regexp"

	"github.com/uicrumb/uicrumb/internal/component"
)

// referenceLikePattern matches opaque object reference strings of the
// "ClassName@hexid" shape produced by default stringification. Such strings
// are never presentable and must never reach the path.
var referenceLikePattern = regexp.MustCompile(`^[\w$.]+@[0-9a-fA-F]+$`)

// isReferenceLike reports whether text looks like an object reference rather
// than human-readable display text.
func isReferenceLike(text string) bool {
	return referenceLikePattern.MatchString(text)
}

// displayTextStrategies is the ordered strategy list behind DisplayText.
// Rendered components are handled upfront by RenderedText; values reaching
// these strategies are raw selection values or plain components.
var displayTextStrategies = []strategy[any]{
	{name: "component-text", resolve: componentTextStrategy},
	{name: "direct-string", resolve: directStringStrategy},
	{name: "accessor-chain", resolve: accessorChainStrategy},
}

// DisplayText turns an opaque value (a component, a selection-model item, a
// raw domain object) into presentable text. It returns ok=false when nothing
// presentable could be extracted; callers treat that as "this source
// contributed nothing".
func DisplayText(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	return firstResolved(displayTextStrategies, value)
}

// RenderedText invokes the container's configured renderer against the value
// and extracts text from the rendered output component. It falls back to
// DisplayText on the raw value when the renderer yields nothing.
func RenderedText(renderer component.Renderer, value any) (string, bool) {
	if renderer != nil {
		if renderedComponent := renderer.RenderValue(value); renderedComponent != nil {
			if renderedText, ok := componentText(renderedComponent); ok {
				return renderedText, true
			}
		}
	}
	return DisplayText(value)
}

func componentTextStrategy(value any) (string, bool) {
	candidateComponent, isComponent := value.(component.Component)
	if !isComponent {
		return "", false
	}
	return componentText(candidateComponent)
}

// componentText extracts display text from a component: its own text, its
// joined colored-text fragments, or the first text-bearing descendant of a
// nested container.
func componentText(candidateComponent component.Component) (string, bool) {
	if candidateComponent == nil {
		return "", false
	}
	if textHolder, ok := candidateComponent.(component.TextHolder); ok {
		if cleanedText := CleanDisplayText(textHolder.Text()); cleanedText != "" {
			return cleanedText, true
		}
	}
	if fragmentText, ok := fragmentsText(candidateComponent); ok {
		return fragmentText, true
	}
	for _, childComponent := range candidateComponent.Children() {
		if childText, ok := componentText(childComponent); ok {
			return childText, true
		}
	}
	return "", false
}

// fragmentsText joins the fragments of a multi-fragment colored-text
// component in order.
func fragmentsText(candidateComponent component.Component) (string, bool) {
	fragmentHolder, ok := candidateComponent.(component.FragmentHolder)
	if !ok {
		return "", false
	}
	var joinedFragments string
	for _, fragment := range fragmentHolder.Fragments() {
		joinedFragments += fragment
	}
	cleanedText := CleanDisplayText(joinedFragments)
	return cleanedText, cleanedText != ""
}

func directStringStrategy(value any) (string, bool) {
	var directText string
	switch typedValue := value.(type) {
	case string:
		directText = typedValue
	case fmt.Stringer:
		directText = typedValue.String()
	default:
		return "", false
	}
	cleanedText := CleanDisplayText(directText)
	if cleanedText == "" || isReferenceLike(cleanedText) {
		return "", false
	}
	return cleanedText, true
}

// accessorChainStrategy tries a bounded set of well-known accessors against
// the value. The first non-blank, non-reference-looking result wins.
func accessorChainStrategy(value any) (string, bool) {
	accessorResults := make([]string, 0, 5)
	if displayNamed, ok := value.(component.DisplayNamed); ok {
		accessorResults = append(accessorResults, displayNamed.DisplayName())
	}
	if named, ok := value.(component.Named); ok {
		accessorResults = append(accessorResults, named.Name())
	}
	if textHolder, ok := value.(component.TextHolder); ok {
		accessorResults = append(accessorResults, textHolder.Text())
	}
	if presentable, ok := value.(component.PresentableTexted); ok {
		accessorResults = append(accessorResults, presentable.PresentableText())
	}
	if titled, ok := value.(component.Titled); ok {
		accessorResults = append(accessorResults, titled.Title())
	}
	for _, accessorResult := range accessorResults {
		cleanedText := CleanDisplayText(accessorResult)
		if cleanedText != "" && !isReferenceLike(cleanedText) {
			return cleanedText, true
		}
	}
	return "", false
}
