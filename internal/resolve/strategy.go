package resolve

// strategy is one named attempt at producing text from an input. Strategies
// are composed into ordered lists evaluated first-success-wins; a strategy
// that cannot contribute returns ok=false and the next one runs. This keeps
// the "degrade, never fail" behavior of every resolution step explicit and
// individually testable.
type strategy[T any] struct {
	name    string
	resolve func(input T) (string, bool)
}

// firstResolved evaluates strategies in order and returns the first
// successful non-blank result.
func firstResolved[T any](strategies []strategy[T], input T) (string, bool) {
	for _, currentStrategy := range strategies {
		resolvedText, ok := currentStrategy.resolve(input)
		if ok && resolvedText != "" {
			return resolvedText, true
		}
	}
	return "", false
}
