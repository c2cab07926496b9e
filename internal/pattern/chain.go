// Package pattern provides the ordered-matcher chain used by both parsing
// pipelines: a list of matchers tried in priority order where the first
// success wins and lower-priority matchers are never consulted.
package pattern

// Matcher attempts to extract a value from text. The boolean reports
// whether the matcher produced a result.
type Matcher[T any] func(text string) (T, bool)

// FirstMatch tries each matcher in order and returns the first successful
// result. Absence is a value, not an error: when no matcher succeeds the
// zero value and false are returned.
func FirstMatch[T any](text string, matchers []Matcher[T]) (T, bool) {
	for _, match := range matchers {
		if result, ok := match(text); ok {
			return result, true
		}
	}
	var zero T
	return zero, false
}
