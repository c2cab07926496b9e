package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstMatch(t *testing.T) {
	contains := func(substr, result string) Matcher[string] {
		return func(text string) (string, bool) {
			if strings.Contains(text, substr) {
				return result, true
			}
			return "", false
		}
	}

	tests := []struct {
		name      string
		text      string
		matchers  []Matcher[string]
		want      string
		wantFound bool
	}{
		{
			name:      "first matcher wins",
			text:      "abc",
			matchers:  []Matcher[string]{contains("a", "first"), contains("b", "second")},
			want:      "first",
			wantFound: true,
		},
		{
			name:      "falls through to later matcher",
			text:      "xyz",
			matchers:  []Matcher[string]{contains("a", "first"), contains("y", "second")},
			want:      "second",
			wantFound: true,
		},
		{
			name:      "no matcher succeeds",
			text:      "nothing",
			matchers:  []Matcher[string]{contains("q", "first")},
			wantFound: false,
		},
		{
			name:      "empty matcher list",
			text:      "anything",
			matchers:  nil,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FirstMatch(tt.text, tt.matchers)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstMatchStopsAtFirstSuccess(t *testing.T) {
	calls := 0
	counting := func(ok bool) Matcher[int] {
		return func(_ string) (int, bool) {
			calls++
			return calls, ok
		}
	}

	result, found := FirstMatch("x", []Matcher[int]{counting(true), counting(true)})
	assert.True(t, found)
	assert.Equal(t, 1, result)
	assert.Equal(t, 1, calls, "lower-priority matchers must not run after a success")
}
