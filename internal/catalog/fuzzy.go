package catalog

import (
	"math"
	"slices"
	"strings"

	"github.com/findmyprof/findmyprof-go/internal/stringutil"
)

// TokenSortRatio scores how similar two strings are on a 0-100 scale,
// ignoring word order, case, diacritics and punctuation.
//
// Both inputs are folded, split into alphanumeric tokens, sorted and rejoined
// with single spaces. The score is 200*LCS/(len(a)+len(b)) rounded half to
// even, where LCS is the longest common subsequence in runes. Either side
// empty after processing scores 0.
func TokenSortRatio(a, b string) int {
	sa := sortedTokens(a)
	sb := sortedTokens(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	if string(sa) == string(sb) {
		return 100
	}

	lcs := lcsLen(sa, sb)
	ratio := 200 * float64(lcs) / float64(len(sa)+len(sb))
	return int(math.RoundToEven(ratio))
}

func sortedTokens(s string) []rune {
	tokens := stringutil.Tokens(stringutil.Fold(s))
	slices.Sort(tokens)
	return []rune(strings.Join(tokens, " "))
}

// lcsLen returns the length of the longest common subsequence using two
// rolling rows.
func lcsLen(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
