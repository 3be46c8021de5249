package naming

import "strings"

// Distance computes the Levenshtein distance between two strings, counted in
// runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Two rows instead of the full matrix.
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 for identical strings down to 0 for unrelated ones,
// ignoring case and separators.
func Similarity(a, b string) float64 {
	na, nb := normalize(a), normalize(b)

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(longest)
}

// Closest returns the candidate most similar to name, if any is at least
// half similar.
func Closest(name string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore float64
		found     bool
	)

	for _, c := range candidates {
		score := Similarity(name, c)
		if score >= 0.5 && (!found || score > bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}
