package match

// Distance is the Levenshtein edit distance between a and b, counted in runes.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// two rows of the matrix, sized by the shorter input
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			sub := prev[i-1]
			if ra[i-1] != rb[j-1] {
				sub++
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, sub)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity scores folded a and b between 0 (nothing shared) and 1 (equal).
func Similarity(a, b string) float64 {
	fa, fb := Fold(a), Fold(b)

	longest := max(len([]rune(fa)), len([]rune(fb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(fa, fb))/float64(longest)
}
