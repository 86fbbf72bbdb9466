// Package editdist implements bounded Levenshtein edit distance.
package editdist

// Distance returns the exact Levenshtein distance between a and b: the
// minimum number of single-rune insertions, deletions or substitutions
// needed to turn one into the other. Comparison is on raw runes; callers
// normalise case before calling if they want case-insensitive distance.
func Distance(a, b string) int {
	return Bounded(a, b, -1)
}

// Bounded computes the Levenshtein distance with an early-exit threshold.
// If the true distance exceeds maxDistance, the return value is
// maxDistance+1 rather than the exact distance; callers must treat any
// result greater than maxDistance as "too far". A negative maxDistance
// disables the bound.
func Bounded(a, b string, maxDistance int) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	// Keep the shorter string first so the rows stay small.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		if maxDistance >= 0 && len(rb) > maxDistance {
			return maxDistance + 1
		}
		return len(rb)
	}

	// Length difference alone already exceeds the bound.
	if maxDistance >= 0 && len(rb)-len(ra) > maxDistance {
		return maxDistance + 1
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		rowMin := j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
			if curr[i] < rowMin {
				rowMin = curr[i]
			}
		}

		// The distance can only grow from here.
		if maxDistance >= 0 && rowMin > maxDistance {
			return maxDistance + 1
		}

		prev, curr = curr, prev
	}

	d := prev[len(ra)]
	if maxDistance >= 0 && d > maxDistance {
		return maxDistance + 1
	}
	return d
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
