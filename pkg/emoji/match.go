package emoji

// maxEditDistance is the absolute Levenshtein cutoff.
const maxEditDistance = 2

// minRatio is the similarity-ratio cutoff on the normalized form.
const minRatio = 0.75

// Closest returns the unique closest dictionary entry to name, or "" when
// name is already known, no candidate clears either threshold, or the
// ranking ties. Qualifying candidates are ranked first by how far their
// length strays from the misspelled name's and only then by edit
// distance: most shortcode typos (substitutions, swapped letters)
// preserve length, so "smilie" resolves to the same-length "smiley"
// rather than the one-deletion-away "smile".
func Closest(name string) string {
	if Known(name) {
		return ""
	}
	norm := normalize(name)

	best := ""
	bestLenDiff, bestDist := -1, -1
	tie := false

	for candidate := range Names {
		cnorm := normalize(candidate)
		dist := levenshtein(norm, cnorm)
		maxLen := len(norm)
		if len(cnorm) > maxLen {
			maxLen = len(cnorm)
		}
		ratio := 1.0
		if maxLen > 0 {
			ratio = 1.0 - float64(dist)/float64(maxLen)
		}
		if dist > maxEditDistance && ratio < minRatio {
			continue
		}
		lenDiff := len(cnorm) - len(norm)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		switch {
		case bestDist < 0 || lenDiff < bestLenDiff || (lenDiff == bestLenDiff && dist < bestDist):
			best = candidate
			bestLenDiff, bestDist = lenDiff, dist
			tie = false
		case lenDiff == bestLenDiff && dist == bestDist && candidate != best:
			tie = true
		}
	}

	if best == "" || tie {
		return ""
	}
	return best
}

// levenshtein computes the classic edit distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = minOf(del, minOf(ins, sub))
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func minOf(a, b int) int {
	if a < b {
		return a
	}
	return b
}
