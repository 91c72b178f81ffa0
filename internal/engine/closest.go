package engine

import "unicode/utf8"

// maxSuggestDistance is the maximum edit distance for which
// an unrecognized option gets a suggestion.
const maxSuggestDistance = 2

// editDistance returns the Levenshtein distance between two words,
// counted in runes and computed over a single row.
func editDistance(from, to string) int {
	src, dst := []rune(from), []rune(to)

	row := make([]int, len(dst)+1)
	for j := range row {
		row[j] = j
	}

	for i, sr := range src {
		diag := row[0]
		row[0] = i + 1

		for j, dr := range dst {
			above := row[j+1]

			cost := 1
			if sr == dr {
				cost = 0
			}

			row[j+1] = min(above+1, row[j]+1, diag+cost)
			diag = above
		}
	}

	return row[len(dst)]
}

// closestChoice returns the choice nearest to word, and its distance.
// Ties are won by the earliest choice.
func closestChoice(word string, choices []string) (string, int) {
	best, bestDist := "", -1

	for _, choice := range choices {
		// Lengths alone bound the distance from below.
		if bestDist >= 0 && abs(utf8.RuneCountInString(choice)-utf8.RuneCountInString(word)) >= bestDist {
			continue
		}

		if dist := editDistance(word, choice); bestDist < 0 || dist < bestDist {
			best, bestDist = choice, dist
		}
	}

	if bestDist < 0 {
		return "", 0
	}

	return best, bestDist
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
