// Package quiz turns personality quiz answers into a ranked genre profile.
package quiz

import (
	"errors"
	"sort"

	"cinequiz/pkg/models"
)

// ErrNoAnswers is returned when a quiz submission carries no answers at
// all. Callers should send the user back to the quiz instead of scoring.
var ErrNoAnswers = errors.New("quiz: no answers submitted")

const maxDominantGenres = 3

// Score tallies the genres behind each answered option and matches the
// dominant genres against the profile catalog. Answers whose option is not
// in the mapping contribute nothing. Deterministic for a given answer set:
// answers are walked in sorted question order, so repeated calls always
// produce the same ranking.
func Score(answers map[string]string) (models.Profile, error) {
	if len(answers) == 0 {
		return models.Profile{}, ErrNoAnswers
	}

	questions := make([]string, 0, len(answers))
	for q := range answers {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	var traits []string
	for _, q := range questions {
		if genres, ok := personalityMapping[answers[q]]; ok {
			traits = append(traits, genres...)
		}
	}

	dominant := dominantGenres(traits)
	return matchProfile(dominant), nil
}

// dominantGenres returns the top genres by tally count, at most three,
// ties broken by first appearance in the trait sequence.
func dominantGenres(traits []string) []string {
	counts := make(map[string]int, len(traits))
	order := make([]string, 0, len(traits))
	for _, t := range traits {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	// order is first-seen; SliceStable keeps it for equal counts
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxDominantGenres {
		order = order[:maxDominantGenres]
	}
	return order
}

// matchProfile picks the catalog profile with the highest genre overlap.
// Strict comparison means earlier declarations win ties; zero overlap
// everywhere falls back to the default profile.
func matchProfile(dominant []string) models.Profile {
	var best *profileEntry
	bestScore := 0

	for i := range profiles {
		p := &profiles[i]
		score := 0
		for _, g := range dominant {
			for _, pg := range p.Genres {
				if g == pg {
					score++
					break
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = p
		}
	}

	if best == nil {
		for i := range profiles {
			if profiles[i].Name == defaultProfileName {
				best = &profiles[i]
				break
			}
		}
	}

	return models.Profile{
		Name:        best.Name,
		Description: best.Description,
		Genres:      dominant,
	}
}
