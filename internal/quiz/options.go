package quiz

import "sort"

// Options lists every answer option the scorer recognizes, sorted. The
// quiz front end renders its questions from this catalog, so an option it
// offers is always one the scorer can expand.
func Options() []string {
	opts := make([]string, 0, len(personalityMapping))
	for o := range personalityMapping {
		opts = append(opts, o)
	}
	sort.Strings(opts)
	return opts
}
