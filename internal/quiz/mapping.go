package quiz

// personalityMapping expands a chosen quiz option into the genres it
// signals. Order inside each triple matters: it decides first-seen order
// when tallies tie.
var personalityMapping = map[string][]string{
	"quiet_night":        {"drama", "romance", "indie"},
	"wild_party":         {"comedy", "action", "adventure"},
	"puzzle_solving":     {"mystery", "thriller", "sci-fi"},
	"adventure_seeker":   {"adventure", "fantasy", "action"},
	"history_researcher": {"drama", "biography", "historical"},
	"skeptic":            {"thriller", "mystery", "horror"},
	"creative_artist":    {"drama", "indie", "romance"},
	"social_butterfly":   {"comedy", "romance", "drama"},
	"tech_enthusiast":    {"sci-fi", "thriller", "action"},
	"nature_lover":       {"adventure", "drama", "documentary"},
	"bookworm":           {"drama", "biography", "historical"},
	"fitness_freak":      {"action", "sports", "adventure"},
	"foodie":             {"comedy", "drama", "documentary"},
	"traveler":           {"adventure", "drama", "documentary"},
	"gamer":              {"sci-fi", "action", "fantasy"},
	"meditation":         {"drama", "indie", "documentary"},
	"karaoke":            {"comedy", "musical", "romance"},
	"board_games":        {"mystery", "thriller", "comedy"},
	"movie_theater":      {"drama", "action", "comedy"},
	"netflix":            {"romance", "drama", "comedy"},
}
