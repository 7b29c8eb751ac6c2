package quiz

// profileEntry is one named personality profile with the genres that
// characterize it.
type profileEntry struct {
	Name        string
	Genres      []string
	Description string
}

// profiles is ordered: when two profiles overlap the dominant genres
// equally, the one declared first wins.
var profiles = []profileEntry{
	{
		Name:        "The Intrepid Explorer",
		Genres:      []string{"adventure", "action", "fantasy"},
		Description: "You crave excitement and discovery. Your adventurous spirit draws you to epic journeys, thrilling action sequences, and fantastical worlds that push the boundaries of imagination.",
	},
	{
		Name:        "The Thoughtful Analyst",
		Genres:      []string{"mystery", "thriller", "sci-fi"},
		Description: "Your sharp mind loves to solve puzzles and explore complex narratives. You appreciate films that challenge your intellect and keep you guessing until the very end.",
	},
	{
		Name:        "The Romantic Dreamer",
		Genres:      []string{"romance", "drama", "indie"},
		Description: "You have a deep appreciation for human connection and emotional storytelling. Your heart is drawn to films that explore love, relationships, and the beautiful complexity of human nature.",
	},
	{
		Name:        "The Social Butterfly",
		Genres:      []string{"comedy", "romance", "drama"},
		Description: "You love to laugh and connect with others. Your vibrant personality enjoys films that bring people together, whether through humor, romance, or compelling character dynamics.",
	},
	{
		Name:        "The Creative Artist",
		Genres:      []string{"drama", "indie", "biography"},
		Description: "You have an artistic soul that appreciates beautiful storytelling and authentic performances. You are drawn to films that showcase human creativity and the power of artistic expression.",
	},
	{
		Name:        "The Tech Enthusiast",
		Genres:      []string{"sci-fi", "thriller", "action"},
		Description: "You are fascinated by innovation and the future. Your forward-thinking nature loves films that explore technology, artificial intelligence, and the possibilities of tomorrow.",
	},
}

// defaultProfileName is used when no profile overlaps the dominant genres.
const defaultProfileName = "The Thoughtful Analyst"
