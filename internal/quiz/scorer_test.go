package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEmptyAnswers(t *testing.T) {
	_, err := Score(map[string]string{})
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

func TestScoreQuietNightPuzzleSolving(t *testing.T) {
	profile, err := Score(map[string]string{
		"q1": "quiet_night",
		"q2": "puzzle_solving",
	})
	require.NoError(t, err)

	// All six tallied genres count 1, so first-seen order decides:
	// q1 expands first, giving drama, romance, indie.
	assert.Equal(t, []string{"drama", "romance", "indie"}, profile.Genres)
	assert.Equal(t, "The Romantic Dreamer", profile.Name)
	assert.NotEmpty(t, profile.Description)
}

func TestScoreDominantGenreRanking(t *testing.T) {
	// drama appears in all three expansions, comedy in two.
	profile, err := Score(map[string]string{
		"q1": "movie_theater", // drama, action, comedy
		"q2": "foodie",        // comedy, drama, documentary
		"q3": "meditation",    // drama, indie, documentary
	})
	require.NoError(t, err)

	require.Len(t, profile.Genres, 3)
	assert.Equal(t, "drama", profile.Genres[0])
	// comedy and documentary both count 2; comedy was seen first.
	assert.Equal(t, []string{"drama", "comedy", "documentary"}, profile.Genres)
}

func TestScoreCapsDominantGenresAtThree(t *testing.T) {
	profile, err := Score(map[string]string{
		"q1": "quiet_night",
		"q2": "wild_party",
		"q3": "gamer",
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(profile.Genres), 3)
}

func TestScoreDeterministic(t *testing.T) {
	answers := map[string]string{
		"q1": "skeptic",
		"q2": "tech_enthusiast",
		"q3": "board_games",
		"q4": "netflix",
	}

	first, err := Score(answers)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Score(answers)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScoreUnrecognizedAnswersFallBackToDefault(t *testing.T) {
	profile, err := Score(map[string]string{"q1": "no_such_option"})
	require.NoError(t, err)
	assert.Equal(t, defaultProfileName, profile.Name)
	assert.Empty(t, profile.Genres)
}

func TestScoreProfileTieBreaksByDeclarationOrder(t *testing.T) {
	// adventure_seeker expands to adventure, fantasy, action: a full match
	// for The Intrepid Explorer and nothing scores higher.
	profile, err := Score(map[string]string{"q1": "adventure_seeker"})
	require.NoError(t, err)
	assert.Equal(t, "The Intrepid Explorer", profile.Name)
}
