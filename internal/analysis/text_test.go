package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslex/campuslex/internal/analysis"
)

const sample = "the cat sat on the mat and the cat slept"

func TestTokenize(t *testing.T) {
	words, err := analysis.Tokenize(sample)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "cat", "sat", "on", "the", "mat", "and", "the", "cat", "slept"}, words)
}

func TestWordFrequency(t *testing.T) {
	freq, err := analysis.WordFrequency(sample)
	require.NoError(t, err)
	assert.Equal(t, 3, freq["the"])
	assert.Equal(t, 2, freq["cat"])
	assert.Equal(t, 1, freq["mat"])
	assert.Zero(t, freq["dog"])
}

func TestPOSTags(t *testing.T) {
	tagged, err := analysis.POSTags("The quick brown fox jumps over the lazy dog.")
	require.NoError(t, err)
	require.NotEmpty(t, tagged)
	for _, tok := range tagged {
		assert.NotEmpty(t, tok.Text)
		assert.NotEmpty(t, tok.Tag)
	}
}

func TestNGrams(t *testing.T) {
	grams, err := analysis.NGrams("a b c d", 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"b", "c"}, {"c", "d"}}, grams)
}

func TestNGramsTrigram(t *testing.T) {
	grams, err := analysis.NGrams("a b c d", 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"b", "c", "d"}}, grams)
}

func TestNGramsShortText(t *testing.T) {
	grams, err := analysis.NGrams("a b", 5)
	require.NoError(t, err)
	assert.Empty(t, grams)
}

func TestNGramsRejectsNonPositive(t *testing.T) {
	_, err := analysis.NGrams(sample, 0)
	assert.Error(t, err)
}

func TestConcordance(t *testing.T) {
	lines, err := analysis.Concordance(sample, "cat")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "cat", lines[0].Match)
	assert.Equal(t, "the", lines[0].Left)
	assert.Contains(t, lines[0].Right, "sat")
}

func TestConcordanceCaseInsensitive(t *testing.T) {
	lines, err := analysis.Concordance("The Cat sat", "cat")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Cat", lines[0].Match)
}

func TestConcordanceCapsLines(t *testing.T) {
	lines, err := analysis.Concordance("go go go go go go go go", "go")
	require.NoError(t, err)
	assert.Len(t, lines, 5)
}

func TestConcordanceNoMatch(t *testing.T) {
	lines, err := analysis.Concordance(sample, "dog")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSentimentPolarity(t *testing.T) {
	positive := analysis.Sentiment("This course is wonderful, I love it and it makes me happy.")
	assert.Greater(t, positive.Compound, 0.0)

	negative := analysis.Sentiment("This is terrible, awful and I hate everything about it.")
	assert.Less(t, negative.Compound, 0.0)
}
