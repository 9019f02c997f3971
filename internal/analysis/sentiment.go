package analysis

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// SentimentScore mirrors the VADER polarity output.
type SentimentScore struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Sentiment computes VADER polarity scores for the text.
func Sentiment(text string) SentimentScore {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)
	return SentimentScore{
		Negative: score.Negative,
		Neutral:  score.Neutral,
		Positive: score.Positive,
		Compound: score.Compound,
	}
}
