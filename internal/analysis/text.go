package analysis

import (
	"errors"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// TaggedToken is a word with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Entity is a named entity recognized in the text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// ConcordanceLine is one keyword-in-context match.
type ConcordanceLine struct {
	Left  string `json:"left"`
	Match string `json:"match"`
	Right string `json:"right"`
}

const (
	concordanceLines = 5
	concordanceWidth = 40
)

// Tokenize splits text into word tokens.
func Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}
	tokens := doc.Tokens()
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	return words, nil
}

// Sentences splits text into sentences.
func Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return nil, err
	}
	sents := doc.Sentences()
	out := make([]string, len(sents))
	for i, s := range sents {
		out[i] = s.Text
	}
	return out, nil
}

// WordFrequency counts token occurrences.
func WordFrequency(text string) (map[string]int, error) {
	words, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}
	return freq, nil
}

// POSTags tags every token with its part of speech.
func POSTags(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	tokens := doc.Tokens()
	tagged := make([]TaggedToken, len(tokens))
	for i, tok := range tokens {
		tagged[i] = TaggedToken{Text: tok.Text, Tag: tok.Tag}
	}
	return tagged, nil
}

// NamedEntities extracts named entities with their labels.
func NamedEntities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	ents := doc.Entities()
	out := make([]Entity, len(ents))
	for i, e := range ents {
		out[i] = Entity{Text: e.Text, Label: e.Label}
	}
	return out, nil
}

// NGrams returns the contiguous n-token windows of the text.
func NGrams(text string, n int) ([][]string, error) {
	if n < 1 {
		return nil, errors.New("analysis: ngram size must be positive")
	}
	words, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(words) < n {
		return [][]string{}, nil
	}
	grams := make([][]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		gram := make([]string, n)
		copy(gram, words[i:i+n])
		grams = append(grams, gram)
	}
	return grams, nil
}

// Concordance returns up to five keyword-in-context lines for word, matched
// case-insensitively against tokens.
func Concordance(text, word string) ([]ConcordanceLine, error) {
	words, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	target := strings.ToLower(word)
	lines := []ConcordanceLine{}
	for i, w := range words {
		if strings.ToLower(w) != target {
			continue
		}
		lines = append(lines, ConcordanceLine{
			Left:  clipLeft(strings.Join(words[maxInt(0, i-concordanceWidth):i], " "), concordanceWidth),
			Match: w,
			Right: clipRight(strings.Join(words[i+1:minInt(len(words), i+1+concordanceWidth)], " "), concordanceWidth),
		})
		if len(lines) == concordanceLines {
			break
		}
	}
	return lines, nil
}

func clipLeft(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[len(s)-width:]
}

func clipRight(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
