// Package sentiment scores text polarity with a small word-list analyzer.
//
// The dashboard feeds it a fixed templated headline per ticker, so the score
// is effectively constant. This preserves the behavior of the placeholder
// "sentiment" feature; a real news feed would plug in at Service.Score.
package sentiment

import (
	"strings"
	"unicode"
)

// Analyzer scores text polarity in [-1, 1] from positive/negative word counts.
type Analyzer struct {
	positiveWords map[string]bool
	negativeWords map[string]bool
}

// NewAnalyzer creates an analyzer with the built-in financial word lists.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positiveWords: loadPositiveWords(),
		negativeWords: loadNegativeWords(),
	}
}

// Polarity returns (positive - negative) / (positive + negative) over the
// tokenized text. 0 for text with no sentiment-bearing words.
func (a *Analyzer) Polarity(text string) float64 {
	words := tokenize(strings.ToLower(text))

	var positive, negative int
	for _, word := range words {
		if a.positiveWords[word] {
			positive++
		}
		if a.negativeWords[word] {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return 0
	}
	return float64(positive-negative) / float64(total)
}

// tokenize splits text into lowercase word tokens, stripping punctuation.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func loadPositiveWords() map[string]bool {
	return wordSet(
		"positive", "growth", "growing", "grow", "strong", "strength",
		"gain", "gains", "improve", "improved", "improvement", "upside",
		"outperform", "beat", "beats", "record", "robust", "momentum",
		"bullish", "optimistic", "upgrade", "upgraded", "expand",
		"expansion", "profit", "profitable", "surge", "rally", "recover",
		"recovery", "success", "successful", "exceed", "exceeded",
	)
}

func loadNegativeWords() map[string]bool {
	return wordSet(
		"negative", "decline", "declining", "weak", "weakness", "loss",
		"losses", "miss", "missed", "downside", "underperform", "bearish",
		"pessimistic", "downgrade", "downgraded", "contract", "contraction",
		"slump", "fall", "falling", "drop", "plunge", "risk", "risks",
		"concern", "concerns", "warning", "lawsuit", "default", "bankruptcy",
	)
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
