package tfidf

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// wordPattern matches maximal runs of letters, digits and underscore.
// Combining marks are kept only after a word character, so decomposed
// accents stay inside their word and stray marks never form one.
var wordPattern = regexp.MustCompile(`(?:[\p{L}\p{Nd}_]\p{M}*)+`)

// Tokenizer turns raw text into normalised word tokens.
// A Tokenizer is safe for concurrent use.
type Tokenizer struct {
	minLength int
	stopWords map[string]struct{}
}

// NewTokenizer creates a tokenizer for cfg.
// A MinTokenLength below 1 is treated as 1.
func NewTokenizer(cfg Config) *Tokenizer {
	minLength := cfg.MinTokenLength
	if minLength < 1 {
		minLength = 1
	}

	stopWords := make(map[string]struct{}, len(cfg.StopWords))
	for _, w := range cfg.StopWords {
		stopWords[fold(w)] = struct{}{}
	}

	return &Tokenizer{
		minLength: minLength,
		stopWords: stopWords,
	}
}

// MinLength returns the effective minimum token length.
func (t *Tokenizer) MinLength() int {
	return t.minLength
}

// Tokenize returns the tokens of text in order of appearance.
// Empty or punctuation-only input yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	matches := wordPattern.FindAllString(fold(text), -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if utf8.RuneCountInString(m) < t.minLength {
			continue
		}
		if _, stop := t.stopWords[m]; stop {
			continue
		}
		tokens = append(tokens, m)
	}
	return tokens
}

// fold composes text to NFC and lowercases it.
func fold(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}
