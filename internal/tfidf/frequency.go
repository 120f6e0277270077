package tfidf

import (
	"sort"
	"strings"
)

// corpusSeparator joins documents into one pseudo-document. It is never
// part of a token, so no word spans two documents.
const corpusSeparator = "\n"

// TermFrequencies returns the sorted vocabulary of text and the raw
// occurrence count of each term, aligned by index.
// Counts are not normalised by document length.
func (e *Engine) TermFrequencies(text string) (vocabulary []string, counts []int) {
	return termCounts(e.tokenizer.Tokenize(text))
}

// CorpusTermFrequencies returns combined counts over every text in
// texts, computed on their concatenation.
func (e *Engine) CorpusTermFrequencies(texts []string) (vocabulary []string, counts []int) {
	return e.TermFrequencies(strings.Join(texts, corpusSeparator))
}

// Summarize returns the number of tokens in text and the size of its
// vocabulary.
func (e *Engine) Summarize(text string) (wordCount, uniqueWordCount int) {
	tokens := e.tokenizer.Tokenize(text)
	return len(tokens), len(countTokens(tokens))
}

// termCounts builds the canonical vocabulary and aligned counts.
func termCounts(tokens []string) ([]string, []int) {
	index := countTokens(tokens)
	vocabulary := sortedTerms(index)
	counts := make([]int, len(vocabulary))
	for i, term := range vocabulary {
		counts[i] = index[term]
	}
	return vocabulary, counts
}

// countTokens counts occurrences of each token.
func countTokens(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

// sortedTerms returns the keys of m in lexicographic order.
func sortedTerms[V any](m map[string]V) []string {
	terms := make([]string, 0, len(m))
	for term := range m {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
