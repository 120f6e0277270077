package tfidf

import (
	"sort"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// Engine ranks words of a document or collection by TF, IDF and TF-IDF.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	cfg       Config
	tokenizer *Tokenizer
}

// NewEngine creates an engine for cfg.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:       cfg,
		tokenizer: NewTokenizer(cfg),
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Tokenizer returns the tokenizer shared by every stage of the engine.
func (e *Engine) Tokenizer() *Tokenizer {
	return e.tokenizer
}

// DocumentStatistics ranks the words of documentText against the corpus
// formed by collectionTexts.
//
// TF is the raw count of the word in documentText and IDF is computed over
// collectionTexts. Results are ordered by descending IDF, ties broken by
// word, and truncated to Config.TopN.
//
// Returns domain.ErrEmptyCorpus when collectionTexts is empty and
// domain.ErrDocumentNotInCorpus when documentText is not byte-equal to one
// of collectionTexts.
func (e *Engine) DocumentStatistics(documentText string, collectionTexts []string) ([]domain.WordStatistic, error) {
	if len(collectionTexts) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	if !containsText(collectionTexts, documentText) {
		return nil, domain.ErrDocumentNotInCorpus
	}

	vocabulary, counts := e.TermFrequencies(documentText)
	idf := e.idfIndex(collectionTexts)

	words := buildStatistics(vocabulary, counts, idf)
	sort.Slice(words, func(i, j int) bool {
		if words[i].IDF != words[j].IDF {
			return words[i].IDF > words[j].IDF
		}
		return words[i].Word < words[j].Word
	})
	return truncate(words, e.cfg.TopN), nil
}

// CollectionStatistics ranks the words of a whole collection.
//
// TF is the combined raw count over the concatenation of collectionTexts
// and IDF is computed over the individual texts. Results are ordered by
// descending TF-IDF, ties broken by word, and truncated to
// Config.CollectionTopN.
//
// Returns domain.ErrEmptyCorpus when collectionTexts is empty.
func (e *Engine) CollectionStatistics(collectionTexts []string) ([]domain.WordStatistic, error) {
	if len(collectionTexts) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	vocabulary, counts := e.CorpusTermFrequencies(collectionTexts)
	idf := e.idfIndex(collectionTexts)

	words := buildStatistics(vocabulary, counts, idf)
	sort.Slice(words, func(i, j int) bool {
		if words[i].TFIDF != words[j].TFIDF {
			return words[i].TFIDF > words[j].TFIDF
		}
		return words[i].Word < words[j].Word
	})
	return truncate(words, e.cfg.CollectionTopN), nil
}

// buildStatistics emits one WordStatistic per term with a positive count.
func buildStatistics(vocabulary []string, counts []int, idf map[string]float64) []domain.WordStatistic {
	words := make([]domain.WordStatistic, 0, len(vocabulary))
	for i, term := range vocabulary {
		if counts[i] <= 0 {
			continue
		}
		words = append(words, domain.NewWordStatistic(term, float64(counts[i]), idf[term]))
	}
	return words
}

// truncate keeps the first n words. n <= 0 keeps everything.
func truncate(words []domain.WordStatistic, n int) []domain.WordStatistic {
	if n > 0 && len(words) > n {
		return words[:n]
	}
	return words
}

func containsText(texts []string, text string) bool {
	for _, t := range texts {
		if t == text {
			return true
		}
	}
	return false
}
