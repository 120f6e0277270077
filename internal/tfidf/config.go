package tfidf

import "github.com/custodia-labs/termstat/internal/core/domain"

// Config is the immutable tokenizer and ranking configuration shared by
// every stage, so TF and IDF vocabularies always agree.
type Config struct {
	// MinTokenLength is the minimum token length in characters.
	MinTokenLength int

	// StopWords are dropped after case folding.
	StopWords []string

	// TopN truncates document rankings. Zero means unbounded.
	TopN int

	// CollectionTopN truncates collection rankings. Zero means unbounded.
	CollectionTopN int
}

// DefaultConfig returns the configuration used on collection paths.
func DefaultConfig() Config {
	return Config{
		MinTokenLength: domain.DefaultMinTokenLength,
		TopN:           domain.DefaultTopN,
	}
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.StatisticsSettings) Config {
	stopWords := make([]string, len(s.StopWords))
	copy(stopWords, s.StopWords)
	return Config{
		MinTokenLength: s.MinTokenLength,
		StopWords:      stopWords,
		TopN:           s.TopN,
		CollectionTopN: s.CollectionTopN,
	}
}
