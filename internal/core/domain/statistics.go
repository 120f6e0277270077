package domain

import "time"

// WordStatistic is one ranked word with its term statistics.
type WordStatistic struct {
	// Word is the token.
	Word string `json:"word"`

	// TF is the raw occurrence count of the word.
	TF float64 `json:"tf"`

	// IDF is ln(N/df) over the collection.
	IDF float64 `json:"idf"`

	// TFIDF is TF * IDF.
	TFIDF float64 `json:"tfidf"`
}

// NewWordStatistic builds a WordStatistic with TFIDF derived from tf and idf.
func NewWordStatistic(word string, tf, idf float64) WordStatistic {
	return WordStatistic{
		Word:  word,
		TF:    tf,
		IDF:   idf,
		TFIDF: tf * idf,
	}
}

// DocumentStatistics is the response of a document-in-collection request.
type DocumentStatistics struct {
	DocumentID      string          `json:"document"`
	CollectionID    string          `json:"collection"`
	Words           []WordStatistic `json:"tf_idf"`
	WordCount       int             `json:"word_count"`
	UniqueWordCount int             `json:"unique_word_count"`
	Cached          bool            `json:"cached"`
	ComputedAt      time.Time       `json:"computed_at"`
}

// CollectionStatistics is the response of a whole-collection request.
type CollectionStatistics struct {
	CollectionID  string          `json:"collection"`
	DocumentCount int             `json:"document_count"`
	Words         []WordStatistic `json:"tf_idf"`
	ComputedAt    time.Time       `json:"computed_at"`
}
