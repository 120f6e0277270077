package domain

import "time"

// Document represents a stored text document.
// The text itself is owned by the persistence layer; statistics code
// receives it by value through a TextSource.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title.
	Title string

	// URI is the location of the backing file, if any.
	URI string

	// MIMEType is the content type used to pick a normaliser.
	MIMEType string

	// Content is the inline text content.
	// Empty when the text is only available from the file at URI.
	Content string

	// ContentLength is the length of the text in characters.
	ContentLength int

	// Stats is the cached statistics vector, nil until first computed.
	Stats *DocumentStats

	// CreatedAt is when the document was added.
	CreatedAt time.Time

	// UpdatedAt is when the document was last modified.
	UpdatedAt time.Time
}

// HasInlineContent reports whether the text is stored with the document.
func (d *Document) HasInlineContent() bool {
	return d.Content != ""
}

// DocumentStats is the cached statistics vector of a document.
type DocumentStats struct {
	// Vector is the ranked word statistics computed for the document.
	Vector []WordStatistic `json:"tf_vector"`

	// CollectionID is the collection whose corpus produced the IDF values.
	CollectionID string `json:"collection_id"`

	// WordCount is the number of tokens surviving the tokenizer.
	WordCount int `json:"word_count"`

	// UniqueWordCount is the size of the document's vocabulary.
	UniqueWordCount int `json:"unique_word_count"`

	// ComputedAt is when the vector was computed.
	ComputedAt time.Time `json:"stats_updated_at"`
}

// ComputedFor reports whether the vector was computed against collectionID.
// A document belongs to many collections but has a single cache entry, so
// an entry computed for another corpus is a miss.
func (s *DocumentStats) ComputedFor(collectionID string) bool {
	return s != nil && s.CollectionID == collectionID
}

// IsEmpty reports whether no vector has been computed.
func (s *DocumentStats) IsEmpty() bool {
	return s == nil || (s.Vector == nil && s.ComputedAt.IsZero())
}

// Consistent reports whether the counts agree with the vector.
// The vector may be truncated to the top-N words, so it can be shorter
// than the vocabulary but never longer.
func (s *DocumentStats) Consistent() bool {
	if s.IsEmpty() {
		return s == nil || (s.WordCount == 0 && s.UniqueWordCount == 0)
	}
	if s.UniqueWordCount < len(s.Vector) {
		return false
	}
	return s.WordCount >= s.UniqueWordCount
}
