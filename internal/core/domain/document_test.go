package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocument_HasInlineContent(t *testing.T) {
	doc := Document{ID: "doc-1"}
	assert.False(t, doc.HasInlineContent())

	doc.Content = "inline text"
	assert.True(t, doc.HasInlineContent())
}

func TestDocumentStats_IsEmpty(t *testing.T) {
	var nilStats *DocumentStats
	assert.True(t, nilStats.IsEmpty())
	assert.True(t, (&DocumentStats{}).IsEmpty())

	stats := &DocumentStats{ComputedAt: time.Now()}
	assert.False(t, stats.IsEmpty())
}

func TestDocumentStats_Consistent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		stats    *DocumentStats
		expected bool
	}{
		{
			name:     "nil stats are consistent",
			stats:    nil,
			expected: true,
		},
		{
			name:     "unset stats with zero counts",
			stats:    &DocumentStats{},
			expected: true,
		},
		{
			name:     "unset stats with stray counts",
			stats:    &DocumentStats{WordCount: 3},
			expected: false,
		},
		{
			name: "full vector",
			stats: &DocumentStats{
				Vector:          []WordStatistic{{Word: "cats"}, {Word: "dogs"}},
				WordCount:       5,
				UniqueWordCount: 2,
				ComputedAt:      now,
			},
			expected: true,
		},
		{
			name: "truncated vector",
			stats: &DocumentStats{
				Vector:          []WordStatistic{{Word: "cats"}},
				WordCount:       5,
				UniqueWordCount: 2,
				ComputedAt:      now,
			},
			expected: true,
		},
		{
			name: "vector longer than vocabulary",
			stats: &DocumentStats{
				Vector:          []WordStatistic{{Word: "cats"}, {Word: "dogs"}},
				WordCount:       1,
				UniqueWordCount: 1,
				ComputedAt:      now,
			},
			expected: false,
		},
		{
			name: "empty document computed",
			stats: &DocumentStats{
				Vector:     []WordStatistic{},
				ComputedAt: now,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stats.Consistent())
		})
	}
}

func TestCollection_HasDocument(t *testing.T) {
	c := Collection{ID: "col-1", DocumentIDs: []string{"doc-1", "doc-2"}}

	assert.True(t, c.HasDocument("doc-1"))
	assert.True(t, c.HasDocument("doc-2"))
	assert.False(t, c.HasDocument("doc-3"))
	assert.Equal(t, 2, c.Size())
}

func TestNewWordStatistic(t *testing.T) {
	ws := NewWordStatistic("cats", 3, 0.5)

	assert.Equal(t, "cats", ws.Word)
	assert.Equal(t, 3.0, ws.TF)
	assert.Equal(t, 0.5, ws.IDF)
	assert.Equal(t, 1.5, ws.TFIDF)
}

func TestDocumentStats_ComputedFor(t *testing.T) {
	var nilStats *DocumentStats
	assert.False(t, nilStats.ComputedFor("col-1"))

	stats := &DocumentStats{CollectionID: "col-1"}
	assert.True(t, stats.ComputedFor("col-1"))
	assert.False(t, stats.ComputedFor("col-2"))
}
