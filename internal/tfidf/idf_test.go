package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseDocumentFrequencies_EmptyCorpus(t *testing.T) {
	e := NewEngine(DefaultConfig())

	vocab, idf := e.InverseDocumentFrequencies(nil)

	assert.Empty(t, vocab)
	assert.Empty(t, idf)
}

func TestInverseDocumentFrequencies_IdenticalDocuments(t *testing.T) {
	e := NewEngine(DefaultConfig())

	for _, n := range []int{1, 2, 5, 20} {
		corpus := make([]string, n)
		for i := range corpus {
			corpus[i] = "shared words everywhere"
		}

		vocab, idf := e.InverseDocumentFrequencies(corpus)

		require.Len(t, vocab, 3)
		for i := range vocab {
			assert.Zero(t, idf[i], "n=%d term=%s", n, vocab[i])
		}
	}
}

func TestInverseDocumentFrequencies_TermInOneDocument(t *testing.T) {
	e := NewEngine(DefaultConfig())

	for _, n := range []int{2, 3, 7} {
		corpus := make([]string, n)
		for i := range corpus {
			corpus[i] = "common"
		}
		corpus[0] = "common unique"

		vocab, idf := e.InverseDocumentFrequencies(corpus)

		require.Equal(t, []string{"common", "unique"}, vocab)
		assert.Zero(t, idf[0])
		assert.InDelta(t, math.Log(float64(n)), idf[1], 1e-12)
	}
}

func TestInverseDocumentFrequencies_RepeatsCountOncePerDocument(t *testing.T) {
	e := NewEngine(DefaultConfig())

	vocab, idf := e.InverseDocumentFrequencies([]string{"cats cats cats", "dogs", "birds"})

	require.Equal(t, []string{"birds", "cats", "dogs"}, vocab)
	for i := range vocab {
		assert.InDelta(t, math.Log(3), idf[i], 1e-12)
	}
}

func TestInverseDocumentFrequencies_EmptyDocumentsCountTowardN(t *testing.T) {
	e := NewEngine(DefaultConfig())

	vocab, idf := e.InverseDocumentFrequencies([]string{"cats", "", ""})

	require.Equal(t, []string{"cats"}, vocab)
	assert.InDelta(t, math.Log(3), idf[0], 1e-12)
}

func TestIdfScore_ZeroDocumentFrequency(t *testing.T) {
	assert.Zero(t, idfScore(5, 0))
}
