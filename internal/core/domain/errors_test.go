package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrDocumentNotInCorpus", ErrDocumentNotInCorpus},
		{"ErrEmptyCorpus", ErrEmptyCorpus},
		{"ErrDecode", ErrDecode},
		{"ErrEmptyContent", ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

func TestStatisticsErrors_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrDocumentNotInCorpus, ErrEmptyCorpus))
	assert.False(t, errors.Is(ErrEmptyCorpus, ErrDocumentNotInCorpus))
	assert.False(t, errors.Is(ErrDecode, ErrInvalidInput))
}

func TestStatisticsErrors_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("document statistics for doc-1: %w", ErrDocumentNotInCorpus)
	assert.True(t, errors.Is(wrapped, ErrDocumentNotInCorpus))

	wrapped = fmt.Errorf("reading notes.txt: %w", ErrDecode)
	assert.True(t, errors.Is(wrapped, ErrDecode))
	assert.Contains(t, wrapped.Error(), "cannot be decoded")
}
