package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

func TestNormaliser_Metadata(t *testing.T) {
	n := New()

	assert.Equal(t, 5, n.Priority())
	assert.Contains(t, n.SupportedMIMETypes(), "text/plain")
	assert.Contains(t, n.SupportedMIMETypes(), "application/json")
}

func TestNormaliser_Normalise(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{"plain text", []byte("hello world"), "hello world"},
		{"empty", []byte{}, ""},
		{"byte order mark", []byte("\xEF\xBB\xBFhello"), "hello"},
		{"cyrillic", []byte("привет мир"), "привет мир"},
		{"keeps whitespace", []byte("  line one\n\nline two  "), "  line one\n\nline two  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Normalise(context.Background(), &domain.RawDocument{
				URI:      "/tmp/file.txt",
				MIMEType: "text/plain",
				Content:  tt.content,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormaliser_NilDocument(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
