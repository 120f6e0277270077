package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/normalisers/html"
	"github.com/custodia-labs/termstat/internal/normalisers/markdown"
	"github.com/custodia-labs/termstat/internal/normalisers/plaintext"
)

func TestRegistry_SelectsHighestPriority(t *testing.T) {
	r := NewRegistry(plaintext.New(), html.New(), markdown.New())
	ctx := context.Background()

	got, err := r.Normalise(ctx, &domain.RawDocument{
		MIMEType: "text/html",
		Content:  []byte("<p>hello</p><script>nope</script>"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = r.Normalise(ctx, &domain.RawDocument{
		MIMEType: "text/markdown",
		Content:  []byte("# Title"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Title", got)
}

func TestRegistry_FallsBackToPlaintext(t *testing.T) {
	r := NewRegistry(plaintext.New(), html.New())

	got, err := r.Normalise(context.Background(), &domain.RawDocument{
		MIMEType: "text/markdown",
		Content:  []byte("# Title"),
	})

	require.NoError(t, err)
	assert.Equal(t, "# Title", got)
}

func TestRegistry_IgnoresMIMEParameters(t *testing.T) {
	r := NewRegistry(html.New())

	got, err := r.Normalise(context.Background(), &domain.RawDocument{
		MIMEType: "Text/HTML; charset=utf-8",
		Content:  []byte("<b>bold</b>"),
	})

	require.NoError(t, err)
	assert.Equal(t, "bold", got)
}

func TestRegistry_Unsupported(t *testing.T) {
	r := NewRegistry(plaintext.New())

	_, err := r.Normalise(context.Background(), &domain.RawDocument{MIMEType: "application/pdf"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = r.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_SupportedMIMETypes(t *testing.T) {
	r := NewRegistry(plaintext.New(), html.New(), markdown.New())

	types := r.SupportedMIMETypes()

	assert.Contains(t, types, "text/plain")
	assert.Contains(t, types, "application/xhtml+xml")
	assert.Contains(t, types, "text/x-markdown")
	assert.IsIncreasing(t, types)
}
