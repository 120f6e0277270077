package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

func normalise(t *testing.T, content string) string {
	t.Helper()
	got, err := New().Normalise(context.Background(), &domain.RawDocument{
		URI:      "/site/index.html",
		MIMEType: "text/html",
		Content:  []byte(content),
	})
	require.NoError(t, err)
	return got
}

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.Implements(t, (*driven.Normaliser)(nil), normaliser)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	assert.Contains(t, mimeTypes, "text/html")
	assert.Contains(t, mimeTypes, "application/xhtml+xml")
	assert.Len(t, mimeTypes, 2)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestNormalise_ExtractsVisibleText(t *testing.T) {
	content := `<!DOCTYPE html>
<html>
<head><title>Ignored title</title><style>body { color: red; }</style></head>
<body>
  <h1>Heading</h1>
  <p>First   paragraph with <b>bold</b> text.</p>
  <script>var hidden = "secret";</script>
  <ul><li>one</li><li>two</li></ul>
  <!-- a comment -->
</body>
</html>`

	got := normalise(t, content)

	assert.Equal(t, "Heading\nFirst paragraph with bold text.\none\ntwo", got)
	assert.NotContains(t, got, "secret")
	assert.NotContains(t, got, "color")
	assert.NotContains(t, got, "Ignored")
	assert.NotContains(t, got, "comment")
}

func TestNormalise_DecodesEntities(t *testing.T) {
	assert.Equal(t, "Fish & Chips <tasty>", normalise(t, "<p>Fish &amp; Chips &lt;tasty&gt;</p>"))
}

func TestNormalise_InlineElementsDoNotSplitWords(t *testing.T) {
	assert.Equal(t, "important", normalise(t, "<p>im<em>port</em>ant</p>"))
}

func TestNormalise_Fragment(t *testing.T) {
	assert.Equal(t, "just text", normalise(t, "just text"))
}

func TestNormalise_Empty(t *testing.T) {
	assert.Empty(t, normalise(t, ""))
}

func TestNormalise_NilDocument(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
