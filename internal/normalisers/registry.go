package normalisers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches raw documents to the best matching normaliser.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser to the registry.
func (r *Registry) Register(normaliser driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, normaliser)
	// Stable sort keeps registration order among equal priorities.
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// Normalise extracts text using the highest-priority normaliser that
// supports the document's MIME type.
// Returns domain.ErrUnsupportedType when no normaliser matches.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	n := r.find(raw.MIMEType)
	if n == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}
	return n.Normalise(ctx, raw)
}

// SupportedMIMETypes returns all MIME types that can be normalised.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var types []string
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				types = append(types, t)
			}
		}
	}
	sort.Strings(types)
	return types
}

func (r *Registry) find(mimeType string) driven.Normaliser {
	mimeType = baseMIMEType(mimeType)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if t == mimeType {
				return n
			}
		}
	}
	return nil
}

// baseMIMEType drops parameters such as "; charset=utf-8".
func baseMIMEType(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
