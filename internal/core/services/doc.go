// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Statistics are computed by internal/tfidf; services own loading
// collection texts, the result cache and its invalidation.
package services
