package mcp

import (
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Statistics computes word statistics.
	Statistics driving.StatisticsService

	// Collection lists collections. Optional.
	Collection driving.CollectionService

	// Document serves document text. Optional.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Statistics == nil {
		return ErrMissingStatisticsService
	}
	return nil
}
