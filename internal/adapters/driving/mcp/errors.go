// Package mcp provides an MCP (Model Context Protocol) server adapter for termstat.
// It exposes word statistics of documents and collections to AI assistants.
package mcp

import "errors"

// ErrMissingStatisticsService is returned when the statistics service is not provided.
var ErrMissingStatisticsService = errors.New("mcp: statistics service is required")
