package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

// DocumentStatisticsInput is the input schema for the document_statistics tool.
type DocumentStatisticsInput struct {
	Collection string `json:"collection" jsonschema:"collection ID or name the document is evaluated against"`
	Document   string `json:"document" jsonschema:"ID of a document in the collection"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of words to return (default all computed)"`
}

// DocumentStatisticsOutput is the output schema for the document_statistics tool.
type DocumentStatisticsOutput struct {
	DocumentID      string                 `json:"document_id"`
	CollectionID    string                 `json:"collection_id"`
	Words           []domain.WordStatistic `json:"words"`
	WordCount       int                    `json:"word_count"`
	UniqueWordCount int                    `json:"unique_word_count"`
	Cached          bool                   `json:"cached"`
}

// CollectionStatisticsInput is the input schema for the collection_statistics tool.
type CollectionStatisticsInput struct {
	Collection string `json:"collection" jsonschema:"collection ID or name"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of words to return (0 returns all)"`
}

// CollectionStatisticsOutput is the output schema for the collection_statistics tool.
type CollectionStatisticsOutput struct {
	CollectionID  string                 `json:"collection_id"`
	DocumentCount int                    `json:"document_count"`
	Words         []domain.WordStatistic `json:"words"`
}

// ListCollectionsInput is the input schema for the list_collections tool.
type ListCollectionsInput struct{}

// ListCollectionsOutput is the output schema for the list_collections tool.
type ListCollectionsOutput struct {
	Collections []CollectionOutput `json:"collections"`
	Count       int                `json:"count"`
}

// CollectionOutput describes a single collection.
type CollectionOutput struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	DocumentCount int    `json:"document_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "document_statistics",
		Description: "Rank the words of a document by IDF within a collection, with TF and TF-IDF",
	}, s.handleDocumentStatistics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "collection_statistics",
		Description: "Rank the words of a whole collection by TF-IDF",
	}, s.handleCollectionStatistics)

	if s.ports.Collection != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_collections",
			Description: "List collections and their sizes",
		}, s.handleListCollections)
	}
}

// handleDocumentStatistics handles the document_statistics tool invocation.
func (s *Server) handleDocumentStatistics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentStatisticsInput,
) (*mcp.CallToolResult, DocumentStatisticsOutput, error) {
	if input.Collection == "" || input.Document == "" {
		return nil, DocumentStatisticsOutput{}, errors.New("collection and document are required")
	}

	stats, err := s.ports.Statistics.DocumentStatistics(ctx, input.Collection, input.Document)
	if err != nil {
		return nil, DocumentStatisticsOutput{}, toolError(err)
	}

	return nil, DocumentStatisticsOutput{
		DocumentID:      stats.DocumentID,
		CollectionID:    stats.CollectionID,
		Words:           limitWords(stats.Words, input.Limit),
		WordCount:       stats.WordCount,
		UniqueWordCount: stats.UniqueWordCount,
		Cached:          stats.Cached,
	}, nil
}

// handleCollectionStatistics handles the collection_statistics tool invocation.
func (s *Server) handleCollectionStatistics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CollectionStatisticsInput,
) (*mcp.CallToolResult, CollectionStatisticsOutput, error) {
	if input.Collection == "" {
		return nil, CollectionStatisticsOutput{}, errors.New("collection is required")
	}

	stats, err := s.ports.Statistics.CollectionStatistics(ctx, input.Collection)
	if err != nil {
		return nil, CollectionStatisticsOutput{}, toolError(err)
	}

	return nil, CollectionStatisticsOutput{
		CollectionID:  stats.CollectionID,
		DocumentCount: stats.DocumentCount,
		Words:         limitWords(stats.Words, input.Limit),
	}, nil
}

// handleListCollections handles the list_collections tool invocation.
func (s *Server) handleListCollections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCollectionsInput,
) (*mcp.CallToolResult, ListCollectionsOutput, error) {
	collections, err := s.ports.Collection.List(ctx)
	if err != nil {
		return nil, ListCollectionsOutput{}, fmt.Errorf("listing collections: %w", err)
	}

	output := ListCollectionsOutput{
		Collections: make([]CollectionOutput, len(collections)),
		Count:       len(collections),
	}
	for i := range collections {
		output.Collections[i] = CollectionOutput{
			ID:            collections[i].ID,
			Name:          collections[i].Name,
			Description:   collections[i].Description,
			DocumentCount: collections[i].Size(),
		}
	}
	return nil, output, nil
}

// toolError rewords statistics errors for assistants.
func toolError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDocumentNotInCorpus):
		return fmt.Errorf("the document is not a member of the collection: %w", err)
	case errors.Is(err, domain.ErrEmptyCorpus):
		return fmt.Errorf("the collection has no documents: %w", err)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("no such collection or document: %w", err)
	default:
		return err
	}
}

// limitWords keeps the first n words. n <= 0 keeps everything.
// The result is never nil so it encodes as an empty array.
func limitWords(words []domain.WordStatistic, n int) []domain.WordStatistic {
	if words == nil {
		return []domain.WordStatistic{}
	}
	if n > 0 && len(words) > n {
		return words[:n]
	}
	return words
}
