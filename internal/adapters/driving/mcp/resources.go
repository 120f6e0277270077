package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for termstat resources.
	uriScheme = "termstat://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "collections",
		Name:        "collections",
		Description: "List of all collections with their member documents",
		MIMEType:    "application/json",
	}, s.handleCollectionsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-text",
		Description: "Full text of a document, as used for statistics",
		MIMEType:    "text/plain",
	}, s.handleDocumentTextResource)
}

// handleCollectionsResource returns every collection.
func (s *Server) handleCollectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Collection == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	collections, err := s.ports.Collection.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	type collectionInfo struct {
		ID        string   `json:"id"`
		Name      string   `json:"name"`
		Documents []string `json:"documents"`
	}

	infos := make([]collectionInfo, len(collections))
	for i := range collections {
		docs := collections[i].DocumentIDs
		if docs == nil {
			docs = []string{}
		}
		infos[i] = collectionInfo{
			ID:        collections[i].ID,
			Name:      collections[i].Name,
			Documents: docs,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling collections: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentTextResource returns the text of a specific document.
func (s *Server) handleDocumentTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	text, err := s.ports.Document.GetText(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting document text: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like termstat://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
