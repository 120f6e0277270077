package mcp

import (
	"context"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
)

// mockStatisticsService is a mock implementation of driving.StatisticsService.
type mockStatisticsService struct {
	document   *domain.DocumentStatistics
	collection *domain.CollectionStatistics
	err        error

	gotCollection string
	gotDocument   string
}

func (m *mockStatisticsService) DocumentStatistics(
	_ context.Context,
	collectionID, documentID string,
) (*domain.DocumentStatistics, error) {
	m.gotCollection = collectionID
	m.gotDocument = documentID
	return m.document, m.err
}

func (m *mockStatisticsService) CollectionStatistics(
	_ context.Context,
	collectionID string,
) (*domain.CollectionStatistics, error) {
	m.gotCollection = collectionID
	return m.collection, m.err
}

func (m *mockStatisticsService) Warm(_ context.Context, _ string, _ int) (*driving.WarmResult, error) {
	return &driving.WarmResult{}, m.err
}

func (m *mockStatisticsService) Invalidate(_ context.Context, _ string) error {
	return m.err
}

// mockCollectionService is a mock implementation of driving.CollectionService.
type mockCollectionService struct {
	collections []domain.Collection
	err         error
}

func (m *mockCollectionService) Create(_ context.Context, _, _ string) (*domain.Collection, error) {
	return nil, m.err
}

func (m *mockCollectionService) Get(_ context.Context, _ string) (*domain.Collection, error) {
	return nil, m.err
}

func (m *mockCollectionService) List(_ context.Context) ([]domain.Collection, error) {
	return m.collections, m.err
}

func (m *mockCollectionService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockCollectionService) AddDocument(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockCollectionService) RemoveDocument(_ context.Context, _, _ string) error {
	return m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	text string
	err  error
}

func (m *mockDocumentService) Add(_ context.Context, _ string, _ bool) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) GetText(_ context.Context, _ string) (string, error) {
	return m.text, m.err
}

func (m *mockDocumentService) UpdateContent(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentService) InvalidateByURI(_ context.Context, _ string) error {
	return m.err
}

// Compile-time checks.
var (
	_ driving.StatisticsService = (*mockStatisticsService)(nil)
	_ driving.CollectionService = (*mockCollectionService)(nil)
	_ driving.DocumentService   = (*mockDocumentService)(nil)
)
