package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates no normaliser handles a MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Statistics Errors.

	// ErrDocumentNotInCorpus indicates the document's text is not among the
	// texts of the collection it is evaluated against. This usually means the
	// caller is holding stale collection membership.
	ErrDocumentNotInCorpus = errors.New("document is not in collection")

	// ErrEmptyCorpus indicates a statistics request over zero documents.
	ErrEmptyCorpus = errors.New("collection has no documents")

	// ErrDecode indicates stored bytes could not be interpreted as UTF-8 text.
	ErrDecode = errors.New("content cannot be decoded as text")

	// ErrEmptyContent indicates a document with no content was submitted.
	ErrEmptyContent = errors.New("document content is empty")
)
