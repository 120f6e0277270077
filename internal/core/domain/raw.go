package domain

// RawDocument represents file bytes before normalisation.
type RawDocument struct {
	// URI is the original location (file path).
	URI string

	// MIMEType is the content type (e.g., "text/html").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
