// Package html provides a Normaliser implementation for HTML documents.
// It parses the document with golang.org/x/net/html and keeps the visible
// text, skipping scripts, styles and other non-content elements.
package html
