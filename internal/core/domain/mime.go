package domain

import (
	"mime"
	"path/filepath"
	"strings"
)

// DefaultMIMEType is used for files with an unknown extension.
const DefaultMIMEType = "text/plain"

// knownMIMETypes overrides platform MIME tables, which disagree on text formats.
var knownMIMETypes = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".log":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".html":     "text/html",
	".htm":      "text/html",
	".xhtml":    "application/xhtml+xml",
	".csv":      "text/csv",
	".json":     "application/json",
	".xml":      "application/xml",
	".yaml":     "text/yaml",
	".yml":      "text/yaml",
	".toml":     "text/toml",
	".go":       "text/x-go",
	".py":       "text/x-python",
}

// DetectMIMEType derives a MIME type from the file extension of path,
// without parameters such as charset.
func DetectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return DefaultMIMEType
	}
	if t, ok := knownMIMETypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return DefaultMIMEType
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
