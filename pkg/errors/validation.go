package errors

import (
	"slices"
	"strings"
	"unicode"

	gio "github.com/matzehuels/graphml/pkg/io"
)

// ValidateExporterName checks that name is one of the exporter names
// understood by pkg/io. An empty name is valid and means "none".
func ValidateExporterName(name string) error {
	if name == "" || slices.Contains(gio.ExporterNames, name) {
		return nil
	}
	return New(ErrCodeInvalidExporter, "invalid exporter: %s (must be one of %s)",
		name, strings.Join(gio.ExporterNames, ", "))
}

// ValidateOutputPath validates a path the CLI is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}

// ValidateRedisURL validates a redis connection URL.
// It ensures the URL uses the redis or rediss scheme.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "redis URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "redis URL must use redis:// or rediss:// scheme")
	}
	return nil
}
