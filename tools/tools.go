package tools

import (
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// TimestampedName builds prefix + YYYYMMDD_HHMMSS + ext.
func TimestampedName(prefix, ext string, t time.Time) string {
	return prefix + t.Format(timestampLayout) + ext
}

// EnsurePrefix prepends prefix to path exactly once. Empty paths stay empty.
func EnsurePrefix(path, prefix string) string {
	if path == "" || strings.HasPrefix(path, prefix) {
		return path
	}
	return prefix + path
}

// StripPrefix removes a leading prefix, if any.
func StripPrefix(path, prefix string) string {
	if prefix == "" {
		return path
	}
	return strings.TrimPrefix(path, prefix)
}

// StaticURL renders a stored relative path as a servable URL.
func StaticURL(prefix, path string) string {
	if path == "" {
		return ""
	}
	return prefix + path
}
