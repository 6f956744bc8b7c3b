package tools

import "strings"

// IsJSONFilename accepts only names ending in ".json".
func IsJSONFilename(name string) bool {
	return strings.HasSuffix(name, ".json")
}
