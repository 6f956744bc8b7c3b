// Package transfer moves catalog data in and out of the store as JSON
// documents: the additive seed merge, the destructive replace import and
// the export dump.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"productlib/models"
)

// Document is the shape written by Export and read by Replace.
type Document struct {
	Modules  []models.Module  `json:"modules"`
	Partners []models.Partner `json:"partners"`
	Clients  []models.Client  `json:"clients"`
	Cases    []models.Case    `json:"cases"`
}

// ValidationError rejects an input before any storage is touched.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// requireObject checks that data is well-formed JSON with an object at the top.
func requireObject(data []byte) error {
	if !json.Valid(data) {
		return invalid("Invalid JSON format")
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return invalid("import document must be a JSON object")
	}
	return nil
}
