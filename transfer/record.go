package transfer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"productlib/tools"
)

// record is one loosely typed item of a seed document.
type record map[string]interface{}

// rowError marks a problem confined to a single record.
type rowError struct {
	err error
}

func (e *rowError) Error() string { return e.err.Error() }
func (e *rowError) Unwrap() error { return e.err }

// id returns the record's id, if it carries one.
func (r record) id() (int64, bool, error) {
	v, ok := r["id"]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch id := v.(type) {
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0, true, fmt.Errorf("invalid id %q: %w", id.String(), err)
		}
		return n, true, nil
	case string:
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return 0, true, fmt.Errorf("invalid id %q: %w", id, err)
		}
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("invalid id %v", v)
	}
}

// prefixPath prepends prefix to a non-empty string field lacking it.
func (r record) prefixPath(field, prefix string) {
	if field == "" {
		return
	}
	path, ok := r[field].(string)
	if !ok || path == "" {
		return
	}
	r[field] = tools.EnsurePrefix(path, prefix)
}

// str reads a scalar field as a string, falling back to def when absent.
func (r record) str(field, def string) string {
	switch v := r[field].(type) {
	case nil:
		return def
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// decode fills out from the record, leaving the id for the store to assign.
func (r record) decode(out interface{}) error {
	fields := make(map[string]interface{}, len(r))
	for k, v := range r {
		if k != "id" {
			fields[k] = v
		}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return &rowError{err}
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &rowError{err}
	}
	return nil
}
