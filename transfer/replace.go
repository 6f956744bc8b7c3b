package transfer

import (
	"encoding/json"
	"fmt"

	"productlib/store"
	"productlib/tools"

	"go.uber.org/zap"
)

const importSuccessMessage = "数据导入成功"

type ImportResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// Replacer overwrites the whole catalog with an uploaded document.
type Replacer struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewReplacer(s *store.Store, log *zap.Logger) *Replacer {
	return &Replacer{Store: s, Log: log}
}

// Parse validates an uploaded import file without touching the store.
func Parse(filename string, data []byte) (*Document, error) {
	if !tools.IsJSONFilename(filename) {
		return nil, invalid("Only JSON files are allowed")
	}
	if err := requireObject(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, invalid("Invalid import document: %v", err)
	}
	return &doc, nil
}

// Replace wipes every catalog table and inserts the document's records
// verbatim, ids included. Wipe and inserts share one transaction: on any
// failure the store keeps its previous contents.
func (r *Replacer) Replace(filename string, data []byte) (*ImportResult, error) {
	doc, err := Parse(filename, data)
	if err != nil {
		return nil, err
	}

	err = r.Store.Transaction(func(tx *store.Store) error {
		if err := tx.DeleteAll(); err != nil {
			return err
		}
		for i := range doc.Modules {
			if err := tx.InsertModule(&doc.Modules[i]); err != nil {
				return fmt.Errorf("module %d: %w", i, err)
			}
		}
		for i := range doc.Partners {
			if err := tx.InsertPartner(&doc.Partners[i]); err != nil {
				return fmt.Errorf("partner %d: %w", i, err)
			}
		}
		for i := range doc.Clients {
			if err := tx.InsertClient(&doc.Clients[i]); err != nil {
				return fmt.Errorf("client %d: %w", i, err)
			}
		}
		for i := range doc.Cases {
			if err := tx.InsertCase(&doc.Cases[i]); err != nil {
				return fmt.Errorf("case %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		r.Log.Error("replace import rolled back", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	r.Log.Info("replace import committed",
		zap.String("filename", filename),
		zap.Int("modules", len(doc.Modules)),
		zap.Int("partners", len(doc.Partners)),
		zap.Int("clients", len(doc.Clients)),
		zap.Int("cases", len(doc.Cases)))

	return &ImportResult{Message: importSuccessMessage, Filename: filename}, nil
}
