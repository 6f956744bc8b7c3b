package transfer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"productlib/store"
	"productlib/tools"

	"go.uber.org/zap"
)

const (
	ExportFilePrefix     = "product_library_export_"
	ExportFileExt        = ".json"
	exportSuccessMessage = "导出成功"
)

type ExportResult struct {
	Code     int    `json:"code"`
	Msg      string `json:"msg"`
	Filename string `json:"filename"`
}

// Exporter dumps the catalog into a timestamped JSON file under Dir.
type Exporter struct {
	Store *store.Store
	Dir   string
	// StaticPrefix is removed from served paths so the dump re-imports cleanly.
	StaticPrefix string
	Now          func() time.Time
	Log          *zap.Logger
}

func NewExporter(s *store.Store, dir, staticPrefix string, log *zap.Logger) *Exporter {
	return &Exporter{Store: s, Dir: dir, StaticPrefix: staticPrefix, Now: time.Now, Log: log}
}

// Snapshot reads every catalog row with bare relative paths.
func (e *Exporter) Snapshot() (*Document, error) {
	doc := &Document{}
	err := e.Store.Transaction(func(tx *store.Store) error {
		var err error
		if doc.Modules, err = tx.ListModules(); err != nil {
			return err
		}
		if doc.Partners, err = tx.ListPartners(); err != nil {
			return err
		}
		if doc.Clients, err = tx.ListClients(); err != nil {
			return err
		}
		doc.Cases, err = tx.ListCases()
		return err
	})
	if err != nil {
		return nil, err
	}

	for i := range doc.Modules {
		doc.Modules[i].ImageURL = tools.StripPrefix(doc.Modules[i].ImageURL, e.StaticPrefix)
	}
	for i := range doc.Partners {
		doc.Partners[i].LogoURL = tools.StripPrefix(doc.Partners[i].LogoURL, e.StaticPrefix)
	}
	for i := range doc.Cases {
		doc.Cases[i].ImageURL = tools.StripPrefix(doc.Cases[i].ImageURL, e.StaticPrefix)
	}
	return doc, nil
}

// Export writes the snapshot to disk and reports the generated file name.
func (e *Exporter) Export() (*ExportResult, error) {
	doc, err := e.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	filename := tools.TimestampedName(ExportFilePrefix, ExportFileExt, now())

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	if err := writeDocument(filepath.Join(e.Dir, filename), doc); err != nil {
		return nil, err
	}

	e.Log.Info("catalog exported",
		zap.String("filename", filename),
		zap.Int("modules", len(doc.Modules)),
		zap.Int("partners", len(doc.Partners)),
		zap.Int("clients", len(doc.Clients)),
		zap.Int("cases", len(doc.Cases)))

	return &ExportResult{Code: http.StatusOK, Msg: exportSuccessMessage, Filename: filename}, nil
}

func writeDocument(path string, doc *Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}
