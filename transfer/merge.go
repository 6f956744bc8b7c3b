package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"productlib/models"
	"productlib/store"

	"go.uber.org/zap"
)

// EntityReport counts what a merge did with one entity type.
type EntityReport struct {
	Entity  string `json:"entity"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

type Report struct {
	Source   string         `json:"source"`
	Entities []EntityReport `json:"entities"`
}

// Added sums the added counters of every entity.
func (r *Report) Added() int {
	n := 0
	for _, e := range r.Entities {
		n += e.Added
	}
	return n
}

func (r *Report) Skipped() int {
	n := 0
	for _, e := range r.Entities {
		n += e.Skipped
	}
	return n
}

// Entity returns the counters for name, or a zero report.
func (r *Report) Entity(name string) EntityReport {
	for _, e := range r.Entities {
		if e.Entity == name {
			return e
		}
	}
	return EntityReport{Entity: name}
}

// seedDocument is the additive import shape. Categories become clients.
type seedDocument struct {
	Modules    []record `json:"modules"`
	Partners   []record `json:"partners"`
	Banners    []record `json:"banners"`
	Categories []record `json:"categories"`
	Clients    []record `json:"clients"`
	Cases      []record `json:"cases"`
}

// Merger adds seed records to the store without touching existing rows.
type Merger struct {
	Store *store.Store
	// ImagePrefix is prepended to stored image and logo paths (ex: "images/").
	ImagePrefix string
	Log         *zap.Logger
}

func NewMerger(s *store.Store, imagePrefix string, log *zap.Logger) *Merger {
	return &Merger{Store: s, ImagePrefix: imagePrefix, Log: log}
}

type entityHandler struct {
	name      string
	kind      store.Kind
	pathField string
	insert    func(tx *store.Store, rec record) error
}

var (
	moduleHandler = entityHandler{
		name: "Module", kind: store.KindModule, pathField: "image_url",
		insert: func(tx *store.Store, rec record) error {
			var m models.Module
			if err := rec.decode(&m); err != nil {
				return err
			}
			return tx.InsertModule(&m)
		},
	}
	partnerHandler = entityHandler{
		name: "Partner", kind: store.KindPartner, pathField: "logo_url",
		insert: func(tx *store.Store, rec record) error {
			var p models.Partner
			if err := rec.decode(&p); err != nil {
				return err
			}
			return tx.InsertPartner(&p)
		},
	}
	clientHandler = entityHandler{
		name: "Client", kind: store.KindClient,
		insert: func(tx *store.Store, rec record) error {
			var c models.Client
			if err := rec.decode(&c); err != nil {
				return err
			}
			return tx.InsertClient(&c)
		},
	}
	caseHandler = entityHandler{
		name: "Case", kind: store.KindCase, pathField: "image_url",
		insert: func(tx *store.Store, rec record) error {
			var c models.Case
			if err := rec.decode(&c); err != nil {
				return err
			}
			return tx.InsertCase(&c)
		},
	}
)

// MergeFile merges the seed document at path. When the file does not exist
// the default records are seeded instead.
func (m *Merger) MergeFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		m.Log.Info("seed file not found, using default records", zap.String("path", path))
		return m.SeedDefaults()
	}
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	m.Log.Info("importing seed file", zap.String("path", path))
	report, err := m.Merge(data)
	if report != nil {
		report.Source = path
	}
	return report, err
}

// Merge imports a seed document in a single transaction. Records whose id
// already exists are skipped; the rest are inserted with a fresh id.
// Any insert failure rolls the whole batch back.
func (m *Merger) Merge(data []byte) (*Report, error) {
	if err := requireObject(data); err != nil {
		return nil, err
	}
	var doc seedDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, invalid("invalid seed document: %v", err)
	}

	if len(doc.Banners) > 0 {
		m.Log.Info("banner records are not persisted", zap.Int("count", len(doc.Banners)))
	}

	clients := make([]record, 0, len(doc.Categories)+len(doc.Clients))
	for _, category := range doc.Categories {
		if category == nil {
			continue
		}
		clients = append(clients, categoryToClient(category))
	}
	clients = append(clients, doc.Clients...)

	report := &Report{Source: "document"}
	err := m.Store.Transaction(func(tx *store.Store) error {
		report.Entities = report.Entities[:0]
		batches := []struct {
			handler entityHandler
			records []record
		}{
			{moduleHandler, doc.Modules},
			{partnerHandler, doc.Partners},
			{clientHandler, clients},
			{caseHandler, doc.Cases},
		}
		for _, b := range batches {
			er, err := m.mergeRecords(tx, b.handler, b.records)
			if err != nil {
				return err
			}
			report.Entities = append(report.Entities, er)
		}
		return nil
	})
	if err != nil {
		m.Log.Error("seed import rolled back", zap.Error(err))
		return report, err
	}

	m.logReport(report)
	return report, nil
}

func (m *Merger) mergeRecords(tx *store.Store, h entityHandler, records []record) (EntityReport, error) {
	er := EntityReport{Entity: h.name}

	for i, rec := range records {
		if rec == nil {
			continue
		}
		rec.prefixPath(h.pathField, m.ImagePrefix)

		id, hasID, err := rec.id()
		if err == nil && hasID {
			var exists bool
			exists, err = tx.Exists(h.kind, id)
			if err == nil && exists {
				m.Log.Debug("skipping existing record",
					zap.String("entity", h.name), zap.Int64("id", id))
				er.Skipped++
				continue
			}
		}
		if err != nil {
			m.Log.Warn("skipping record with failed lookup",
				zap.String("entity", h.name), zap.Int("index", i), zap.Error(err))
			er.Failed++
			continue
		}

		if err := h.insert(tx, rec); err != nil {
			var re *rowError
			if errors.As(err, &re) {
				m.Log.Warn("skipping malformed record",
					zap.String("entity", h.name), zap.Int("index", i), zap.Error(err))
				er.Failed++
				continue
			}
			return er, fmt.Errorf("%s record %d: %w", h.name, i, err)
		}
		er.Added++
	}
	return er, nil
}

func categoryToClient(category record) record {
	client := record{
		"type":  category.str("type", models.CLIENT_TYPE_CATEGORY),
		"name":  category.str("name", ""),
		"value": category.str("value", ""),
	}
	if id, ok := category["id"]; ok {
		client["id"] = id
	}
	return client
}

func (m *Merger) logReport(report *Report) {
	for _, e := range report.Entities {
		m.Log.Info("seed import finished",
			zap.String("entity", e.Entity),
			zap.Int("added", e.Added),
			zap.Int("skipped", e.Skipped),
			zap.Int("failed", e.Failed))
	}
}
