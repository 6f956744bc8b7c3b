// Package store holds the explicit storage functions for the catalog tables.
// A Store wraps one gorm session; handlers build one per request.
package store

import (
	"errors"
	"fmt"

	"productlib/models"

	"github.com/jinzhu/gorm"
)

var ErrNotFound = errors.New("record not found")

// Kind names one of the catalog tables.
type Kind string

const (
	KindModule  Kind = "modules"
	KindPartner Kind = "partners"
	KindClient  Kind = "clients"
	KindCase    Kind = "cases"
)

// Kinds lists every table in wipe/insert order.
var Kinds = []Kind{KindModule, KindPartner, KindClient, KindCase}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn against a Store bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise,
// including when fn panics.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&Store{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Exists reports whether kind has a row with the given id.
func (s *Store) Exists(kind Kind, id int64) (bool, error) {
	var n int
	if err := s.db.Table(string(kind)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("lookup %s %d: %w", kind, id, err)
	}
	return n > 0, nil
}

func (s *Store) Count(kind Kind) (int, error) {
	var n int
	if err := s.db.Table(string(kind)).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

// DeleteAll empties every catalog table.
func (s *Store) DeleteAll() error {
	for _, kind := range Kinds {
		if err := s.deleteAll(kind); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) deleteAll(kind Kind) error {
	var model interface{}
	switch kind {
	case KindModule:
		model = &models.Module{}
	case KindPartner:
		model = &models.Partner{}
	case KindClient:
		model = &models.Client{}
	case KindCase:
		model = &models.Case{}
	default:
		return fmt.Errorf("unknown table %q", kind)
	}
	if err := s.db.Delete(model).Error; err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

func (s *Store) first(out interface{}, query string, args ...interface{}) error {
	err := s.db.Where(query, args...).First(out).Error
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}

func (s *Store) insert(kind Kind, record interface{}) error {
	if err := s.db.Create(record).Error; err != nil {
		return fmt.Errorf("insert into %s: %w", kind, err)
	}
	return nil
}
