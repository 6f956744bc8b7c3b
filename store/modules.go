package store

import (
	"errors"
	"fmt"
	"strings"

	"productlib/models"
)

// ErrTitleRequired is returned when a module is inserted without a title.
var ErrTitleRequired = errors.New("module title is required")

// ModuleFilter holds equality filters; empty fields match everything.
type ModuleFilter struct {
	Industry string
	Subject  string
}

func (s *Store) InsertModule(m *models.Module) error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("insert into %s: %w", KindModule, ErrTitleRequired)
	}
	return s.insert(KindModule, m)
}

func (s *Store) FindModule(id int64) (*models.Module, error) {
	var m models.Module
	if err := s.first(&m, "id = ?", id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) FindModuleByTitle(title string) (*models.Module, error) {
	var m models.Module
	if err := s.first(&m, "title = ?", title); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) FindModules(filter ModuleFilter) ([]models.Module, error) {
	q := s.db.Order("id asc")
	if filter.Industry != "" {
		q = q.Where("industry = ?", filter.Industry)
	}
	if filter.Subject != "" {
		q = q.Where("subject = ?", filter.Subject)
	}

	modules := []models.Module{}
	if err := q.Find(&modules).Error; err != nil {
		return nil, fmt.Errorf("find modules: %w", err)
	}
	return modules, nil
}

func (s *Store) ListModules() ([]models.Module, error) {
	return s.FindModules(ModuleFilter{})
}

func (s *Store) DeleteAllModules() error {
	return s.deleteAll(KindModule)
}

// DistinctIndustries returns each non-empty industry once, sorted.
func (s *Store) DistinctIndustries() ([]string, error) {
	return s.distinctModuleColumn("industry")
}

// DistinctSubjects returns each non-empty subject once, sorted.
func (s *Store) DistinctSubjects() ([]string, error) {
	return s.distinctModuleColumn("subject")
}

func (s *Store) distinctModuleColumn(column string) ([]string, error) {
	values := []string{}
	err := s.db.Model(&models.Module{}).
		Where(column+" IS NOT NULL AND "+column+" <> ?", "").
		Order(column+" asc").
		Pluck("DISTINCT "+column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	return values, nil
}
