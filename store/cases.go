package store

import (
	"fmt"

	"productlib/models"
)

func (s *Store) InsertCase(c *models.Case) error {
	return s.insert(KindCase, c)
}

func (s *Store) FindCase(id int64) (*models.Case, error) {
	var c models.Case
	if err := s.first(&c, "id = ?", id); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCaseByName looks a case up by its case text.
func (s *Store) FindCaseByName(name string) (*models.Case, error) {
	var c models.Case
	if err := s.first(&c, "case_name = ?", name); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCases() ([]models.Case, error) {
	cases := []models.Case{}
	if err := s.db.Order("id asc").Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

func (s *Store) DeleteAllCases() error {
	return s.deleteAll(KindCase)
}
