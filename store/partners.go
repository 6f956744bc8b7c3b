package store

import (
	"fmt"

	"productlib/models"
)

func (s *Store) InsertPartner(p *models.Partner) error {
	return s.insert(KindPartner, p)
}

func (s *Store) FindPartner(id int64) (*models.Partner, error) {
	var p models.Partner
	if err := s.first(&p, "id = ?", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) FindPartnerByName(name string) (*models.Partner, error) {
	var p models.Partner
	if err := s.first(&p, "name = ?", name); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPartners() ([]models.Partner, error) {
	partners := []models.Partner{}
	if err := s.db.Order("id asc").Find(&partners).Error; err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return partners, nil
}

func (s *Store) DeleteAllPartners() error {
	return s.deleteAll(KindPartner)
}
