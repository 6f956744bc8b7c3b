package store

import (
	"fmt"

	"productlib/models"
)

func (s *Store) InsertClient(c *models.Client) error {
	return s.insert(KindClient, c)
}

func (s *Store) FindClient(id int64) (*models.Client, error) {
	var c models.Client
	if err := s.first(&c, "id = ?", id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) FindClientByName(name string) (*models.Client, error) {
	var c models.Client
	if err := s.first(&c, "name = ?", name); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListClients() ([]models.Client, error) {
	clients := []models.Client{}
	if err := s.db.Order("id asc").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *Store) DeleteAllClients() error {
	return s.deleteAll(KindClient)
}
