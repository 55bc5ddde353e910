package repositories

import "tasklist/internal/models"

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	Create(item *models.Item) error
	GetByID(id string) (*models.Item, error)
	ListByOwner(ownerID string, offset, limit int) ([]models.Item, error)
	CountByOwner(ownerID string) (int64, error)
	Update(item *models.Item) error
	Delete(id string) error
}
