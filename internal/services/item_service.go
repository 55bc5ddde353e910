package services

import (
	"errors"
	"fmt"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
)

// Item access failures surfaced to handlers.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrForbidden    = errors.New("not enough permissions")
)

// ItemService handles the lifecycle of owned items. Every read or
// mutation is authorized against the caller before touching the store.
type ItemService struct {
	itemRepo repositories.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repositories.ItemRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

// Create stores a new item owned by the caller. The owner is always the
// authenticated caller; any owner value in the request is ignored.
func (s *ItemService) Create(caller *models.User, req models.ItemCreateRequest) (*models.Item, error) {
	item := &models.Item{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     caller.ID,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

// Get returns a single item. Existence is checked before permission, so
// a missing item yields ErrItemNotFound and an existing one the caller
// may not read yields ErrForbidden.
func (s *ItemService) Get(caller *models.User, id string) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !CanRead(caller, item.OwnerID) {
		return nil, ErrForbidden
	}
	return item, nil
}

// List returns a page of the caller's own items plus the total count.
// The query is scoped to the caller's ID server-side, so no permission
// check is needed on the results.
func (s *ItemService) List(caller *models.User, offset, limit int) (*models.ItemsResponse, error) {
	items, err := s.itemRepo.ListByOwner(caller.ID, offset, limit)
	if err != nil {
		return nil, err
	}
	count, err := s.itemRepo.CountByOwner(caller.ID)
	if err != nil {
		return nil, err
	}
	return &models.ItemsResponse{Data: items, Count: count}, nil
}

// Update applies a partial update to an item the caller owns. Only
// fields present in the request are changed; absent fields keep their
// stored values.
func (s *ItemService) Update(caller *models.User, id string, req models.ItemUpdateRequest) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !CanMutate(caller, item.OwnerID) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := s.itemRepo.Update(item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// Delete removes an item the caller owns. Deleting an already-deleted
// item yields ErrItemNotFound again rather than an internal error.
func (s *ItemService) Delete(caller *models.User, id string) error {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	if !CanMutate(caller, item.OwnerID) {
		return ErrForbidden
	}

	if err := s.itemRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
