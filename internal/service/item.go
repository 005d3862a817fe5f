package service

import (
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when the requested item does not exist.
var ErrItemNotFound = errors.New("item not found")

// ItemService holds the business logic around items.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger}
}

// ItemInput is the writable part of an item.
type ItemInput struct {
	Name        string
	Description string
}

// List returns all items in storage order.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create stores a new item; the id is assigned by the storage.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (*model.Item, error) {
	it := &model.Item{Name: in.Name, Description: in.Description}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.logger.Infow("item created", "id", it.ID)
	return it, nil
}

// Update replaces name and description of the item with the given id.
func (s *ItemService) Update(ctx context.Context, id int64, in ItemInput) (*model.Item, error) {
	it, err := s.repo.Update(ctx, &model.Item{ID: id, Name: in.Name, Description: in.Description})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	s.logger.Infow("item updated", "id", id)
	return it, nil
}

// Delete removes the item with the given id.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	s.logger.Infow("item deleted", "id", id)
	return nil
}
