package repo

import (
	"ItemKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository defines storage access to items for the service layer.
type ItemRepository interface {
	// ListAll returns every item ordered by id.
	ListAll(ctx context.Context) ([]model.Item, error)

	// Create inserts the item and fills its generated ID and timestamps.
	Create(ctx context.Context, it *model.Item) error

	// Update overwrites name and description of an existing item and returns the stored row.
	// gorm.ErrRecordNotFound if the item does not exist.
	Update(ctx context.Context, it *model.Item) (*model.Item, error)

	// Delete removes the item; gorm.ErrRecordNotFound if nothing was deleted.
	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository creates a gorm backed ItemRepository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	items := []model.Item{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) Update(ctx context.Context, it *model.Item) (*model.Item, error) {
	var stored model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stored, it.ID).Error; err != nil {
			return err
		}
		// map form so empty strings are written too
		if err := tx.Model(&stored).Updates(map[string]any{
			"name":        it.Name,
			"description": it.Description,
		}).Error; err != nil {
			return err
		}
		return tx.First(&stored, it.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
