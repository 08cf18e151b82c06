package repository

import (
	"errors"

	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultInventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *DefaultInventoryRepository {
	return &DefaultInventoryRepository{db: db}
}

func (r *DefaultInventoryRepository) FindAll() ([]*entity.InventoryItem, error) {
	var items []*entity.InventoryItem
	err := r.db.Order("name asc").Find(&items).Error
	return items, err
}

func (r *DefaultInventoryRepository) FindByID(id int) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *DefaultInventoryRepository) Save(item *entity.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *DefaultInventoryRepository) Delete(item *entity.InventoryItem) error {
	return r.db.Delete(item).Error
}
