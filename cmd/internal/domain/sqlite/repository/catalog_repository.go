package repository

import (
	"errors"

	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultCatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{db: db}
}

func (r *DefaultCatalogRepository) FindActiveServices() ([]*entity.Service, error) {
	var services []*entity.Service
	err := r.db.
		Where("is_active = ?", true).
		Order("name asc").
		Find(&services).Error
	return services, err
}

func (r *DefaultCatalogRepository) FindAllServices() ([]*entity.Service, error) {
	var services []*entity.Service
	err := r.db.Order("name asc").Find(&services).Error
	return services, err
}

func (r *DefaultCatalogRepository) FindServiceByID(id int) (*entity.Service, error) {
	var service entity.Service
	err := r.db.First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *DefaultCatalogRepository) SaveService(service *entity.Service) error {
	return r.db.Save(service).Error
}

func (r *DefaultCatalogRepository) FindActiveStylists() ([]*entity.Stylist, error) {
	var stylists []*entity.Stylist
	err := r.db.
		Where("is_active = ?", true).
		Order("name asc").
		Find(&stylists).Error
	return stylists, err
}
