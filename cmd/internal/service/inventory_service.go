package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

type InventoryRepository interface {
	FindAll() ([]*entity.InventoryItem, error)
	FindByID(id int) (*entity.InventoryItem, error)
	Save(item *entity.InventoryItem) error
	Delete(item *entity.InventoryItem) error
}

type InventoryItemRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=80"`
	Stock      int    `json:"stock" validate:"min=0"`
	CostCents  int64  `json:"cost_cents" validate:"min=0"`
	PriceCents int64  `json:"price_cents" validate:"min=0"`
}

type InventoryItemResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Stock      int    `json:"stock"`
	CostCents  int64  `json:"cost_cents"`
	PriceCents int64  `json:"price_cents"`
	IsActive   bool   `json:"is_active"`
	UpdatedAt  string `json:"updated_at"`
}

type DefaultInventoryService struct {
	InventoryRepo InventoryRepository
	Validate      *validator.Validate
}

func NewInventoryService(inventoryRepo InventoryRepository, validate *validator.Validate) *DefaultInventoryService {
	return &DefaultInventoryService{InventoryRepo: inventoryRepo, Validate: validate}
}

func (s *DefaultInventoryService) ListItems() ([]*InventoryItemResponse, apierror.ErrorResponse) {
	items, err := s.InventoryRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch inventory: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*InventoryItemResponse, len(items))
	for i, item := range items {
		resp[i] = toInventoryItemResponse(item)
	}
	return resp, nil
}

func (s *DefaultInventoryService) CreateItem(req *InventoryItemRequest) (*InventoryItemResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	item := &entity.InventoryItem{
		Name:       req.Name,
		Stock:      req.Stock,
		CostCents:  req.CostCents,
		PriceCents: req.PriceCents,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.InventoryRepo.Save(item); err != nil {
		log.Errorf("failed to create inventory item %q: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}
	return toInventoryItemResponse(item), nil
}

func (s *DefaultInventoryService) UpdateItem(id int, req *InventoryItemRequest) (*InventoryItemResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	item, apierr := s.fetchItem(id)
	if apierr != nil {
		return nil, apierr
	}

	item.Name = req.Name
	item.Stock = req.Stock
	item.CostCents = req.CostCents
	item.PriceCents = req.PriceCents
	item.UpdatedAt = utils.NowUTC()
	if err := s.InventoryRepo.Save(item); err != nil {
		log.Errorf("failed to update inventory item %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toInventoryItemResponse(item), nil
}

func (s *DefaultInventoryService) DeleteItem(id int) apierror.ErrorResponse {
	item, apierr := s.fetchItem(id)
	if apierr != nil {
		return apierr
	}

	if err := s.InventoryRepo.Delete(item); err != nil {
		log.Errorf("failed to delete inventory item %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultInventoryService) fetchItem(id int) (*entity.InventoryItem, apierror.ErrorResponse) {
	item, err := s.InventoryRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch inventory item %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if item == nil {
		return nil, apierror.NotFoundError
	}
	return item, nil
}

func toInventoryItemResponse(item *entity.InventoryItem) *InventoryItemResponse {
	return &InventoryItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Stock:      item.Stock,
		CostCents:  item.CostCents,
		PriceCents: item.PriceCents,
		IsActive:   item.IsActive,
		UpdatedAt:  utils.FormatEpoch(item.UpdatedAt),
	}
}
