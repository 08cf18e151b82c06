package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

type CatalogRepository interface {
	FindActiveServices() ([]*entity.Service, error)
	FindAllServices() ([]*entity.Service, error)
	FindServiceByID(id int) (*entity.Service, error)
	SaveService(service *entity.Service) error
	FindActiveStylists() ([]*entity.Stylist, error)
}

type ServiceRequest struct {
	Name            string `json:"name" validate:"required,notblank,max=80"`
	PriceCents      int64  `json:"price_cents" validate:"min=0"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

type ServiceUpdateRequest struct {
	PriceCents      int64 `json:"price_cents" validate:"min=0"`
	DurationMinutes int   `json:"duration_minutes" validate:"required,gt=0"`
}

type ServiceResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	PriceCents      int64  `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
	IsActive        bool   `json:"is_active"`
}

type StylistResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DefaultCatalogService struct {
	CatalogRepo CatalogRepository
	Validate    *validator.Validate
}

func NewCatalogService(catalogRepo CatalogRepository, validate *validator.Validate) *DefaultCatalogService {
	return &DefaultCatalogService{CatalogRepo: catalogRepo, Validate: validate}
}

func (c *DefaultCatalogService) GetActiveServices() ([]*ServiceResponse, apierror.ErrorResponse) {
	services, err := c.CatalogRepo.FindActiveServices()
	if err != nil {
		log.Errorf("failed to fetch active services: %v", err)
		return nil, apierror.InternalServerError
	}
	return toServiceResponses(services), nil
}

func (c *DefaultCatalogService) GetActiveStylists() ([]*StylistResponse, apierror.ErrorResponse) {
	stylists, err := c.CatalogRepo.FindActiveStylists()
	if err != nil {
		log.Errorf("failed to fetch active stylists: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*StylistResponse, len(stylists))
	for i, stylist := range stylists {
		resp[i] = &StylistResponse{ID: stylist.ID, Name: stylist.Name}
	}
	return resp, nil
}

func (c *DefaultCatalogService) ListAllServices() ([]*ServiceResponse, apierror.ErrorResponse) {
	services, err := c.CatalogRepo.FindAllServices()
	if err != nil {
		log.Errorf("failed to fetch all services: %v", err)
		return nil, apierror.InternalServerError
	}
	return toServiceResponses(services), nil
}

func (c *DefaultCatalogService) CreateService(req *ServiceRequest) (*ServiceResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	service := &entity.Service{
		Name:            req.Name,
		PriceCents:      req.PriceCents,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := c.CatalogRepo.SaveService(service); err != nil {
		log.Errorf("failed to create service %q: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}
	return toServiceResponse(service), nil
}

func (c *DefaultCatalogService) UpdateService(id int, req *ServiceUpdateRequest) (*ServiceResponse, apierror.ErrorResponse) {
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	service, apierr := c.fetchService(id)
	if apierr != nil {
		return nil, apierr
	}

	service.PriceCents = req.PriceCents
	service.DurationMinutes = req.DurationMinutes
	service.UpdatedAt = utils.NowUTC()
	if err := c.CatalogRepo.SaveService(service); err != nil {
		log.Errorf("failed to update service %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toServiceResponse(service), nil
}

// DeactivateService retires a service from the check-in form without
// deleting it; old check-ins keep referring to it by name anyway.
func (c *DefaultCatalogService) DeactivateService(id int) apierror.ErrorResponse {
	service, apierr := c.fetchService(id)
	if apierr != nil {
		return apierr
	}

	service.IsActive = false
	service.UpdatedAt = utils.NowUTC()
	if err := c.CatalogRepo.SaveService(service); err != nil {
		log.Errorf("failed to deactivate service %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (c *DefaultCatalogService) fetchService(id int) (*entity.Service, apierror.ErrorResponse) {
	service, err := c.CatalogRepo.FindServiceByID(id)
	if err != nil {
		log.Errorf("failed to fetch service %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if service == nil {
		return nil, apierror.NotFoundError
	}
	return service, nil
}

func toServiceResponses(services []*entity.Service) []*ServiceResponse {
	resp := make([]*ServiceResponse, len(services))
	for i, service := range services {
		resp[i] = toServiceResponse(service)
	}
	return resp
}

func toServiceResponse(service *entity.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              service.ID,
		Name:            service.Name,
		PriceCents:      service.PriceCents,
		DurationMinutes: service.DurationMinutes,
		IsActive:        service.IsActive,
	}
}
