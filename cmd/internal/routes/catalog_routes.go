package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/service"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

type CatalogService interface {
	GetActiveServices() ([]*service.ServiceResponse, apierror.ErrorResponse)
	GetActiveStylists() ([]*service.StylistResponse, apierror.ErrorResponse)
	ListAllServices() ([]*service.ServiceResponse, apierror.ErrorResponse)
	CreateService(req *service.ServiceRequest) (*service.ServiceResponse, apierror.ErrorResponse)
	UpdateService(id int, req *service.ServiceUpdateRequest) (*service.ServiceResponse, apierror.ErrorResponse)
	DeactivateService(id int) apierror.ErrorResponse
}

type DefaultCatalogRoute struct {
	CatalogService CatalogService
}

func NewCatalogDefault(catalogService CatalogService) *DefaultCatalogRoute {
	return &DefaultCatalogRoute{CatalogService: catalogService}
}

func (r *DefaultCatalogRoute) GetServices(c echo.Context) error {
	services, apierr := r.CatalogService.GetActiveServices()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"services": services}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultCatalogRoute) GetStylists(c echo.Context) error {
	stylists, apierr := r.CatalogService.GetActiveStylists()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"stylists": stylists}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultCatalogRoute) ListAllServices(c echo.Context) error {
	services, apierr := r.CatalogService.ListAllServices()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"services": services}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultCatalogRoute) CreateService(c echo.Context) error {
	var req service.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	created, apierr := r.CatalogService.CreateService(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *DefaultCatalogRoute) UpdateService(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.ServiceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	updated, apierr := r.CatalogService.UpdateService(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, updated)
}

func (r *DefaultCatalogRoute) DeactivateService(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := r.CatalogService.DeactivateService(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
