package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/service"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

type InventoryService interface {
	ListItems() ([]*service.InventoryItemResponse, apierror.ErrorResponse)
	CreateItem(req *service.InventoryItemRequest) (*service.InventoryItemResponse, apierror.ErrorResponse)
	UpdateItem(id int, req *service.InventoryItemRequest) (*service.InventoryItemResponse, apierror.ErrorResponse)
	DeleteItem(id int) apierror.ErrorResponse
}

type DefaultInventoryRoute struct {
	InventoryService InventoryService
}

func NewInventoryDefault(inventoryService InventoryService) *DefaultInventoryRoute {
	return &DefaultInventoryRoute{InventoryService: inventoryService}
}

func (r *DefaultInventoryRoute) ListItems(c echo.Context) error {
	items, apierr := r.InventoryService.ListItems()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"items": items}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultInventoryRoute) CreateItem(c echo.Context) error {
	var req service.InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	item, apierr := r.InventoryService.CreateItem(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, item)
}

func (r *DefaultInventoryRoute) UpdateItem(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	item, apierr := r.InventoryService.UpdateItem(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, item)
}

func (r *DefaultInventoryRoute) DeleteItem(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := r.InventoryService.DeleteItem(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
