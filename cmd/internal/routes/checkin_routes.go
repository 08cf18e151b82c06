package routes

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/service"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

// HeaderAdminToken carries the shared admin secret or a session token.
const HeaderAdminToken = "x-admin-token"

type CheckInService interface {
	CreateCheckIn(req *service.CheckInRequest) (*service.CreateCheckInResponse, apierror.ErrorResponse)
	GetQueue() ([]*service.CheckInResponse, apierror.ErrorResponse)
	MarkNowServing(id int) (*service.CheckInResponse, apierror.ErrorResponse)
	MarkServed(id int) (*service.CheckInResponse, apierror.ErrorResponse)
	Cancel(id int, credential string) (*service.CheckInResponse, apierror.ErrorResponse)
	GetStats() (*service.StatsResponse, apierror.ErrorResponse)
}

type DefaultCheckInRoute struct {
	CheckInService CheckInService
}

func NewCheckInDefault(checkInService CheckInService) *DefaultCheckInRoute {
	return &DefaultCheckInRoute{CheckInService: checkInService}
}

func (r *DefaultCheckInRoute) CreateCheckIn(c echo.Context) error {
	var req service.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := r.CheckInService.CreateCheckIn(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (r *DefaultCheckInRoute) GetQueue(c echo.Context) error {
	checkins, apierr := r.CheckInService.GetQueue()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"checkins": checkins}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultCheckInRoute) MarkNowServing(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	checkin, apierr := r.CheckInService.MarkNowServing(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, checkin)
}

func (r *DefaultCheckInRoute) MarkServed(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	checkin, apierr := r.CheckInService.MarkServed(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, checkin)
}

func (r *DefaultCheckInRoute) Cancel(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	credential := c.Request().Header.Get(HeaderAdminToken)
	checkin, apierr := r.CheckInService.Cancel(id, credential)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, checkin)
}

func (r *DefaultCheckInRoute) GetStats(c echo.Context) error {
	stats, apierr := r.CheckInService.GetStats()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, stats)
}

func parseIDParam(c echo.Context) (int, apierror.ErrorResponse) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError("id", "int")
	}
	return id, nil
}
