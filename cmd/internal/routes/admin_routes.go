package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/service"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

type AuthService interface {
	service.Authorizer
	Login(req *service.LoginRequest) (*service.LoginResponse, apierror.ErrorResponse)
}

type DefaultAdminRoute struct {
	AuthService AuthService
}

func NewAdminDefault(authService AuthService) *DefaultAdminRoute {
	return &DefaultAdminRoute{AuthService: authService}
}

// Login trades the shared secret for a short-lived session token, so the
// dashboard does not have to hold the secret itself past sign-in.
func (r *DefaultAdminRoute) Login(c echo.Context) error {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := r.AuthService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// RequireAdmin guards a route group with the x-admin-token header.
func RequireAdmin(auth service.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential := c.Request().Header.Get(HeaderAdminToken)
			if !auth.IsAuthorized(credential) {
				apierr := apierror.ForbiddenError
				return c.JSON(apierr.Code(), apierr)
			}
			return next(c)
		}
	}
}
