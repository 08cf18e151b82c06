package routes

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/service"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

type NoteService interface {
	AddNote(checkinID int, req *service.AddNoteRequest, credential string) (*service.NoteResponse, apierror.ErrorResponse)
	GetNotesForCheckin(checkinID int) ([]*service.NoteResponse, apierror.ErrorResponse)
	GetNotes(phone, stylist string) ([]*service.NoteResponse, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (r *DefaultNoteRoute) AddNote(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.AddNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	credential := c.Request().Header.Get(HeaderAdminToken)
	note, apierr := r.NoteService.AddNote(id, &req, credential)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, note)
}

func (r *DefaultNoteRoute) GetNotesForCheckin(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	notes, apierr := r.NoteService.GetNotesForCheckin(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultNoteRoute) GetNotes(c echo.Context) error {
	phone := strings.TrimSpace(c.Param("phone"))
	stylist := strings.TrimSpace(c.Param("stylist"))
	if phone == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("phone"))
	}
	if stylist == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("stylist"))
	}

	notes, apierr := r.NoteService.GetNotes(phone, stylist)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}
