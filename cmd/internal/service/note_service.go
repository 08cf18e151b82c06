package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

const (
	NoteTypeStylist = "stylist"
	NoteTypeAdmin   = "admin"
)

type NoteRepository interface {
	Save(note *entity.Note) error
	FindByCheckinID(checkinID int) ([]*entity.Note, error)
	FindByPhoneStylist(phone, stylist string) ([]*entity.Note, error)
}

// CheckInFinder is the slice of the check-in store the note log needs:
// just enough to confirm a parent visit exists.
type CheckInFinder interface {
	FindByID(id int) (*entity.CheckIn, error)
}

type AddNoteRequest struct {
	NoteType  string `json:"note_type" validate:"required,oneof=stylist admin"`
	Text      string `json:"text" validate:"required,notblank,max=1000"`
	CreatedBy string `json:"created_by" validate:"omitempty,max=80"`
}

type NoteResponse struct {
	ID        int    `json:"id"`
	CheckinID int    `json:"checkin_id"`
	NoteType  string `json:"note_type"`
	Text      string `json:"text"`
	CreatedBy string `json:"created_by,omitempty"`
	CreatedAt string `json:"created_at"`
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	Checkins CheckInFinder
	Validate *validator.Validate
	Auth     Authorizer
}

func NewNoteService(noteRepo NoteRepository, checkins CheckInFinder, validate *validator.Validate, auth Authorizer) *DefaultNoteService {
	return &DefaultNoteService{NoteRepo: noteRepo, Checkins: checkins, Validate: validate, Auth: auth}
}

// AddNote appends to a check-in's note log. Admin notes carry weight on
// the floor, so they require the admin credential; stylist notes do not.
func (n *DefaultNoteService) AddNote(checkinID int, req *AddNoteRequest, credential string) (*NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.NoteType == NoteTypeAdmin && !n.Auth.IsAuthorized(credential) {
		return nil, apierror.ForbiddenError
	}

	checkin, err := n.Checkins.FindByID(checkinID)
	if err != nil {
		log.Errorf("failed to fetch check-in %d for note: %v", checkinID, err)
		return nil, apierror.InternalServerError
	}
	if checkin == nil {
		return nil, apierror.NotFoundError
	}

	note := &entity.Note{
		CheckinID: checkin.ID,
		NoteType:  req.NoteType,
		Text:      req.Text,
		CreatedBy: req.CreatedBy,
		CreatedAt: utils.NowUTC(),
	}
	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note for check-in %d: %v", checkinID, err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

// GetNotesForCheckin returns a single visit's note log, newest first.
func (n *DefaultNoteService) GetNotesForCheckin(checkinID int) ([]*NoteResponse, apierror.ErrorResponse) {
	checkin, err := n.Checkins.FindByID(checkinID)
	if err != nil {
		log.Errorf("failed to fetch check-in %d for notes: %v", checkinID, err)
		return nil, apierror.InternalServerError
	}
	if checkin == nil {
		return nil, apierror.NotFoundError
	}

	notes, err := n.NoteRepo.FindByCheckinID(checkinID)
	if err != nil {
		log.Errorf("failed to fetch notes for check-in %d: %v", checkinID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

// GetNotes returns every note for this customer with this stylist,
// newest first, across all of their visits.
func (n *DefaultNoteService) GetNotes(phone, stylist string) ([]*NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindByPhoneStylist(phone, stylist)
	if err != nil {
		log.Errorf("failed to fetch notes for (%s, %s): %v", phone, stylist, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

func toNoteResponse(note *entity.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		CheckinID: note.CheckinID,
		NoteType:  note.NoteType,
		Text:      note.Text,
		CreatedBy: note.CreatedBy,
		CreatedAt: utils.FormatEpoch(note.CreatedAt),
	}
}
