package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/queue"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/notify"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/validators"
)

// Shared in-memory fakes for the service tests. The check-in fake hands
// out strictly increasing CreatedAt values so queue order is stable even
// when a test creates entries back to back.

func newTestValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	return validate
}

type memCheckInRepo struct {
	checkins map[int]*entity.CheckIn
	nextID   int
	clock    int64
	saveErr  error
}

func newMemCheckInRepo() *memCheckInRepo {
	// Clock starts at today's midnight so stats tests see the entries
	// inside the "today" window.
	return &memCheckInRepo{
		checkins: map[int]*entity.CheckIn{},
		nextID:   1,
		clock:    utils.StartOfDayUTC(utils.NowUTC()),
	}
}

func (m *memCheckInRepo) Save(checkin *entity.CheckIn) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if checkin.ID == 0 {
		checkin.ID = m.nextID
		m.nextID++
		m.clock += 1000
		checkin.CreatedAt = m.clock
	}
	stored := *checkin
	m.checkins[checkin.ID] = &stored
	return nil
}

func (m *memCheckInRepo) FindByID(id int) (*entity.CheckIn, error) {
	checkin, ok := m.checkins[id]
	if !ok {
		return nil, nil
	}
	found := *checkin
	return &found, nil
}

func (m *memCheckInRepo) FindActive() ([]*entity.CheckIn, error) {
	return m.collect(func(c *entity.CheckIn) bool {
		return queue.IsActive(c.Status)
	}), nil
}

func (m *memCheckInRepo) FindWaitingByStylist(stylist string) ([]*entity.CheckIn, error) {
	return m.collect(func(c *entity.CheckIn) bool {
		return c.Status == queue.StatusWaiting && c.Stylist == stylist
	}), nil
}

func (m *memCheckInRepo) FindCreatedBetween(start, end int64) ([]*entity.CheckIn, error) {
	return m.collect(func(c *entity.CheckIn) bool {
		return c.CreatedAt >= start && c.CreatedAt < end
	}), nil
}

func (m *memCheckInRepo) collect(keep func(*entity.CheckIn) bool) []*entity.CheckIn {
	var out []*entity.CheckIn
	for _, checkin := range m.checkins {
		if keep(checkin) {
			found := *checkin
			out = append(out, &found)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out
}

type memNoteRepo struct {
	notes    []*entity.Note
	checkins *memCheckInRepo
	nextID   int
}

func newMemNoteRepo(checkins *memCheckInRepo) *memNoteRepo {
	return &memNoteRepo{checkins: checkins, nextID: 1}
}

func (m *memNoteRepo) Save(note *entity.Note) error {
	if note.ID == 0 {
		note.ID = m.nextID
		m.nextID++
	}
	stored := *note
	m.notes = append(m.notes, &stored)
	return nil
}

func (m *memNoteRepo) FindByCheckinID(checkinID int) ([]*entity.Note, error) {
	return m.collect(func(n *entity.Note) bool { return n.CheckinID == checkinID }), nil
}

func (m *memNoteRepo) FindByPhoneStylist(phone, stylist string) ([]*entity.Note, error) {
	return m.collect(func(n *entity.Note) bool {
		parent, ok := m.checkins.checkins[n.CheckinID]
		return ok && parent.Phone == phone && parent.Stylist == stylist
	}), nil
}

func (m *memNoteRepo) collect(keep func(*entity.Note) bool) []*entity.Note {
	var out []*entity.Note
	for _, note := range m.notes {
		if keep(note) {
			found := *note
			out = append(out, &found)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

type recordingNotifier struct {
	payloads []notify.ConfirmationPayload
	err      error
}

func (n *recordingNotifier) ConfirmCheckin(ctx context.Context, payload notify.ConfirmationPayload) error {
	if n.err != nil {
		return n.err
	}
	n.payloads = append(n.payloads, payload)
	return nil
}

type staticAuthorizer struct {
	token string
}

func (a staticAuthorizer) IsAuthorized(credential string) bool {
	return a.token != "" && credential == a.token
}
