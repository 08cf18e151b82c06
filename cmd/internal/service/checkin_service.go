package service

import (
	"context"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/queue"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/notify"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

type CheckInRepository interface {
	Save(checkin *entity.CheckIn) error
	FindByID(id int) (*entity.CheckIn, error)
	FindActive() ([]*entity.CheckIn, error)
	FindWaitingByStylist(stylist string) ([]*entity.CheckIn, error)
	FindCreatedBetween(start, end int64) ([]*entity.CheckIn, error)
}

type CheckInRequest struct {
	Name          string   `json:"name" validate:"required,notblank,max=80"`
	Phone         string   `json:"phone" validate:"required,notblank,max=32"`
	Services      []string `json:"services" validate:"required,min=1,max=8,nodupes,dive,notblank,max=64"`
	Stylist       string   `json:"stylist" validate:"required,notblank,max=80"`
	PreferredTime *string  `json:"time" validate:"omitempty,max=64"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	CheckInMethod string   `json:"check_in_method" validate:"omitempty,oneof=walk-in online"`
	Notes         *string  `json:"notes" validate:"omitempty,max=500"`
}

type CheckInResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Services      []string `json:"services"`
	Stylist       string   `json:"stylist"`
	Status        string   `json:"status"`
	CheckInMethod string   `json:"check_in_method"`
	PreferredTime *string  `json:"time,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type CreateCheckInResponse struct {
	CheckIn  *CheckInResponse `json:"check_in"`
	Estimate queue.Estimate   `json:"estimate"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	TotalCheckins  int         `json:"total_checkins"`
	OnlineCheckins int         `json:"online_checkins"`
	WalkinCheckins int         `json:"walkin_checkins"`
	TopServices    []NameCount `json:"top_services"`
	TopStylists    []NameCount `json:"top_stylists"`
}

type DefaultCheckInService struct {
	CheckinRepo CheckInRepository
	Validate    *validator.Validate
	Notifier    notify.Notifier
	Auth        Authorizer
}

func NewCheckInService(checkinRepo CheckInRepository, validate *validator.Validate, notifier notify.Notifier, auth Authorizer) *DefaultCheckInService {
	return &DefaultCheckInService{CheckinRepo: checkinRepo, Validate: validate, Notifier: notifier, Auth: auth}
}

// CreateCheckIn validates and persists a new check-in, then answers with
// the customer's place in line computed from the entries already waiting
// for the same stylist. The confirmation email is published to the
// notification channel and forgotten; its fate never affects the result.
func (s *DefaultCheckInService) CreateCheckIn(req *CheckInRequest) (*CreateCheckInResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.CheckInMethod == "" {
		req.CheckInMethod = queue.MethodWalkIn
	}
	// A whitespace-only email trims to "" and would slip past `omitempty`.
	if req.Email != nil && *req.Email == "" {
		req.Email = nil
	}
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	// Snapshot before the insert: everyone currently Waiting for this
	// stylist is, by creation order, ahead of the new entry.
	waitingAhead, err := s.CheckinRepo.FindWaitingByStylist(req.Stylist)
	if err != nil {
		log.Errorf("failed to read waiting queue for stylist %q: %v", req.Stylist, err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	checkin := &entity.CheckIn{
		Name:          req.Name,
		Phone:         req.Phone,
		Services:      req.Services,
		Stylist:       req.Stylist,
		Status:        queue.StatusWaiting,
		CheckInMethod: req.CheckInMethod,
		PreferredTime: req.PreferredTime,
		Email:         req.Email,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.CheckinRepo.Save(checkin); err != nil {
		log.Errorf("failed to save check-in for %q: %v", req.Phone, err)
		return nil, apierror.InternalServerError
	}

	if req.Email != nil {
		s.requestConfirmation(checkin)
	}

	return &CreateCheckInResponse{
		CheckIn:  toCheckInResponse(checkin),
		Estimate: queue.EstimateWait(waitingAhead),
	}, nil
}

// GetQueue derives the board fresh from the store on every call.
func (s *DefaultCheckInService) GetQueue() ([]*CheckInResponse, apierror.ErrorResponse) {
	checkins, err := s.CheckinRepo.FindActive()
	if err != nil {
		log.Errorf("failed to fetch queue: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*CheckInResponse, len(checkins))
	for i, checkin := range checkins {
		resp[i] = toCheckInResponse(checkin)
	}
	return resp, nil
}

func (s *DefaultCheckInService) MarkNowServing(id int) (*CheckInResponse, apierror.ErrorResponse) {
	return s.transition(id, queue.StatusNowServing)
}

func (s *DefaultCheckInService) MarkServed(id int) (*CheckInResponse, apierror.ErrorResponse) {
	return s.transition(id, queue.StatusServed)
}

// Cancel requires an admin credential. An unauthorized call changes
// nothing and learns nothing beyond "forbidden".
func (s *DefaultCheckInService) Cancel(id int, credential string) (*CheckInResponse, apierror.ErrorResponse) {
	if !s.Auth.IsAuthorized(credential) {
		return nil, apierror.ForbiddenError
	}
	return s.transition(id, queue.StatusCanceled)
}

func (s *DefaultCheckInService) GetStats() (*StatsResponse, apierror.ErrorResponse) {
	now := utils.NowUTC()
	today, err := s.CheckinRepo.FindCreatedBetween(utils.StartOfDayUTC(now), now+1)
	if err != nil {
		log.Errorf("failed to fetch today's check-ins: %v", err)
		return nil, apierror.InternalServerError
	}

	stats := &StatsResponse{TotalCheckins: len(today)}
	serviceCounts := map[string]int{}
	stylistCounts := map[string]int{}
	for _, checkin := range today {
		if checkin.CheckInMethod == queue.MethodOnline {
			stats.OnlineCheckins++
		} else {
			stats.WalkinCheckins++
		}
		for _, name := range checkin.Services {
			serviceCounts[name]++
		}
		stylistCounts[checkin.Stylist]++
	}

	stats.TopServices = topCounts(serviceCounts, 5)
	stats.TopStylists = topCounts(stylistCounts, 5)
	return stats, nil
}

func (s *DefaultCheckInService) transition(id int, to string) (*CheckInResponse, apierror.ErrorResponse) {
	checkin, err := s.CheckinRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch check-in %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if checkin == nil {
		return nil, apierror.NotFoundError
	}

	if !queue.CanTransition(checkin.Status, to) {
		return nil, apierror.NewInvalidTransitionError(checkin.Status, to)
	}

	checkin.Status = to
	checkin.UpdatedAt = utils.NowUTC()
	if err := s.CheckinRepo.Save(checkin); err != nil {
		log.Errorf("failed to update check-in %d to %q: %v", id, to, err)
		return nil, apierror.InternalServerError
	}
	return toCheckInResponse(checkin), nil
}

func (s *DefaultCheckInService) requestConfirmation(checkin *entity.CheckIn) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := s.Notifier.ConfirmCheckin(ctx, notify.ConfirmationPayload{
		CheckinID: checkin.ID,
		Name:      checkin.Name,
		Email:     *checkin.Email,
		Stylist:   checkin.Stylist,
		Services:  checkin.Services,
	})
	if err != nil {
		// Best effort only. The check-in already succeeded.
		log.Errorf("failed to enqueue confirmation for check-in %d: %v", checkin.ID, err)
	}
}

func topCounts(counts map[string]int, limit int) []NameCount {
	ranked := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, NameCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func toCheckInResponse(checkin *entity.CheckIn) *CheckInResponse {
	return &CheckInResponse{
		ID:            checkin.ID,
		Name:          checkin.Name,
		Phone:         checkin.Phone,
		Services:      checkin.Services,
		Stylist:       checkin.Stylist,
		Status:        checkin.Status,
		CheckInMethod: checkin.CheckInMethod,
		PreferredTime: checkin.PreferredTime,
		Notes:         checkin.Notes,
		CreatedAt:     utils.FormatEpoch(checkin.CreatedAt),
	}
}
