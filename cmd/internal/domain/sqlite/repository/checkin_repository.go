package repository

import (
	"errors"

	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/queue"
	"gorm.io/gorm"
)

type DefaultCheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *DefaultCheckInRepository {
	return &DefaultCheckInRepository{db: db}
}

func (r *DefaultCheckInRepository) FindByID(id int) (*entity.CheckIn, error) {
	var checkin entity.CheckIn
	err := r.db.First(&checkin, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &checkin, err
}

// FindActive returns the board: everyone Waiting or Now Serving, oldest
// check-in first.
func (r *DefaultCheckInRepository) FindActive() ([]*entity.CheckIn, error) {
	var checkins []*entity.CheckIn
	err := r.db.
		Where("status IN ?", []string{queue.StatusWaiting, queue.StatusNowServing}).
		Order("created_at asc").
		Find(&checkins).Error
	return checkins, err
}

// FindWaitingByStylist is the estimator's snapshot read. It runs as a
// single query so a concurrent status change cannot be half-visible.
func (r *DefaultCheckInRepository) FindWaitingByStylist(stylist string) ([]*entity.CheckIn, error) {
	var checkins []*entity.CheckIn
	err := r.db.
		Where("stylist = ?", stylist).
		Where("status = ?", queue.StatusWaiting).
		Order("created_at asc").
		Find(&checkins).Error
	return checkins, err
}

func (r *DefaultCheckInRepository) FindCreatedBetween(start, end int64) ([]*entity.CheckIn, error) {
	var checkins []*entity.CheckIn
	err := r.db.
		Where("created_at >= ?", start).
		Where("created_at < ?", end).
		Order("created_at asc").
		Find(&checkins).Error
	return checkins, err
}

func (r *DefaultCheckInRepository) Save(checkin *entity.CheckIn) error {
	return r.db.Save(checkin).Error
}
