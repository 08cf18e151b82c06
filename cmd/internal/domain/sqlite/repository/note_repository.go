package repository

import (
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (r *DefaultNoteRepository) Save(note *entity.Note) error {
	return r.db.Save(note).Error
}

func (r *DefaultNoteRepository) FindByCheckinID(checkinID int) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := r.db.
		Where("checkin_id = ?", checkinID).
		Order("created_at desc").
		Find(&notes).Error
	return notes, err
}

// FindByPhoneStylist gathers notes across every visit this customer made
// to this stylist. Notes are stored per check-in but read per
// relationship, so a stylist sees the full history with a repeat client.
func (r *DefaultNoteRepository) FindByPhoneStylist(phone, stylist string) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := r.db.
		Joins("JOIN check_ins ON check_ins.id = notes.checkin_id").
		Where("check_ins.phone = ?", phone).
		Where("check_ins.stylist = ?", stylist).
		Order("notes.created_at desc").
		Find(&notes).Error
	return notes, err
}
