package entity

// Note is an append-only annotation on a check-in. Edits are modeled as
// new notes, never updates in place.
type Note struct {
	ID        int    `gorm:"primaryKey"`
	CheckinID int    `gorm:"not null;index"` // References: check_ins(id)
	NoteType  string `gorm:"not null"`
	Text      string `gorm:"not null"`
	CreatedBy string
	CreatedAt int64 `gorm:"not null"`
}
