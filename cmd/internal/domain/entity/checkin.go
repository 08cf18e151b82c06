package entity

// CheckIn is one customer's visit. Rows are never deleted; a canceled
// visit keeps its row with a terminal status.
type CheckIn struct {
	ID            int      `gorm:"primaryKey"`
	Name          string   `gorm:"not null"`
	Phone         string   `gorm:"not null;index"`
	Services      []string `gorm:"serializer:json;not null"`
	Stylist       string   `gorm:"not null;index"`
	Status        string   `gorm:"not null;index"`
	CheckInMethod string   `gorm:"not null"`
	PreferredTime *string
	Email         *string
	Notes         *string
	CreatedAt     int64 `gorm:"not null;index"` // Queue ordering key, immutable
	UpdatedAt     int64 `gorm:"not null"`
}
