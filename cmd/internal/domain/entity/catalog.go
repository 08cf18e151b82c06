package entity

type Service struct {
	ID              int    `gorm:"primaryKey"`
	Name            string `gorm:"not null;uniqueIndex"`
	PriceCents      int64  `gorm:"not null"`
	DurationMinutes int    `gorm:"not null"`
	IsActive        bool   `gorm:"not null"`
	CreatedAt       int64  `gorm:"not null"`
	UpdatedAt       int64  `gorm:"not null"`
}

type Stylist struct {
	ID       int    `gorm:"primaryKey"`
	Name     string `gorm:"not null;uniqueIndex"`
	IsActive bool   `gorm:"not null"`
}
