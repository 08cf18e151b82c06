package entity

type InventoryItem struct {
	ID         int    `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Stock      int    `gorm:"not null"`
	CostCents  int64  `gorm:"not null"`
	PriceCents int64  `gorm:"not null"`
	IsActive   bool   `gorm:"not null"`
	CreatedAt  int64  `gorm:"not null"`
	UpdatedAt  int64  `gorm:"not null"`
}
