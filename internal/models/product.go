package models

import "time"

// Product - 재고 품목 한 건. margin_rate는 클라이언트가 계산해 보낸 값을
// 그대로 저장하며 서버에서 다시 계산하지 않는다.
type Product struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:200;not null"`
	ImageURL      *string `gorm:"size:500"`
	PurchasePrice float64 `gorm:"not null"`
	SalePrice     float64 `gorm:"not null"`
	MarginRate    float64 `gorm:"not null;default:0"`
	Quantity      int     `gorm:"not null;default:0"`
	Link          *string `gorm:"size:500"`
	Supplier      *string `gorm:"size:200"`
	PurchaseDate  *string `gorm:"size:10"` // YYYY-MM-DD
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
