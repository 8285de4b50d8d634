package models

import "time"

// Supplier - 구매처. 제품 등록/수정 시 upsert로만 채워지고 삭제되지 않는다.
type Supplier struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null;uniqueIndex"`
	CreatedAt time.Time
}
