package view

import (
	"sort"

	"jaego-backend/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func collator() *collate.Collator {
	return collate.New(language.Korean)
}

// Sort - 표 보기 전용 정렬. 원본 슬라이스는 건드리지 않고 복사본을 돌려준다.
// 이름은 한국어 로캘 기준, 나머지 필드는 숫자 값 기준.
func Sort(products []models.Product, field SortField, desc bool) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	var less func(a, b models.Product) bool
	switch field {
	case SortByName:
		coll := collator()
		less = func(a, b models.Product) bool { return coll.CompareString(a.Name, b.Name) < 0 }
	case SortByQuantity:
		less = func(a, b models.Product) bool { return a.Quantity < b.Quantity }
	case SortByPurchasePrice:
		less = func(a, b models.Product) bool { return a.PurchasePrice < b.PurchasePrice }
	case SortBySalePrice:
		less = func(a, b models.Product) bool { return a.SalePrice < b.SalePrice }
	case SortByMarginRate:
		less = func(a, b models.Product) bool { return a.MarginRate < b.MarginRate }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Apply - 상태 하나로 필터와 정렬을 한 번에 적용한다.
// 정렬은 표 보기에서만 의미가 있다.
func Apply(products []models.Product, s State) []models.Product {
	filtered := Filter(products, s.Search, s.Supplier)
	if s.Mode == ModeTable && s.SortField != "" {
		return Sort(filtered, s.SortField, s.SortDesc)
	}
	return filtered
}
