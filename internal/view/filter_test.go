package view

import (
	"testing"

	"jaego-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "무선 마우스", Supplier: strPtr("쿠팡"), Quantity: 0, PurchasePrice: 8000, SalePrice: 15000, MarginRate: 87.5},
		{ID: 2, Name: "Wireless Keyboard", Supplier: strPtr("알리"), Quantity: 5, PurchasePrice: 12000, SalePrice: 25000, MarginRate: 108.33},
		{ID: 3, Name: "USB 허브", Supplier: strPtr("쿠팡"), Quantity: 30, PurchasePrice: 5000, SalePrice: 9000, MarginRate: 80},
		{ID: 4, Name: "모니터 받침대", Supplier: nil, Quantity: 12, PurchasePrice: 20000, SalePrice: 32000, MarginRate: 60},
	}
}

func TestFilter(t *testing.T) {
	products := sampleProducts()

	t.Run("이름 부분 일치 대소문자 무시", func(t *testing.T) {
		got := Filter(products, "wireless", "")
		assert.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].ID)

		got = Filter(products, "마우스", "")
		assert.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].ID)
	})

	t.Run("구매처 일치", func(t *testing.T) {
		got := Filter(products, "", "쿠팡")
		assert.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ID)
		assert.Equal(t, uint(3), got[1].ID)
	})

	t.Run("이름과 구매처 AND 조건", func(t *testing.T) {
		got := Filter(products, "usb", "쿠팡")
		assert.Len(t, got, 1)
		assert.Equal(t, uint(3), got[0].ID)

		got = Filter(products, "마우스", "알리")
		assert.Empty(t, got)
	})

	t.Run("조건이 없으면 전부 통과", func(t *testing.T) {
		assert.Len(t, Filter(products, "", ""), len(products))
	})

	t.Run("구매처가 nil인 제품은 구매처 필터에서 제외", func(t *testing.T) {
		got := Filter(products, "", "없는구매처")
		assert.Empty(t, got)
	})

	// 빈 검색어일 때 filter(products, "", s) == 구매처 단독 필터
	t.Run("빈 검색어 가환성", func(t *testing.T) {
		for _, s := range []string{"", "쿠팡", "알리"} {
			assert.Equal(t, Filter(products, "", s), Filter(Filter(products, "", ""), "", s))
		}
	})
}

func TestSupplierOptions(t *testing.T) {
	products := sampleProducts()
	products = append(products,
		models.Product{ID: 5, Name: "중복 구매처", Supplier: strPtr("쿠팡")},
		models.Product{ID: 6, Name: "공백 구매처", Supplier: strPtr("   ")},
	)

	got := SupplierOptions(products)
	assert.Equal(t, []string{"알리", "쿠팡"}, got)
}

func TestNarrowOptions(t *testing.T) {
	options := []string{"알리익스프레스", "쿠팡", "네이버 스토어", "Amazon"}

	t.Run("부분 일치로 좁히기", func(t *testing.T) {
		assert.Equal(t, []string{"쿠팡"}, NarrowOptions(options, "쿠"))
		assert.Equal(t, []string{"Amazon"}, NarrowOptions(options, "ama"))
	})

	t.Run("빈 질의는 전체 유지", func(t *testing.T) {
		assert.Equal(t, options, NarrowOptions(options, ""))
	})

	t.Run("일치 없음", func(t *testing.T) {
		assert.Empty(t, NarrowOptions(options, "지마켓"))
	})
}
