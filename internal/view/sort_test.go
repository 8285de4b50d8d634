package view

import (
	"testing"

	"jaego-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func ids(products []models.Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func reverse(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[len(products)-1-i] = p
	}
	return out
}

func TestSort(t *testing.T) {
	products := sampleProducts()

	t.Run("이름 오름차순", func(t *testing.T) {
		got := Sort(products, SortByName, false)
		// Wireless Keyboard < 모니터 받침대 < 무선 마우스 < USB 허브 는
		// 로캘에 따라 다르므로 정렬 결과의 순서 불변식만 확인한다
		coll := collator()
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, coll.CompareString(got[i-1].Name, got[i].Name), 0)
		}
	})

	t.Run("수량 오름차순", func(t *testing.T) {
		got := Sort(products, SortByQuantity, false)
		assert.Equal(t, []uint{1, 2, 4, 3}, ids(got))
	})

	t.Run("수량 내림차순", func(t *testing.T) {
		got := Sort(products, SortByQuantity, true)
		assert.Equal(t, []uint{3, 4, 2, 1}, ids(got))
	})

	t.Run("구입가 정렬", func(t *testing.T) {
		got := Sort(products, SortByPurchasePrice, false)
		assert.Equal(t, []uint{3, 1, 2, 4}, ids(got))
	})

	t.Run("판매가 정렬", func(t *testing.T) {
		got := Sort(products, SortBySalePrice, true)
		assert.Equal(t, []uint{4, 2, 1, 3}, ids(got))
	})

	t.Run("마진율 정렬", func(t *testing.T) {
		got := Sort(products, SortByMarginRate, false)
		assert.Equal(t, []uint{4, 3, 1, 2}, ids(got))
	})

	t.Run("원본 보존", func(t *testing.T) {
		before := ids(products)
		Sort(products, SortByQuantity, true)
		assert.Equal(t, before, ids(products))
	})

	// 같은 필드 내림차순 == 오름차순의 역순 (이름이 모두 다른 목록 기준)
	t.Run("내림차순은 오름차순의 역순", func(t *testing.T) {
		asc := Sort(products, SortByName, false)
		desc := Sort(asc, SortByName, true)
		assert.Equal(t, ids(reverse(asc)), ids(desc))
	})
}

func TestStateToggle(t *testing.T) {
	s := State{}

	s = s.Toggle(SortByName)
	assert.Equal(t, SortByName, s.SortField)
	assert.False(t, s.SortDesc)

	// 같은 필드는 방향만 뒤집는다
	s = s.Toggle(SortByName)
	assert.Equal(t, SortByName, s.SortField)
	assert.True(t, s.SortDesc)

	s = s.Toggle(SortByName)
	assert.False(t, s.SortDesc)

	// 새 필드는 오름차순으로 초기화
	s.SortDesc = true
	s = s.Toggle(SortByQuantity)
	assert.Equal(t, SortByQuantity, s.SortField)
	assert.False(t, s.SortDesc)
}

func TestApply(t *testing.T) {
	products := sampleProducts()

	t.Run("표 보기에서만 정렬", func(t *testing.T) {
		state := State{Mode: ModeTable, SortField: SortByQuantity}
		got := Apply(products, state)
		assert.Equal(t, []uint{1, 2, 4, 3}, ids(got))

		// grid/list는 필터만 적용하고 순서는 유지
		state.Mode = ModeGrid
		got = Apply(products, state)
		assert.Equal(t, ids(products), ids(got))
	})

	t.Run("필터와 정렬 조합", func(t *testing.T) {
		state := State{Supplier: "쿠팡", Mode: ModeTable, SortField: SortByQuantity, SortDesc: true}
		got := Apply(products, state)
		assert.Equal(t, []uint{3, 1}, ids(got))
	})
}

func TestParseViewMode(t *testing.T) {
	assert.Equal(t, ModeTable, ParseViewMode("table"))
	assert.Equal(t, ModeList, ParseViewMode("list"))
	assert.Equal(t, ModeGrid, ParseViewMode("grid"))
	assert.Equal(t, ModeGrid, ParseViewMode(""))
	assert.Equal(t, ModeGrid, ParseViewMode("unknown"))
}

func TestParseSortField(t *testing.T) {
	for _, valid := range []string{"name", "quantity", "purchase_price", "sale_price", "margin_rate"} {
		field, ok := ParseSortField(valid)
		assert.True(t, ok)
		assert.Equal(t, SortField(valid), field)
	}

	_, ok := ParseSortField("created_at")
	assert.False(t, ok)
}
