package view

// StockBadge - 수량 기준 3단계 재고 표시.
type StockBadge int

const (
	StockOut StockBadge = iota
	StockLow
	StockNormal
)

const lowStockThreshold = 10

// ClassifyStock - 0 → 품절, 1~9 → 재고 부족, 10 이상 → 정상.
func ClassifyStock(quantity int) StockBadge {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity < lowStockThreshold:
		return StockLow
	default:
		return StockNormal
	}
}

func (b StockBadge) String() string {
	switch b {
	case StockOut:
		return "out_of_stock"
	case StockLow:
		return "low_stock"
	default:
		return "normal"
	}
}

// Label - 화면에 보여줄 한국어 라벨.
func (b StockBadge) Label() string {
	switch b {
	case StockOut:
		return "품절"
	case StockLow:
		return "재고 부족"
	default:
		return "정상"
	}
}
