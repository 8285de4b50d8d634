package view

// ViewMode - 목록 화면 표시 방식. 데이터에는 영향이 없는 순수한 렌더링 선택.
type ViewMode string

const (
	ModeGrid  ViewMode = "grid"
	ModeList  ViewMode = "list"
	ModeTable ViewMode = "table"
)

// ParseViewMode - 알 수 없는 값은 기본 보기(grid)로 처리한다.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ModeList:
		return ModeList
	case ModeTable:
		return ModeTable
	default:
		return ModeGrid
	}
}

// SortField - 표 보기에서 정렬 가능한 컬럼.
type SortField string

const (
	SortByName          SortField = "name"
	SortByQuantity      SortField = "quantity"
	SortByPurchasePrice SortField = "purchase_price"
	SortBySalePrice     SortField = "sale_price"
	SortByMarginRate    SortField = "margin_rate"
)

func ParseSortField(s string) (SortField, bool) {
	switch SortField(s) {
	case SortByName, SortByQuantity, SortByPurchasePrice, SortBySalePrice, SortByMarginRate:
		return SortField(s), true
	default:
		return "", false
	}
}

// State - 목록 화면의 검색/필터/정렬 상태. 전역 가변 상태 대신 값으로 다루고,
// 변경할 때마다 새 값을 만들어 (products, state) → 화면 목록을 순수 함수로 계산한다.
type State struct {
	Search    string
	Supplier  string
	Mode      ViewMode
	SortField SortField
	SortDesc  bool
}

// Toggle - 같은 필드를 다시 선택하면 방향을 뒤집고,
// 다른 필드를 선택하면 오름차순부터 시작한다.
func (s State) Toggle(field SortField) State {
	if s.SortField == field {
		s.SortDesc = !s.SortDesc
	} else {
		s.SortField = field
		s.SortDesc = false
	}
	return s
}
