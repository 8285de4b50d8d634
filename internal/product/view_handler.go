package product

import (
	"log"

	"jaego-backend/internal/database"
	"jaego-backend/internal/models"
	"jaego-backend/internal/view"

	"github.com/gofiber/fiber/v2"
)

type ProductViewItem struct {
	ProductResponse
	MarginAmount float64 `json:"margin_amount"`
	StockBadge   string  `json:"stock_badge"`
	StockLabel   string  `json:"stock_label"`
}

type ProductViewResponse struct {
	Mode      string            `json:"mode"`
	Products  []ProductViewItem `json:"products"`
	Suppliers []string          `json:"suppliers"`
	Total     int               `json:"total"`
}

// GET /api/products/view?search=&supplier=&sort=&desc=&mode=
// 목록 화면 상태를 쿼리로 받아 필터/정렬이 끝난 목록과 구매처 제안을 한 번에 돌려준다.
// 구매처 제안은 필터 전 전체 컬렉션 기준이다. GET /api/products는 계속 무필터.
func ListProductViewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("created_at desc, id desc").Find(&products).Error; err != nil {
			log.Println("제품 조회 에러:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "제품 목록을 불러오는데 실패했습니다.")
		}

		state := view.State{
			Search:   c.Query("search"),
			Supplier: c.Query("supplier"),
			Mode:     view.ParseViewMode(c.Query("mode")),
			SortDesc: c.QueryBool("desc"),
		}
		if field, ok := view.ParseSortField(c.Query("sort")); ok {
			state.SortField = field
		}

		options := view.SupplierOptions(products)
		visible := view.Apply(products, state)

		items := make([]ProductViewItem, 0, len(visible))
		for _, p := range visible {
			badge := view.ClassifyStock(p.Quantity)
			items = append(items, ProductViewItem{
				ProductResponse: toResponse(p),
				MarginAmount:    view.MarginAmount(p.SalePrice, p.PurchasePrice),
				StockBadge:      badge.String(),
				StockLabel:      badge.Label(),
			})
		}

		return c.JSON(ProductViewResponse{
			Mode:      string(state.Mode),
			Products:  items,
			Suppliers: options,
			Total:     len(products),
		})
	}
}
