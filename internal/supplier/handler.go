package supplier

import (
	"log"
	"strings"

	"jaego-backend/internal/database"
	"jaego-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SupplierResponse struct {
	Name string `json:"name"`
}

// GET /api/suppliers
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var suppliers []models.Supplier
		if err := database.DB.Order("name asc").Find(&suppliers).Error; err != nil {
			log.Println("구매처 조회 에러:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "구매처 목록을 불러오는데 실패했습니다.")
		}

		res := make([]SupplierResponse, 0, len(suppliers))
		for _, s := range suppliers {
			res = append(res, SupplierResponse{Name: s.Name})
		}
		return c.JSON(res)
	}
}

// Upsert - 구매처 이름을 insert-or-ignore로 저장한다. 빈 이름은 무시.
// 제품 등록/수정 트랜잭션 안에서 제품 저장 전에 호출된다.
func Upsert(db *gorm.DB, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Supplier{Name: name}).Error
}
