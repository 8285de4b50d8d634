package product

import (
	"errors"
	"log"
	"strings"

	"jaego-backend/internal/database"
	"jaego-backend/internal/models"
	"jaego-backend/internal/supplier"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// -------------------------
// Request/Response Types
// -------------------------

// ProductRequest - 등록과 수정이 같은 전체 필드 교체 형식을 쓴다.
// 가격 필드는 "없음"과 "명시적 0"을 구분해야 해서 포인터로 받는다.
type ProductRequest struct {
	Name          string   `json:"name"`
	ImageURL      *string  `json:"image_url"`
	PurchasePrice *float64 `json:"purchase_price"`
	SalePrice     *float64 `json:"sale_price"`
	MarginRate    float64  `json:"margin_rate"`
	Quantity      *int     `json:"quantity"`
	Link          *string  `json:"link"`
	Supplier      *string  `json:"supplier"`
	PurchaseDate  *string  `json:"purchase_date"`
}

type ProductResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	ImageURL      *string `json:"image_url"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	MarginRate    float64 `json:"margin_rate"`
	Quantity      int     `json:"quantity"`
	Link          *string `json:"link"`
	Supplier      *string `json:"supplier"`
	PurchaseDate  *string `json:"purchase_date"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func toResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		ImageURL:      p.ImageURL,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		MarginRate:    p.MarginRate,
		Quantity:      p.Quantity,
		Link:          p.Link,
		Supplier:      p.Supplier,
		PurchaseDate:  p.PurchaseDate,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (r *ProductRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" || r.PurchasePrice == nil || r.SalePrice == nil {
		return fiber.NewError(fiber.StatusBadRequest, "필수 항목을 입력해주세요.")
	}
	if *r.PurchasePrice < 0 || *r.SalePrice < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "가격은 0 이상이어야 합니다.")
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "수량은 0 이상이어야 합니다.")
	}
	return nil
}

// apply - 요청을 모델에 반영한다. 수정 요청도 전체 필드를 다시 보내는
// 형식이므로 등록과 수정이 같은 경로를 쓴다. margin_rate는 보낸 값 그대로 저장.
func (r *ProductRequest) apply(p *models.Product) {
	p.Name = strings.TrimSpace(r.Name)
	p.ImageURL = normalize(r.ImageURL)
	p.PurchasePrice = *r.PurchasePrice
	p.SalePrice = *r.SalePrice
	p.MarginRate = r.MarginRate
	if r.Quantity != nil {
		p.Quantity = *r.Quantity
	} else {
		p.Quantity = 0
	}
	p.Link = normalize(r.Link)
	p.Supplier = normalize(r.Supplier)
	p.PurchaseDate = normalize(r.PurchaseDate)
}

// normalize - 공백뿐인 값은 null로 저장한다.
func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// saveWithSupplier - 구매처 upsert와 제품 저장을 한 트랜잭션으로 묶는다.
func saveWithSupplier(p *models.Product, save func(tx *gorm.DB) error) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if p.Supplier != nil {
			if err := supplier.Upsert(tx, *p.Supplier); err != nil {
				return err
			}
		}
		return save(tx)
	})
}

// -------------------------
// Product CRUD
// -------------------------

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("created_at desc, id desc").Find(&products).Error; err != nil {
			log.Println("제품 조회 에러:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "제품 목록을 불러오는데 실패했습니다.")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toResponse(p))
		}
		return c.JSON(res)
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusNotFound, "제품을 찾을 수 없습니다.")
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "제품을 찾을 수 없습니다.")
			}
			log.Println("제품 조회 에러:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "제품을 불러오는데 실패했습니다.")
		}
		return c.JSON(toResponse(p))
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
		}
		if err := body.validate(); err != nil {
			return err
		}

		var p models.Product
		body.apply(&p)

		err := saveWithSupplier(&p, func(tx *gorm.DB) error {
			return tx.Create(&p).Error
		})
		if err != nil {
			log.Println("제품 생성 에러:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "제품 등록에 실패했습니다.")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(p))
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusNotFound, "제품을 찾을 수 없습니다.")
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "제품을 찾을 수 없습니다.")
			}
			log.Println("제품 조회 에러:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "제품을 불러오는데 실패했습니다.")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
		}
		if err := body.validate(); err != nil {
			return err
		}

		body.apply(&p)

		saveErr := saveWithSupplier(&p, func(tx *gorm.DB) error {
			return tx.Save(&p).Error
		})
		if saveErr != nil {
			log.Println("제품 수정 에러:", saveErr)
			return fiber.NewError(fiber.StatusInternalServerError, "제품 수정에 실패했습니다.")
		}

		return c.JSON(toResponse(p))
	}
}

// DELETE /api/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusNotFound, "제품을 찾을 수 없습니다.")
		}

		res := database.DB.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			log.Println("제품 삭제 에러:", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "제품 삭제에 실패했습니다.")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "제품을 찾을 수 없습니다.")
		}

		return c.JSON(fiber.Map{"message": "제품이 삭제되었습니다."})
	}
}
