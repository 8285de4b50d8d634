package main

import (
	"log"
	"strings"

	"jaego-backend/internal/config"
	"jaego-backend/internal/database"
	"jaego-backend/internal/product"
	"jaego-backend/internal/supplier"
	"jaego-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("예상치 못한 에러:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "예상치 못한 서버 오류가 발생했습니다.",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	uploader := upload.NewClient(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)

	api := app.Group("/api")

	// 제품 (view 라우트는 :id보다 먼저 등록해야 한다)
	api.Get("/products", product.ListProductsHandler())
	api.Get("/products/view", product.ListProductViewHandler())
	api.Get("/products/:id", product.GetProductHandler())
	api.Post("/products", product.CreateProductHandler())
	api.Put("/products/:id", product.UpdateProductHandler())
	api.Delete("/products/:id", product.DeleteProductHandler())

	// 구매처
	api.Get("/suppliers", supplier.ListSuppliersHandler())

	// 이미지 업로드
	api.Post("/upload", upload.UploadImageHandler(uploader))

	log.Println("서버 실행 중 port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
