package upload

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// POST /api/upload
func UploadImageHandler(client *Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "파일이 없습니다.")
		}

		if !client.Configured() {
			return fiber.NewError(fiber.StatusInternalServerError, "Cloudinary 설정이 없습니다.")
		}

		f, err := fileHeader.Open()
		if err != nil {
			log.Println("업로드 파일 열기 에러:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "이미지 업로드에 실패했습니다.")
		}
		defer f.Close()

		image, err := Process(f)
		if err != nil {
			log.Println("이미지 처리 에러:", err)
			return fiber.NewError(fiber.StatusBadRequest, "이미지 파일을 처리할 수 없습니다.")
		}

		result, err := client.Upload(c.UserContext(), image, "image/jpeg")
		if err != nil {
			log.Println("업로드 에러:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "이미지 업로드에 실패했습니다.")
		}

		return c.JSON(result)
	}
}
