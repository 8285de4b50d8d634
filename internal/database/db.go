package database

import (
	"log"

	"jaego-backend/internal/config"
	"jaego-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("데이터베이스에 연결할 수 없습니다: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate 에러: %v", err)
	}

	log.Println("데이터베이스 연결 성공. 마이그레이션 완료.")
}

// Migrate - 테스트 DB 초기화에서도 같은 스키마를 쓰도록 분리해 둔다.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Supplier{},
	)
}
