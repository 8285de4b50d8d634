package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string

	// Cloudinary signed upload 자격 증명
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env 파일이 없습니다. 시스템 환경 변수를 그대로 사용합니다.")
	}

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=jaego port=5432 sslmode=disable"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}

	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=jaego port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN 기본값을 사용 중입니다. 운영 환경에서는 반드시 자체 Postgres 접속 정보를 설정하세요.")
	}
	if cfg.CORSOrigins == "http://localhost:3000" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS 기본값을 사용 중입니다. 운영 환경에서는 반드시 자체 도메인을 설정하세요.")
	}
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		// 업로드 요청 시점에 500으로 처리되므로 기동 자체는 막지 않는다
		log.Println("[WARN] Cloudinary 환경 변수가 설정되지 않았습니다. 이미지 업로드는 실패합니다.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
