package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsProduction bool

	// SecretKey signs the admin session cookie.
	SecretKey string

	// Admin credentials. AdminPasswordHash (bcrypt) wins over the plaintext
	// AdminPassword when both are set.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	// DatabaseURL is a MySQL DSN; empty means the embedded sqlite backend.
	DatabaseURL string
	SQLitePath  string

	UploadDir string
	Port      string
)

func init() {
	AppEnv = os.Getenv("APP_ENV")
	IsProduction = AppEnv == "production"

	// do not load .env file in production
	if !IsProduction {
		if err := godotenv.Load(); err != nil {
			log.Printf("[config] no .env file, using process environment")
		}
	}

	SecretKey = os.Getenv("SECRET_KEY")
	AdminUsername = os.Getenv("ADMIN_USERNAME")
	AdminPassword = os.Getenv("ADMIN_PASSWORD")
	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	DatabaseURL = os.Getenv("DATABASE_URL")
	SQLitePath = os.Getenv("SQLITE_PATH")
	UploadDir = os.Getenv("UPLOAD_DIR")
	Port = os.Getenv("PORT")

	if SQLitePath == "" {
		SQLitePath = "contactdesk.db"
	}
	if UploadDir == "" {
		UploadDir = "./uploads"
	}
	if Port == "" {
		Port = "5000"
	}
	if AdminUsername == "" {
		AdminUsername = "admin"
	}

	if SecretKey == "" {
		if IsProduction {
			log.Fatal("SECRET_KEY must be set in production")
		}
		SecretKey = "change-this-later"
		log.Printf("[config] SECRET_KEY not set, using insecure default")
	}

	if AdminPassword == "" && AdminPasswordHash == "" {
		if IsProduction {
			log.Fatal("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in production")
		}
		AdminPassword = "admin123"
		log.Printf("[config] admin password not set, using insecure default")
	}

	log.Printf("[config] AppEnv=%s networkedBackend=%v uploads=%s port=%s",
		AppEnv, DatabaseURL != "", UploadDir, Port)
}
