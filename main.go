package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"contactdesk/pkg/backend"
	"contactdesk/pkg/config"
	"contactdesk/pkg/storage"
	"contactdesk/routes"
)

func main() {
	// config init via package init()

	be, err := backend.Select(config.DatabaseURL, config.SQLitePath)
	if err != nil {
		log.Fatalf("failed to initialize storage backend: %v", err)
	}
	log.Printf("[backend] using %s", be.Kind)

	files, err := storage.NewAttachments(config.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("templates/*")

	routes.RegisterRoutes(r, be, files)
	r.Run(":" + config.Port)
}
