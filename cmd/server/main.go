package main

import (
	"fmt"
	"log"

	"gamehub/backend/internal/config"
	"gamehub/backend/internal/database"
	"gamehub/backend/internal/handler"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/server"
	"gamehub/backend/internal/upload"

	// Swagger imports
	_ "gamehub/backend/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           GameHub API
// @version         1.0
// @description     REST API for the user-submitted indie game catalog.
// @host            localhost:3000
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()
	defer logger.Sync()

	dsn := config.AppConfig.DatabaseURL
	if config.AppConfig.DBDriver != "postgres" {
		dsn = config.AppConfig.DatabasePath
	}
	database.Connect(config.AppConfig.DBDriver, dsn)

	uploads, err := upload.NewPipeline(config.AppConfig.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directories: %v", err)
	}
	handler.Uploads = uploads

	router := server.NewRouter()

	addr := ":" + config.AppConfig.Port
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", config.AppConfig.Port)
	log.Fatal(router.Run(addr))
}
