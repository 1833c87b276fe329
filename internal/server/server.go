package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gamehub/backend/internal/auth"
	"gamehub/backend/internal/config"
	"gamehub/backend/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with all routes, middleware, static
// serving and the SPA fallback.
func NewRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(corsConfig()))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Uploaded images and archives
	if handler.Uploads != nil {
		router.Static("/uploads", handler.Uploads.BaseDir())
	}

	api := router.Group("/api")
	{
		api.POST("/register", handler.RegisterUser)
		api.POST("/login", handler.LoginUser)

		// Catalog routes (public; an optional token adds viewer flags)
		games := api.Group("/games")
		games.Use(auth.OptionalAuthMiddleware())
		{
			games.GET("", handler.GetGames)
			games.GET("/popular", handler.GetPopularGames)
			games.GET("/:id", handler.GetGameByID)
			games.POST("/:id/click", handler.ClickGame)
			games.GET("/:id/download", handler.DownloadGameFile)
		}

		// Catalog mutations (protected)
		gameMutations := api.Group("/games")
		gameMutations.Use(auth.AuthMiddleware())
		{
			gameMutations.POST("", handler.CreateGame)
			gameMutations.DELETE("/:id", handler.DeleteGame)
			gameMutations.POST("/:id/upload", handler.UploadGameFile)
		}

		// Profile routes (protected)
		profile := api.Group("/profile")
		profile.Use(auth.AuthMiddleware())
		{
			profile.GET("", handler.GetProfile)
			profile.GET("/games", handler.GetProfileGames)
			profile.POST("/games", handler.AddProfileGame)
			profile.GET("/games/:gameId", handler.CheckProfileGame)
			profile.DELETE("/games/:gameId", handler.RemoveProfileGame)

			profile.GET("/bookmarks", handler.GetBookmarks)
			profile.POST("/bookmarks", handler.AddBookmark)
			profile.DELETE("/bookmarks/:gameId", handler.RemoveBookmark)
		}

		// Public user profiles
		api.GET("/users/:username", handler.GetPublicProfile)
	}

	// Everything else is the compiled frontend; unknown paths fall back to
	// index.html for client-side routing.
	router.NoRoute(spaFallback(config.AppConfig.StaticDir))

	return router
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour // preflight cache

	origins := config.AppConfig.AllowedOrigins
	if config.AppConfig.IsProduction() && origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}

func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(index)
	}
}
