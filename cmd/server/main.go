package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/auth"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/config"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/handler"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/library"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/loader"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/store"

	"github.com/gin-gonic/gin"
)

func init() {
	config.LoadConfig()
}

// @title           Board Game App API
// @version         1.0
// @description     Catalog search, collections and reviews for a personal board game library.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// One-time bulk import of the game database. Nothing serves until the
	// catalog is complete.
	cat := catalog.New()
	if err := loader.ImportXML(config.AppConfig.CatalogFile, cat); err != nil {
		log.Fatalf("Failed to load game catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d games", cat.Len())

	db, err := store.Open(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Replay persisted reviews so ratings are current before the first query.
	if err := store.ApplyReviews(db, cat); err != nil {
		log.Fatalf("Failed to apply stored reviews: %v", err)
	}

	lib := library.New(db, cat)
	h := handler.New(lib, db)

	router := gin.Default()

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.RegisterUser)
			authRoutes.POST("/login", h.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", h.GetMe)
		}

		// Catalog routes (browsing is public, reviewing is not)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.OptionalAuthMiddleware())
		{
			gameRoutes.GET("", h.GetGames)
			gameRoutes.GET("/:id", h.GetGameByID)
		}
		reviewRoutes := apiV1.Group("/games")
		reviewRoutes.Use(auth.AuthMiddleware())
		{
			reviewRoutes.POST("/:id/reviews", h.SubmitReview)
			reviewRoutes.GET("/:id/reviews/me", h.GetMyReview)
		}

		// Collection routes (protected)
		collectionRoutes := apiV1.Group("/collections")
		collectionRoutes.Use(auth.AuthMiddleware())
		{
			collectionRoutes.GET("", h.GetCollections)
			collectionRoutes.POST("", h.CreateCollection)
			collectionRoutes.DELETE("/:name", h.DeleteCollection)
			collectionRoutes.GET("/:name/games", h.GetCollectionGames)
			collectionRoutes.POST("/:name/games/:gameID", h.AddCollectionGame)
			collectionRoutes.DELETE("/:name/games/:gameID", h.RemoveCollectionGame)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ListenAddr)
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
