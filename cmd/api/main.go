// ================== cmd/api/main.go ==================
//
// @title Cyber Threat Reporting Portal API
// @version 1.0
// @description Citizen threat reports with optimistic-concurrency triage and a live dashboard event stream
// @host localhost:4000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	docs "github.com/cyberportal/api/docs"
	"github.com/cyberportal/api/internal/config"
	"github.com/cyberportal/api/internal/database"
	"github.com/cyberportal/api/internal/features/catalog"
	"github.com/cyberportal/api/internal/features/realtime"
	"github.com/cyberportal/api/internal/middleware"
	"github.com/cyberportal/api/internal/pkg/response"
	"github.com/cyberportal/api/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load config
	cfg := config.Load()

	// Configure Swagger metadata at runtime
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	// Connect to MongoDB
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer db.Disconnect(context.Background())

	// Seed the immutable catalogs before serving traffic
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalog.NewRepository(db.Database).Seed(seedCtx); err != nil {
		log.Fatal("Failed to seed catalogs:", err)
	}
	cancelSeed()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"time": time.Now().Unix()})
	})

	// Swagger documentation
	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
		),
	)

	// One hub for the whole process, injected into the mutation path
	hub := realtime.NewHub()

	routes.SetupRoutes(router, db.Database, cfg, hub)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
