package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mri-dashboard/internal/config"
	"mri-dashboard/internal/database"
	"mri-dashboard/internal/handlers"
	"mri-dashboard/internal/inference"
	"mri-dashboard/internal/middleware"
	"mri-dashboard/internal/pipeline"
	"mri-dashboard/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to initialize object store: %v", err)
	}

	analyzer := inference.NewClient(cfg.InferenceURL)
	ingest := pipeline.New(store, analyzer, &handlers.GormScanRecorder{DB: db})
	server := handlers.NewServer(db, ingest, store, cfg.SessionMaxAge)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := router.Group("/api")
	{
		public.POST("/auth/register", server.Register)
		public.POST("/auth/login", server.Login)
	}

	protected := router.Group("/api")
	protected.Use(middleware.RequireAuth(db))
	{
		protected.POST("/auth/logout", server.Logout)
		protected.GET("/me", server.Me)

		protected.POST("/patients", server.CreatePatient)
		protected.GET("/patients", server.ListPatients)

		protected.POST("/scans", server.UploadScan)
		protected.GET("/scans", server.ListScans)
		protected.GET("/scans/recent", server.RecentScans)

		protected.GET("/overview", server.Overview)
	}

	log.Printf("Server starting on :%s", cfg.ListenPort)
	if err := router.Run(":" + cfg.ListenPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
