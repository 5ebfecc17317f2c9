package main

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/backend"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/config"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/handlers"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/metrics"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/middleware"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/wizard"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	storage, err := session.Open(cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("failed to open session storage: %v", err)
	}

	metrics.Register()

	svc := backend.NewService(cfg.BackendURL, storage)

	hackathons := store.NewHackathonStore(svc)
	blog := store.NewBlogStore(svc)
	submissions := store.NewSubmissionStore(svc)
	adminAuth := store.NewAdminAuthStore(svc, storage)
	students := store.NewStudentStore(svc, storage)

	adminAuth.InitializeAuth()
	students.InitializeAuth()

	hub := ws.NewHub()
	hackathons.Subscribe(func(e store.Event) {
		hub.Broadcast("hackathons", ws.WSMessage{Type: e.Op, Data: e})
	})
	blog.Subscribe(func(e store.Event) {
		hub.Broadcast("blog", ws.WSMessage{Type: e.Op, Data: e})
	})
	submissions.Subscribe(func(e store.Event) {
		hub.Broadcast("submissions", ws.WSMessage{Type: e.Op, Data: e})
	})

	registry := wizard.NewRegistry(submissions, 30*time.Minute)
	registry.Start()
	defer registry.Stop()

	refreshSec, _ := strconv.Atoi(cfg.CacheRefreshSec)
	refresher := store.NewRefresher(hackathons, blog, time.Duration(refreshSec)*time.Second)
	refresher.Start()
	defer refresher.Stop()

	hackathonHandler := handlers.NewHackathonHandler(hackathons)
	blogHandler := handlers.NewBlogHandler(blog)
	submissionHandler := handlers.NewSubmissionHandler(submissions)
	wizardHandler := handlers.NewWizardHandler(registry)
	authHandler := handlers.NewAuthHandler(adminAuth)
	studentHandler := handlers.NewStudentHandler(students)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws/:topic", wsHandler.Subscribe)

	api := r.Group("/api/v1")
	{
		api.GET("/hackathons", hackathonHandler.List)
		api.GET("/hackathons/:slug", hackathonHandler.GetBySlug)

		api.GET("/blog", blogHandler.List)
		api.GET("/blog/:slug", blogHandler.GetBySlug)

		api.GET("/departments", studentHandler.Departments)

		wiz := api.Group("/wizard")
		{
			wiz.POST("", wizardHandler.Start)
			wiz.GET("/:id", wizardHandler.Get)
			wiz.PATCH("/:id", wizardHandler.Update)
			wiz.POST("/:id/next", wizardHandler.Next)
			wiz.POST("/:id/previous", wizardHandler.Previous)
			wiz.POST("/:id/submit", wizardHandler.Submit)
		}

		student := api.Group("/student")
		{
			student.POST("/login", studentHandler.Login)
			student.POST("/register", studentHandler.Register)
			student.POST("/logout", studentHandler.Logout)
			student.GET("/search", studentHandler.Search)

			profile := student.Group("/profile")
			profile.Use(middleware.RequireStudentSession(storage))
			{
				profile.GET("", studentHandler.Profile)
				profile.PUT("", studentHandler.UpdateProfile)
			}
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)
			admin.POST("/logout", authHandler.Logout)
			admin.GET("/session", authHandler.Session)

			protected := admin.Group("")
			protected.Use(middleware.RequireAdminSession(storage))
			{
				protected.GET("/metrics", authHandler.Metrics)
				protected.GET("/export", authHandler.Export)

				protected.POST("/hackathons", hackathonHandler.Create)
				protected.PUT("/hackathons/:id", hackathonHandler.Update)
				protected.PATCH("/hackathons/:id/status", hackathonHandler.UpdateStatus)
				protected.DELETE("/hackathons/:id", hackathonHandler.Delete)

				protected.GET("/blog", blogHandler.ListAll)
				protected.POST("/blog", blogHandler.Create)
				protected.PUT("/blog/:id", blogHandler.Update)
				protected.DELETE("/blog/:id", blogHandler.Delete)

				protected.GET("/submissions", submissionHandler.List)
				protected.GET("/submissions/:id", submissionHandler.Get)
				protected.PATCH("/submissions/:id/status", submissionHandler.UpdateStatus)
				protected.DELETE("/submissions/:id", submissionHandler.Delete)
			}
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
