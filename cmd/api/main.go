package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"placementhub/internal/config"
	"placementhub/internal/database"
	"placementhub/internal/middleware"
	"placementhub/internal/modules/auth"
	"placementhub/internal/modules/company"
	"placementhub/internal/modules/internship"
	"placementhub/internal/modules/stats"
	"placementhub/internal/modules/student"
	"placementhub/internal/repository"
	"placementhub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(repository.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// Attachments and sessions
	files := storage.NewStore(cfg.UploadDir)
	sessions := auth.NewSessionManager(cfg.SessionTTL)
	go sweepSessions(sessions)

	// Services
	authService := auth.NewService(userRepo, sessions)
	studentService := student.NewService(studentRepo, files)
	internshipService := internship.NewService(internshipRepo, files)
	companyService := company.NewService(companyRepo)
	statsService := stats.NewService(studentRepo)

	// Handlers
	authHandler := auth.NewHandler(authService, auth.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: sameSiteMode(cfg.CookieSameSite),
		MaxAge:   int(cfg.SessionTTL / time.Second),
	})
	studentHandler := student.NewHandler(studentService)
	internshipHandler := internship.NewHandler(internshipService)
	companyHandler := company.NewHandler(companyService)
	statsHandler := stats.NewHandler(statsService, stats.NewStream(statsService))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.MaxMultipartMemory = storage.MaxFileSize

	// Stored attachments are served straight from disk.
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := r.Group("/api/v1")
	protected := r.Group("/api/v1")
	protected.Use(middleware.RequireSession(sessions))

	authHandler.RegisterRoutes(public)
	studentHandler.RegisterRoutes(public, protected)
	internshipHandler.RegisterRoutes(public, protected)
	companyHandler.RegisterRoutes(public, protected)
	statsHandler.RegisterRoutes(public)

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// sweepSessions evicts expired sessions in the background so the map does not
// grow with abandoned logins.
func sweepSessions(sessions *auth.SessionManager) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if removed := sessions.PurgeExpired(); removed > 0 {
			log.Printf("purged %d expired sessions", removed)
		}
	}
}

func sameSiteMode(mode string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}
