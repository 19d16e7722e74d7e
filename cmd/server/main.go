package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"nigerland_backend/internal/handlers"
	authMiddleware "nigerland_backend/internal/middleware"
	"nigerland_backend/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Database
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is optional; catalog caching and the notification marker
	// degrade gracefully without it
	var cache *services.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err = services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Redis connection failed: %v", err)
			cache = nil
		}
	} else {
		log.Println("Warning: REDIS_URL not set, caching disabled")
	}

	// Payment gateway
	secretKey := os.Getenv("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		log.Println("Warning: PAYSTACK_SECRET_KEY not set, payment features will fail")
	}
	gateway := services.NewPaystackService(secretKey)

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	// Core services
	emailService := services.NewEmailService()
	mailer := services.NewMailer(emailService)
	tokens := services.NewTokenService()
	refs := services.NewReferenceGenerator()
	payments := services.NewPaymentService(db, gateway, cache, refs, frontendURL)

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = authMiddleware.CustomErrorHandler
	e.Validator = handlers.NewValidator()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, tokens)
	registrationHandler := handlers.NewRegistrationHandler(db, payments, mailer, refs)
	bookHandler := handlers.NewBookHandler(db, cache, payments, mailer, refs)
	trainingHandler := handlers.NewTrainingHandler(db, cache, payments, mailer, refs)
	morelifeHandler := handlers.NewMoreLifeHandler(db, payments, mailer, refs)
	contactHandler := handlers.NewContactHandler(db, mailer)
	adminHandler := handlers.NewAdminHandler(db, cache)

	api := e.Group("/api")

	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Nigerland Consult API", "status": "running"})
	})

	// Auth
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/verify", authHandler.VerifyToken, authMiddleware.RequireAuth(tokens))

	// Conference registrations and payments
	api.POST("/registrations/conference", registrationHandler.Create)
	api.POST("/conference/register-and-pay", registrationHandler.RegisterAndPay)
	api.POST("/payments/initialize", registrationHandler.InitializePayment)
	api.POST("/payments/verify", registrationHandler.VerifyPayment)

	// Books
	api.GET("/books", bookHandler.List)
	api.GET("/books/:book_id", bookHandler.Get)
	api.POST("/books/purchase", bookHandler.Purchase)
	api.POST("/books/purchase/verify", bookHandler.VerifyPayment)
	api.POST("/books/purchase/:purchase_id/payment", bookHandler.InitializePayment)
	api.GET("/books/purchase/user/:email", bookHandler.ListUserPurchases)

	// Training
	api.GET("/training/programs", trainingHandler.ListPrograms)
	api.POST("/training/enroll", trainingHandler.Enroll)
	api.POST("/training/enrollment/verify", trainingHandler.VerifyPayment)
	api.POST("/training/enrollment/:enrollment_id/payment", trainingHandler.InitializePayment)

	// MoreLife assessments
	api.POST("/morelife/assessment", morelifeHandler.CreateAssessment)
	api.POST("/morelife/assessment/verify", morelifeHandler.VerifyPayment)
	api.POST("/morelife/assessment/:assessment_id/payment", morelifeHandler.InitializePayment)

	// Contact
	api.POST("/contact", contactHandler.Create)

	// Admin routes
	admin := api.Group("", authMiddleware.RequireAuth(tokens))
	admin.GET("/registrations", registrationHandler.List)
	admin.GET("/registrations/:registration_id", registrationHandler.Get)
	admin.PUT("/registrations/:registration_id/status", registrationHandler.UpdateStatus)
	admin.GET("/books/purchases", bookHandler.ListPurchases)
	admin.GET("/training/enrollments", trainingHandler.ListEnrollments)
	admin.GET("/morelife/assessments", morelifeHandler.ListAssessments)
	admin.PUT("/morelife/assessment/:assessment_id/status", morelifeHandler.UpdateAssessmentStatus)
	admin.DELETE("/morelife/assessment/:assessment_id", morelifeHandler.DeleteAssessment)
	admin.GET("/contact/messages", contactHandler.List)
	admin.PUT("/contact/messages/:message_id/status", contactHandler.UpdateStatus)

	admin.GET("/admin/stats", adminHandler.Stats)
	admin.GET("/admin/analytics/revenue", adminHandler.RevenueAnalytics)

	admin.GET("/admin/conferences", adminHandler.ListConferences)
	admin.POST("/admin/conferences", adminHandler.CreateConference)
	admin.PUT("/admin/conferences/:conference_id", adminHandler.UpdateConference)
	admin.DELETE("/admin/conferences/:conference_id", adminHandler.DeleteConference)

	admin.GET("/admin/team", adminHandler.ListTeamMembers)
	admin.POST("/admin/team", adminHandler.CreateTeamMember)
	admin.PUT("/admin/team/:member_id", adminHandler.UpdateTeamMember)
	admin.DELETE("/admin/team/:member_id", adminHandler.DeleteTeamMember)

	admin.GET("/admin/projects", adminHandler.ListProjects)
	admin.POST("/admin/projects", adminHandler.CreateProject)
	admin.PUT("/admin/projects/:project_id", adminHandler.UpdateProject)
	admin.DELETE("/admin/projects/:project_id", adminHandler.DeleteProject)

	admin.GET("/admin/announcements", adminHandler.ListAnnouncements)
	admin.POST("/admin/announcements", adminHandler.CreateAnnouncement)
	admin.PUT("/admin/announcements/:announcement_id", adminHandler.UpdateAnnouncement)
	admin.DELETE("/admin/announcements/:announcement_id", adminHandler.DeleteAnnouncement)

	admin.POST("/admin/books", adminHandler.CreateBook)
	admin.PUT("/admin/books/:book_id", adminHandler.UpdateBook)
	admin.DELETE("/admin/books/:book_id", adminHandler.DeleteBook)

	admin.GET("/admin/trainings", adminHandler.ListTrainingPrograms)
	admin.POST("/admin/trainings", adminHandler.CreateTrainingProgram)
	admin.PUT("/admin/trainings/:training_id", adminHandler.UpdateTrainingProgram)
	admin.DELETE("/admin/trainings/:training_id", adminHandler.DeleteTrainingProgram)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
