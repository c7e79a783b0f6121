package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kavitha-salon/salon-api/config"
	"github.com/kavitha-salon/salon-api/controllers"
	"github.com/kavitha-salon/salon-api/lifecycle"
	"github.com/kavitha-salon/salon-api/middleware"
	"github.com/kavitha-salon/salon-api/migrations"
	"github.com/kavitha-salon/salon-api/notify"
	"github.com/kavitha-salon/salon-api/services"
	"github.com/kavitha-salon/salon-api/stores"
)

func main() {
	log.Println("Starting Kavitha Beauty Salon API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrations.Apply(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	userStore := stores.NewUserStore(db)
	if err := userStore.SeedAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	var imageService services.ImageService
	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.NewS3Service(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		imageService = services.NewImageService(s3Service)
	} else {
		// No bucket configured means the gallery runs without real storage.
		log.Println("AWS_S3_BUCKET not set, gallery uploads will be mocked")
		imageService = services.NewMockImageService()
	}

	notifier := notify.NewLogNotifier(cfg.MailSender)

	router := buildRouter(db, imageService, notifier)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildRouter wires stores, lifecycle, and controllers into the Gin engine.
func buildRouter(db *gorm.DB, imageService services.ImageService, notifier notify.Notifier) *gin.Engine {
	appointmentStore := stores.NewAppointmentStore(db)
	contactStore := stores.NewContactStore(db)
	userStore := stores.NewUserStore(db)
	galleryStore := stores.NewGalleryStore(db)
	lc := lifecycle.New(appointmentStore, notifier)

	bookingCtrl := controllers.NewBookingController(appointmentStore)
	contactCtrl := controllers.NewContactController(contactStore)
	adminCtrl := controllers.NewAdminController(appointmentStore, contactStore, lc)
	authCtrl := controllers.NewAuthController(userStore)
	galleryCtrl := controllers.NewGalleryController(galleryStore, imageService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true, // session cookies ride on form posts
	}))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)

		v1.GET("/services", bookingCtrl.ListServices)
		v1.POST("/bookings", bookingCtrl.CreateBooking)
		v1.POST("/contact", contactCtrl.SubmitContact)
		v1.GET("/gallery", galleryCtrl.ListGallery)

		v1.POST("/register", authCtrl.Register)
		v1.POST("/login", authCtrl.UserLogin)
		v1.POST("/admin/login", authCtrl.AdminLogin)
		v1.POST("/logout", authCtrl.Logout)

		admin := v1.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/appointments", adminCtrl.ListAppointments)
			admin.GET("/messages", adminCtrl.ListMessages)
			admin.PATCH("/appointments/:id", adminCtrl.UpdateAppointment)
			admin.POST("/appointments/:id/confirm", adminCtrl.ConfirmAppointment)
			admin.POST("/gallery", galleryCtrl.UploadGalleryImage)
			admin.DELETE("/gallery/:id", galleryCtrl.DeleteGalleryImage)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Kavitha Beauty Salon API is running",
	})
}
