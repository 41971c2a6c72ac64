package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/internal/auth"
	"github.com/voyago/backoffice/internal/bookings"
	"github.com/voyago/backoffice/internal/customers"
	"github.com/voyago/backoffice/internal/dashboard"
	"github.com/voyago/backoffice/internal/destinations"
	"github.com/voyago/backoffice/internal/i18n"
	"github.com/voyago/backoffice/internal/notifications"
	"github.com/voyago/backoffice/internal/packages"
	"github.com/voyago/backoffice/internal/payments"
	"github.com/voyago/backoffice/internal/uploads"
	"github.com/voyago/backoffice/internal/users"
	"github.com/voyago/backoffice/pkg/models"
)

// Services bundles every module service the server exposes.
type Services struct {
	Auth          *auth.Service
	Users         *users.Service
	Customers     *customers.Service
	Destinations  *destinations.Service
	Packages      *packages.Service
	Bookings      *bookings.Service
	Payments      *payments.Service
	Notifications *notifications.Service
	Dashboard     *dashboard.Service
	Uploads       *uploads.Service
}

// Server is the HTTP surface of the back office.
type Server struct {
	router     *gin.Engine
	logger     *zap.Logger
	translator *i18n.Translator
	tokens     *auth.TokenManager
	svc        Services
}

// NewServer wires middleware and routes around the given services.
func NewServer(logger *zap.Logger, translator *i18n.Translator, tokens *auth.TokenManager, svc Services) *Server {
	s := &Server{
		logger:     logger,
		translator: translator,
		tokens:     tokens,
		svc:        svc,
	}

	registerValidators()

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(s.metricsMiddleware())

	s.router = router
	s.registerRoutes()
	return s
}

// Start runs the server on the given address.
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting API server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router returns the gin engine for testing and for embedding in an
// http.Server.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) registerRoutes() {
	// Static serving of uploaded files.
	if s.svc.Uploads != nil {
		s.router.Static("/uploads", s.svc.Uploads.Dir())
	}

	v1 := s.router.Group("/api/v1")

	// The locale guard runs on every route, public ones included, so even
	// anonymous error responses are translated.
	v1.Use(s.localeMiddleware())

	v1.GET("/health", s.healthCheck)
	v1.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
	}

	// Public reads.
	v1.GET("/destinations", s.listDestinations)
	v1.GET("/destinations/:id", s.getDestination)
	v1.GET("/packages", s.listPackages)
	v1.GET("/packages/:id", s.getPackage)

	// Everything below requires a valid bearer token.
	protected := v1.Group("")
	protected.Use(s.authMiddleware())
	{
		usersGroup := protected.Group("/users", s.requireRoles(models.RoleAdmin))
		{
			usersGroup.POST("", s.createUser)
			usersGroup.GET("", s.listUsers)
			usersGroup.GET("/:id", s.getUser)
			usersGroup.PATCH("/:id", s.updateUser)
			usersGroup.DELETE("/:id", s.deleteUser)
			usersGroup.DELETE("", s.deleteUsers)
		}

		customersGroup := protected.Group("/customers")
		{
			customersGroup.POST("", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.createCustomer)
			customersGroup.GET("", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.listCustomers)
			customersGroup.GET("/:id", s.getCustomer)
			customersGroup.PATCH("/:id", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.updateCustomer)
			customersGroup.DELETE("/:id", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.deleteCustomer)
			customersGroup.DELETE("", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.deleteCustomers)
		}

		destinationsGroup := protected.Group("/destinations", s.requireRoles(models.RoleAdmin, models.RoleAgent))
		{
			destinationsGroup.POST("", s.createDestination)
			destinationsGroup.PATCH("/:id", s.updateDestination)
			destinationsGroup.DELETE("/:id", s.deleteDestination)
			destinationsGroup.DELETE("", s.deleteDestinations)
		}

		packagesGroup := protected.Group("/packages", s.requireRoles(models.RoleAdmin, models.RoleAgent))
		{
			packagesGroup.POST("", s.createPackage)
			packagesGroup.PATCH("/:id", s.updatePackage)
			packagesGroup.DELETE("/:id", s.deletePackage)
			packagesGroup.DELETE("", s.deletePackages)
		}

		bookingsGroup := protected.Group("/bookings")
		{
			bookingsGroup.POST("", s.createBooking)
			bookingsGroup.GET("", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.listBookings)
			bookingsGroup.GET("/:id", s.getBooking)
			bookingsGroup.PATCH("/:id", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.updateBooking)
			bookingsGroup.DELETE("/:id", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.deleteBooking)
			bookingsGroup.DELETE("", s.requireRoles(models.RoleAdmin, models.RoleAgent), s.deleteBookings)
		}

		paymentsGroup := protected.Group("/payments", s.requireRoles(models.RoleAdmin, models.RoleAgent))
		{
			paymentsGroup.POST("", s.createPayment)
			paymentsGroup.GET("", s.listPayments)
			paymentsGroup.GET("/:id", s.getPayment)
			paymentsGroup.PATCH("/:id", s.updatePayment)
			paymentsGroup.DELETE("/:id", s.deletePayment)
			paymentsGroup.DELETE("", s.deletePayments)
		}

		notificationsGroup := protected.Group("/notifications")
		{
			notificationsGroup.POST("", s.createNotification)
			notificationsGroup.GET("/user/:userId", s.listNotificationsByUser)
			notificationsGroup.PATCH("/:id/read", s.markNotificationRead)
			notificationsGroup.PATCH("/user/:userId/read-all", s.markAllNotificationsRead)
			notificationsGroup.DELETE("/:id", s.deleteNotification)
		}

		dashboardGroup := protected.Group("/dashboard", s.requireRoles(models.RoleAdmin, models.RoleAgent))
		{
			dashboardGroup.GET("/stats", s.dashboardStats)
		}

		uploadsGroup := protected.Group("/uploads", s.requireRoles(models.RoleAdmin, models.RoleAgent))
		{
			uploadsGroup.POST("/image", s.uploadImage)
			uploadsGroup.DELETE("/:fileName", s.deleteUpload)
		}
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}
