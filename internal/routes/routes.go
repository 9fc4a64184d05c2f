package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hirely-api/internal/config"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/hirely-api/internal/infra/repository"
	"github.com/BruksfildServices01/hirely-api/internal/middleware"
	"github.com/BruksfildServices01/hirely-api/internal/token"
	ucAdmin "github.com/BruksfildServices01/hirely-api/internal/usecase/admin"
	ucAuth "github.com/BruksfildServices01/hirely-api/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/hirely-api/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/hirely-api/internal/usecase/catalog"
	ucProfile "github.com/BruksfildServices01/hirely-api/internal/usecase/profile"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra *Infra) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// REPOSITORIES
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	sessionRepo := infraRepo.NewSessionGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	tokens := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	hasher := ucAuth.NewHasher(cfg.BcryptCost)

	// ======================================================
	// USE CASES - AUTH
	// ======================================================
	signupUC := ucAuth.NewSignup(userRepo, hasher, infra.Audit, cfg.VerifyEmailDomain)
	loginUC := ucAuth.NewLogin(userRepo, sessionRepo, hasher, tokens)
	logoutUC := ucAuth.NewLogout(sessionRepo)
	changePasswordUC := ucAuth.NewChangePassword(userRepo, sessionRepo, hasher, infra.Audit)
	seedAdminUC := ucAuth.NewSeedAdmin(userRepo, hasher, infra.Audit, cfg.AdminSeedSecret)
	rolesUC := ucAuth.NewListSignupRoles(userRepo)

	// ======================================================
	// USE CASES - CATALOG
	// ======================================================
	listServicesUC := ucCatalog.NewListServices(catalogRepo, infra.Cache, cfg.CacheTTL)
	manageServicesUC := ucCatalog.NewManageServices(catalogRepo, infra.Cache, infra.Audit)
	listOfferingsUC := ucCatalog.NewListOfferings(catalogRepo)
	providersByServiceUC := ucCatalog.NewListProvidersByService(catalogRepo, infra.Cache, cfg.CacheTTL)
	registerOfferingsUC := ucCatalog.NewRegisterOfferings(catalogRepo, infra.Cache, infra.Audit)
	manageOfferingUC := ucCatalog.NewManageOffering(catalogRepo, infra.Cache, infra.Audit)
	providerProfileUC := ucCatalog.NewGetProviderProfile(catalogRepo, bookingRepo)
	updateProviderProfileUC := ucCatalog.NewUpdateProviderProfile(catalogRepo, infra.Cache, infra.Audit)
	availabilityUC := ucCatalog.NewCheckAvailability(catalogRepo)

	// ======================================================
	// USE CASES - BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, infra.Notifier, infra.Audit)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, infra.Notifier, infra.Audit)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	providerStatsUC := ucBooking.NewProviderStats(bookingRepo)
	reviewUC := ucBooking.NewCreateReview(bookingRepo, infra.Cache, infra.Audit)
	checkoutUC := ucBooking.NewCheckout(bookingRepo, infra.Payments)

	// ======================================================
	// USE CASES - PROFILE / ADMIN
	// ======================================================
	getProfileUC := ucProfile.NewGetProfile(userRepo)
	updateProfileUC := ucProfile.NewUpdateProfile(userRepo, infra.Cache, infra.Audit)
	uploadImageUC := ucProfile.NewUploadImage(userRepo, infra.Uploader, infra.Cache, infra.Audit)
	getSettingsUC := ucProfile.NewGetSettings(userRepo)
	updateSettingsUC := ucProfile.NewUpdateSettings(userRepo)

	listUsersUC := ucAdmin.NewListUsers(userRepo)
	setUserStatusUC := ucAdmin.NewSetUserStatus(userRepo, sessionRepo, infra.Cache, infra.Audit)
	deleteUserUC := ucAdmin.NewDeleteUser(userRepo, infra.Cache, infra.Audit)
	adminStatsUC := ucAdmin.NewStats(userRepo, catalogRepo, bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		signupUC,
		loginUC,
		logoutUC,
		changePasswordUC,
		seedAdminUC,
		rolesUC,
	)
	meHandler := handlers.NewMeHandler(getProfileUC)

	catalogHandler := handlers.NewCatalogHandler(
		listServicesUC,
		manageServicesUC,
		listOfferingsUC,
		providersByServiceUC,
	)

	providerHandler := handlers.NewProviderHandler(
		registerOfferingsUC,
		listOfferingsUC,
		manageOfferingUC,
		providerProfileUC,
		updateProviderProfileUC,
		availabilityUC,
		listBookingsUC,
		providerStatsUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateStatusUC,
		getBookingUC,
		listBookingsUC,
		reviewUC,
		checkoutUC,
	)

	userHandler := handlers.NewUserHandler(
		getProfileUC,
		updateProfileUC,
		uploadImageUC,
		getSettingsUC,
		updateSettingsUC,
	)

	adminHandler := handlers.NewAdminHandler(
		listUsersUC,
		updateProfileUC,
		setUserStatusUC,
		deleteUserUC,
		adminStatsUC,
		updateStatusUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	auth := middleware.AuthMiddleware(tokens, sessionRepo)

	// password change authenticates with the current password
	r.POST("/password/change", authHandler.ChangePassword)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.POST("/admin/login", authHandler.AdminLogin)
		api.POST("/admin/seed", authHandler.SeedAdmin)
		api.POST("/password/change", authHandler.ChangePassword)
		api.GET("/roles", authHandler.Roles)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/provider-services", catalogHandler.ListOfferings)
		api.GET("/service-providers", catalogHandler.ListOfferings)
		api.GET("/providers/by-service/:id", catalogHandler.ProvidersByService)

		api.GET("/provider/:id/profile", providerHandler.Profile)
		api.GET("/provider/:id/availability", providerHandler.Availability)
		api.GET("/provider/:id/services", providerHandler.ListServices)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(auth)
		{
			secured.POST("/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.PUT("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.POST("/bookings/:id/review", bookingHandler.Review)
			secured.POST("/bookings/:id/checkout", bookingHandler.Checkout)

			// ------------------------------
			// USERS
			// ------------------------------
			self := middleware.SelfOrAdmin("id")

			secured.GET("/users/:id/bookings", self, bookingHandler.ListForUser)
			secured.GET("/users/:id/profile", self, userHandler.GetProfile)
			secured.PUT("/users/:id/profile", self, userHandler.UpdateProfile)
			secured.PUT("/users/:id/profile-image", self, userHandler.UploadImage)
			secured.GET("/users/:id/settings", self, userHandler.GetSettings)
			secured.PUT("/users/:id/settings", self, userHandler.UpdateSettings)

			// ------------------------------
			// PROVIDER DASHBOARD
			// ------------------------------
			providerOnly := middleware.RequireRoles(user.RoleProvider, user.RoleAdmin)

			secured.POST("/provider/services", providerOnly, providerHandler.RegisterServices)
			secured.PUT("/provider/:id/services/:serviceRowId", providerOnly, self, providerHandler.UpdateService)
			secured.DELETE("/provider/:id/services/:serviceRowId", providerOnly, self, providerHandler.DeleteService)
			secured.PUT("/provider/:id/profile", providerOnly, self, providerHandler.UpdateProfile)
			secured.GET("/provider/:id/bookings", self, providerHandler.Bookings)
			secured.GET("/provider/:id/stats", self, providerHandler.Stats)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(auth, middleware.RequireRoles(user.RoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.PUT("/users/:id/status", adminHandler.SetUserStatus)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.POST("/services", catalogHandler.CreateService)
			admin.PUT("/services/:id", catalogHandler.UpdateService)
			admin.DELETE("/services/:id", catalogHandler.DeleteService)

			admin.GET("/bookings", bookingHandler.ListAll)
			admin.PUT("/bookings/:id", adminHandler.UpdateBooking)

			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
