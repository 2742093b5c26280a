package router

import (
	"portfolio-api/cache"
	"portfolio-api/config"
	"portfolio-api/handlers"
	"portfolio-api/helper"
	"portfolio-api/middleware"
	"portfolio-api/repositories"
	"portfolio-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a gin engine.
func New(cfg *config.Config, db *gorm.DB, log *logrus.Logger, c cache.Cache) *gin.Engine {
	h := helper.NewHTTPHelper(log)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	certificationRepo := repositories.NewCertificationRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)
	articleRepo := repositories.NewArticleRepository(db)

	// Initialize services
	validator := services.NewValidator()
	tokens := services.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)
	resolver := services.NewAdminResolver(userRepo, c, log)
	authService := services.NewAuthService(userRepo, tokens, resolver, validator, log)
	profileService := services.NewProfileService(userRepo, resolver, validator)
	educationService := services.NewEducationService(educationRepo, userRepo, resolver, validator)
	certificationService := services.NewCertificationService(certificationRepo, userRepo, resolver, validator)
	testimonialService := services.NewTestimonialService(testimonialRepo, userRepo, resolver, validator, log)
	articleService := services.NewArticleService(articleRepo, userRepo, resolver, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, h)
	authHandler := handlers.NewAuthHandler(authService, h, handlers.CookieConfig{
		Name:   cfg.AuthCookieName,
		Secure: cfg.AuthCookieSecure,
		MaxAge: cfg.JWTExpiration,
	})
	profileHandler := handlers.NewProfileHandler(profileService, h)
	educationHandler := handlers.NewEducationHandler(educationService, h)
	certificationHandler := handlers.NewCertificationHandler(certificationService, h)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService, h)
	articleHandler := handlers.NewArticleHandler(articleService, h)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestLogger(log))

	authenticated := middleware.AuthMiddleware(tokens, h)
	requireAdmin := middleware.RequireAdmin(h)
	admin := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{authenticated, requireAdmin, handler}
	}
	loginProtection := middleware.NewLoginProtection(cfg.LoginRateLimit, cfg.LoginBurst, h, log)

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", loginProtection.Handler(), authHandler.Register)
			auth.POST("/login", loginProtection.Handler(), authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/verify", authHandler.Verify)
			auth.GET("/first-admin-user", authHandler.FirstAdminUser)
			auth.PUT("/password", authenticated, authHandler.ChangePassword)
			if cfg.IsDevelopment() {
				auth.POST("/dev-login", authHandler.DevLogin)
			}
		}

		profile := api.Group("/profile")
		{
			profile.GET("/auth/profile", admin(profileHandler.GetOwnProfile)...)
			profile.PUT("/auth/profile", admin(profileHandler.UpdateOwnProfile)...)
			profile.GET("/:id", profileHandler.GetProfile)
		}

		education := api.Group("/education")
		{
			education.GET("", educationHandler.GetEducations)
			education.GET("/:id", educationHandler.GetEducation)
			education.POST("", admin(educationHandler.CreateEducation)...)
			education.PUT("/:id", admin(educationHandler.UpdateEducation)...)
			education.DELETE("/:id", admin(educationHandler.DeleteEducation)...)
		}

		certifications := api.Group("/certifications")
		{
			certifications.GET("", certificationHandler.GetCertifications)
			certifications.GET("/:id", certificationHandler.GetCertification)
			certifications.POST("", admin(certificationHandler.CreateCertification)...)
			certifications.PUT("/:id", admin(certificationHandler.UpdateCertification)...)
			certifications.DELETE("/:id", admin(certificationHandler.DeleteCertification)...)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", testimonialHandler.GetPublicTestimonials)
			testimonials.GET("/admin", admin(testimonialHandler.GetTestimonials)...)
			testimonials.GET("/:id", admin(testimonialHandler.GetTestimonial)...)
			testimonials.POST("", admin(testimonialHandler.CreateTestimonial)...)
			testimonials.PUT("/:id", admin(testimonialHandler.UpdateTestimonial)...)
			testimonials.PUT("/:id/approve", admin(testimonialHandler.ApproveTestimonial)...)
			testimonials.PUT("/:id/reject", admin(testimonialHandler.RejectTestimonial)...)
			testimonials.DELETE("/:id", admin(testimonialHandler.DeleteTestimonial)...)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetPublicArticles)
			articles.GET("/slug/:slug", articleHandler.GetPublicArticle)
			articles.GET("/admin", admin(articleHandler.GetArticles)...)
			articles.GET("/:id", admin(articleHandler.GetArticle)...)
			articles.POST("", admin(articleHandler.CreateArticle)...)
			articles.PUT("/:id", admin(articleHandler.UpdateArticle)...)
			articles.DELETE("/:id", admin(articleHandler.DeleteArticle)...)
		}
	}

	return router
}
