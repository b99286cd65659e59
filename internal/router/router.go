package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/zhufei/sports-backend/internal/config"
	"github.com/zhufei/sports-backend/internal/handler"
	"github.com/zhufei/sports-backend/internal/middleware"
	"github.com/zhufei/sports-backend/internal/response"
	"github.com/zhufei/sports-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Course  *handler.CourseHandler
	Booking *handler.BookingHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	loginLimiter *middleware.RateLimiter,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger())

	// A panicking handler must still yield exactly one generic response;
	// the detail stays in the server log.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Str("request_id", response.RequestID(c)).
			Msg("Recovered from panic in handler")
		response.AbortFail(c, http.StatusInternalServerError, response.MsgInternal)
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Auth ──────────────────────────────────────────────────────────
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)
		auth.GET("/me", middleware.RequireAdminJWT(authService), handlers.Auth.Me)
	}

	// ─── Courses (public, read-only) ───────────────────────────────────
	courses := router.Group("/api/courses")
	{
		courses.GET("", handlers.Course.List)
		courses.GET("/:id", handlers.Course.Get)
	}

	// ─── Bookings ──────────────────────────────────────────────────────
	bookings := router.Group("/api/bookings")
	{
		// Creation is the one public write on the whole API.
		bookings.POST("", handlers.Booking.Create)

		admin := bookings.Group("")
		admin.Use(middleware.RequireAdminJWT(authService))
		{
			admin.GET("", handlers.Booking.List)
			admin.GET("/stats", handlers.Booking.Stats)
			admin.GET("/search", handlers.Booking.Search)
			admin.GET("/number/:number", handlers.Booking.GetByNumber)
			admin.GET("/:id", handlers.Booking.Get)
			admin.PUT("/:id/status", handlers.Booking.UpdateStatus)
		}
	}

	// ─── WebSocket (admin live feed) ───────────────────────────────────
	ws := router.Group("/ws/admin")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/bookings/stream", handlers.WS.BookingStream)
	}

	// Unmatched routes produce the uniform 404 envelope.
	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.MsgRouteNotFound)
	})

	return router
}
