package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vvbakhanovich/shareit/internal/auth"
	"github.com/vvbakhanovich/shareit/internal/booking"
	bookingHttp "github.com/vvbakhanovich/shareit/internal/booking/http"
	"github.com/vvbakhanovich/shareit/internal/item"
	itemHttp "github.com/vvbakhanovich/shareit/internal/item/http"
	"github.com/vvbakhanovich/shareit/internal/itemrequest"
	requestHttp "github.com/vvbakhanovich/shareit/internal/itemrequest/http"
	"github.com/vvbakhanovich/shareit/internal/pkg/logging"
	"github.com/vvbakhanovich/shareit/internal/pkg/metrics"
	"github.com/vvbakhanovich/shareit/internal/pkg/ratelimit"
	"github.com/vvbakhanovich/shareit/internal/user"
	userHttp "github.com/vvbakhanovich/shareit/internal/user/http"
)

// Config holds everything the router needs to register module routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	Logger *zerolog.Logger
	// Limiter throttles requests per caller; nil disables limiting.
	Limiter ratelimit.Limiter
	// HealthCheck backs /healthz; nil always reports healthy.
	HealthCheck func(ctx context.Context) error

	UserService    user.Service
	ItemService    item.Service
	RequestService itemrequest.Service
	BookingService booking.Service

	JWTManager      *auth.JWTManager
	TrustUserHeader bool
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, logging, metrics, rate limiting) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), logging.Middleware(cfg.Logger), metrics.Middleware())

	corsConfig := cors.DefaultConfig()
	if origins := splitOrigins(cfg.ProdOrigins); cfg.IsProduction && len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
			"http://localhost:3000",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", auth.UserIDHeader}
	corsConfig.ExposeHeaders = []string{logging.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("")

	public := []gin.HandlerFunc{}
	protected := []gin.HandlerFunc{auth.AuthRequired(cfg.JWTManager, cfg.TrustUserHeader)}
	if cfg.Limiter != nil {
		// Keyed on the authenticated caller, so it must follow AuthRequired.
		limit := ratelimit.Middleware(cfg.Limiter, callerKey)
		public = append(public, limit)
		protected = append(protected, limit)
	}

	userHttp.RegisterRoutes(api, userHttp.NewHandler(cfg.UserService), public...)
	itemHttp.RegisterRoutes(api, itemHttp.NewHandler(cfg.ItemService), protected...)
	requestHttp.RegisterRoutes(api, requestHttp.NewHandler(cfg.RequestService), protected...)
	bookingHttp.RegisterRoutes(api, bookingHttp.NewHandler(cfg.BookingService), protected...)

	return r
}

// callerKey keys authenticated requests by user id and anonymous ones by client IP.
func callerKey(c *gin.Context) string {
	if id := auth.GetUserID(c); id > 0 {
		return "user:" + strconv.FormatInt(id, 10)
	}
	return "ip:" + c.ClientIP()
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
