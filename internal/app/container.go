package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vvbakhanovich/shareit/internal/api"
	"github.com/vvbakhanovich/shareit/internal/auth"
	"github.com/vvbakhanovich/shareit/internal/booking"
	"github.com/vvbakhanovich/shareit/internal/events"
	"github.com/vvbakhanovich/shareit/internal/item"
	"github.com/vvbakhanovich/shareit/internal/itemrequest"
	"github.com/vvbakhanovich/shareit/internal/pkg/ratelimit"
	"github.com/vvbakhanovich/shareit/internal/user"
)

// accessTokenTTL only bounds tokens minted locally by GenerateAccessToken.
const accessTokenTTL = 15 * time.Minute

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       *zerolog.Logger

	JWTSecret       string
	TrustUserHeader bool

	// Redis is optional; without it the rate limiter keeps counters in memory.
	Redis             *redis.Client
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Publisher receives booking lifecycle events; nil logs them instead.
	Publisher events.Publisher
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Publisher  events.Publisher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	var jwtManager *auth.JWTManager
	if cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, accessTokenTTL)
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NewLogPublisher(cfg.Logger)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Item and Request Modules share the item repository: answers to a
	// request are items that reference it.
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	requestService := itemrequest.NewService(requestRepo, userService, item.NewRequestAnswers(itemRepo))

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, userService, requestService, booking.NewItemBookings(bookingRepo))
	bookingService := booking.NewService(bookingRepo, userService, itemRepo, publisher, cfg.Logger)

	var limiter ratelimit.Limiter
	if cfg.RateLimitRequests > 0 {
		if cfg.Redis != nil {
			limiter = ratelimit.NewRedisLimiter(cfg.Redis, cfg.RateLimitRequests, cfg.RateLimitWindow)
		} else {
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		}
	}

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		Logger:          cfg.Logger,
		Limiter:         limiter,
		HealthCheck:     cfg.DBPool.Ping,
		UserService:     userService,
		ItemService:     itemService,
		RequestService:  requestService,
		BookingService:  bookingService,
		JWTManager:      jwtManager,
		TrustUserHeader: cfg.TrustUserHeader,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Publisher:  publisher,
	}
}
