// Package routes defines the API routing configuration.
// It wires repositories, services and handlers together and applies the
// middleware each route group needs.
package routes

import (
	"log"
	"time"

	"paygate/internal/config"
	"paygate/internal/handlers"
	"paygate/internal/middleware"
	"paygate/internal/models"
	"paygate/internal/ratelimit"
	"paygate/internal/repositories"
	"paygate/internal/services/audit"
	"paygate/internal/services/proxy"
	"paygate/internal/services/walletconn"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const walletConnectionRoute = "wallet-connection"

// LimiterFactory builds the rate limiter for one gateway route.
type LimiterFactory func(scope string) ratelimit.Limiter

// Gateway holds the public payment routes.
type Gateway struct {
	Proxies      []*handlers.ProxyHandler
	Wallet       *handlers.WalletConnectionHandler
	NewLimiter   LimiterFactory
	AllowOrigins string
}

// Admin holds the operator routes.
type Admin struct {
	JWTSecret       string
	AllowOrigins    string
	IntegrationLogs *handlers.IntegrationLogHandler
}

// SetupRoutes configures all application routes. redisClient may be nil, in
// which case rate limiting stays in process memory.
func SetupRoutes(app *fiber.App, db *gorm.DB, redisClient *redis.Client) {
	logRepo := repositories.NewIntegrationLogRepository(db)
	auditLogger := audit.NewLogger(logRepo)
	forwarder := proxy.NewHTTPForwarder(config.GetDurationEnv("UPSTREAM_TIMEOUT", 30*time.Second))

	newProxy := func(p proxy.Provider) *handlers.ProxyHandler {
		return handlers.NewProxyHandler(proxy.NewService(
			p,
			repositories.NewCredentialRepository(db, p.CredentialTable),
			forwarder,
			auditLogger,
		))
	}

	origins := config.GetEnv("CORS_ALLOW_ORIGINS", "*")

	app.Get("/health", handlers.NewHealthHandler(db, redisClient).Check)

	RegisterGateway(app, Gateway{
		Proxies: []*handlers.ProxyHandler{
			newProxy(proxy.CBDC.WithBaseURL(config.GetEnv("CBDC_API_URL", ""))),
			newProxy(proxy.WiPay.WithBaseURL(config.GetEnv("WIPAY_API_URL", ""))),
		},
		Wallet: handlers.NewWalletConnectionHandler(
			walletconn.NewService(repositories.NewMerchantWalletRepository(db)),
		),
		NewLimiter:   NewLimiterFactory(redisClient),
		AllowOrigins: origins,
	})

	RegisterAdmin(app, Admin{
		JWTSecret:       config.GetEnv("ADMIN_JWT_SECRET", ""),
		AllowOrigins:    origins,
		IntegrationLogs: handlers.NewIntegrationLogHandler(logRepo),
	})
}

// RegisterGateway mounts the proxy and wallet routes. Each route gets its own
// limiter. OPTIONS is answered before the limiter runs.
func RegisterGateway(router fiber.Router, gw Gateway) {
	corsHeaders := middleware.CORSHeaders(gw.AllowOrigins)

	mount := func(route string, handler fiber.Handler) {
		path := "/" + route
		router.Options(path, corsHeaders, middleware.Preflight)
		router.Post(path, corsHeaders, middleware.RateLimit(gw.NewLimiter(route)), handler)
	}

	for _, h := range gw.Proxies {
		mount(h.Route(), h.Handle)
	}
	mount(walletConnectionRoute, gw.Wallet.Handle)
}

// RegisterAdmin mounts the bearer-protected operator API under /admin.
func RegisterAdmin(router fiber.Router, a Admin) {
	if a.JWTSecret == "" {
		log.Println("⚠️ ADMIN_JWT_SECRET not set, admin routes disabled")
		return
	}

	admin := router.Group("/admin",
		cors.New(cors.Config{
			AllowOrigins: a.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET,OPTIONS",
		}),
		limiter.New(limiter.Config{
			Max:        config.GetIntEnv("ADMIN_RATE_LIMIT_MAX", 30),
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}),
		middleware.AdminAuth(a.JWTSecret),
	)

	admin.Get("/integration-logs",
		middleware.HasPermission(models.PermissionIntegrationLogsRead),
		a.IntegrationLogs.List,
	)
}

// NewLimiterFactory picks the limiter backend from RATE_LIMIT_BACKEND. The
// redis backend needs a client; without one it falls back to memory.
func NewLimiterFactory(redisClient *redis.Client) LimiterFactory {
	cfg := ratelimit.Config{
		Limit:    config.GetIntEnv("RATE_LIMIT_MAX", ratelimit.DefaultLimit),
		Interval: config.GetDurationEnv("RATE_LIMIT_WINDOW", ratelimit.DefaultInterval),
	}

	backend := config.GetEnv("RATE_LIMIT_BACKEND", "memory")
	if backend == "redis" && redisClient == nil {
		log.Println("⚠️ RATE_LIMIT_BACKEND=redis but redis is unavailable, using in-memory limiter")
		backend = "memory"
	}

	return func(scope string) ratelimit.Limiter {
		if backend == "redis" {
			return ratelimit.NewRedisLimiter(redisClient, scope, cfg)
		}
		return ratelimit.NewMemoryLimiter(cfg)
	}
}
