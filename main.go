package main

import (
	"os"
	"strconv"
	"time"

	"agentkit-backend/controllers"
	"agentkit-backend/database"
	"agentkit-backend/kitcache"
	"agentkit-backend/middlewares"
	"agentkit-backend/routes"
	"agentkit-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultUpstream = "https://raw.githubusercontent.com/inference-labs-inc/agent-kit/main"

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// ---- Database (enquiries + rate limits)
	database.Connect()
	database.AutoMigrate()
	controllers.InitIntake(
		database.GormEnquiryStore{DB: database.DB},
		database.GormThrottleStore{DB: database.DB},
	)

	// ---- Edge cache for the agent-kit proxy
	var edgeCache kitcache.Provider = kitcache.NewMemCache()
	if utils.Env("KIT_CACHE", "memory") == "sqlite" {
		sqlite, err := kitcache.NewSQLiteCache(utils.Env("KIT_CACHE_PATH", "./kit-cache.db"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not open sqlite cache")
		}
		edgeCache = sqlite
	}
	if err := controllers.InitKit(controllers.KitConfig{
		UpstreamBase: utils.Env("AGENT_KIT_UPSTREAM", defaultUpstream),
	}, edgeCache); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// ---- Limits (configurable via env)
	// Fiber default BodyLimit is 4 * 1024 * 1024 bytes if unset (per docs).
	// We allow overriding with BODY_LIMIT_BYTES or BODY_LIMIT_MB.
	bodyLimitBytes := envInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = envInt("BODY_LIMIT_MB", 4) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    bodyLimitBytes,
	})

	// ---- Request ids for log correlation
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// ---- CORS
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// ---- Global rate limiter (coarse, per client IP; the enquiry
	// endpoint's own 24h throttle is separate and durable)
	rlMax := envInt("RATE_LIMIT_MAX", 60)
	rlWindow := time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
	app.Use(limiter.New(limiter.Config{
		Max:        rlMax,
		Expiration: rlWindow,
	}))

	// ---- Routes
	routes.Register(app)

	// ---- Start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("starting API server")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
