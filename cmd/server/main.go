// Package main is the entry point for the gateway.
// It loads configuration, connects the stores, sets up the HTTP server
// and starts listening.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paygate/internal/config"
	"paygate/internal/repositories"
	"paygate/internal/repositories/cache"
	"paygate/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.CloseDB(db)

	// Redis is optional unless the shared rate limiter is selected.
	var redisClient *redis.Client
	if config.GetEnv("RATE_LIMIT_BACKEND", "memory") == "redis" {
		redisClient, err = cache.Connect(context.Background(), cache.RedisConfigFromEnv())
		if err != nil {
			log.Printf("⚠️ Redis unavailable: %v", err)
		} else {
			log.Println("✅ Redis connected")
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Printf("⚠️ Failed to close Redis connection: %v", err)
				}
			}()
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "paygate",
		ProxyHeader:  config.GetEnv("PROXY_HEADER", ""),
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, db, redisClient)

	go func() {
		if err := app.Listen(":" + config.GetEnv("PORT", "3000")); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("⚠️ Graceful shutdown failed: %v", err)
	}
}

// errorHandler renders errors that escape a handler, including recovered panics, as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
