package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"matka/cache"
	"matka/database"
	"matka/jobs"
	"matka/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using environment as-is")
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	database.Connect()
	cache.Connect()

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}

	app := fiber.New()
	routes.Setup(app)
	jobs.StartCleanupScheduler()

	addr := fmt.Sprintf("%s:%s", host, port)
	log.WithField("addr", addr).Info("server running")

	go func() {
		if err := app.Listen(addr); err != nil {
			log.WithError(err).Panic("failed to start server")
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("gracefully shutting down")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
	log.Info("server exited cleanly")
}
