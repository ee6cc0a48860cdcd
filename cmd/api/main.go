package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/barbereasy/barbereasy-api/internal/cache"
	"github.com/barbereasy/barbereasy-api/internal/config"
	dbpkg "github.com/barbereasy/barbereasy-api/internal/db"
	"github.com/barbereasy/barbereasy-api/internal/email"
	"github.com/barbereasy/barbereasy-api/internal/middleware"
	"github.com/barbereasy/barbereasy-api/internal/routes"
)

func main() {

	cfg := config.Load()

	setupLogger(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedis(cfg)
	mailer := email.NewMailer(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, mailer)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func setupLogger(level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
