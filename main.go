package main

import (
	"fmt"
	"os"

	"github.com/alekz7/tastyrestaurant/configs"
	"github.com/alekz7/tastyrestaurant/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	if cfg.SeedDatabase {
		if err := configs.SeedLookups(); err != nil {
			log.Fatal().Err(err).Msg("seed data failed")
		}
	}

	// HTTP
	r := gin.Default()

	// Register API routes (CORS อยู่ข้างใน)
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("🚀 server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
