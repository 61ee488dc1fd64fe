package main

import (
	"fmt"
	"os"

	"github.com/cooper235/Canteen-project-sub000/configs"
	"github.com/cooper235/Canteen-project-sub000/middlewares"
	"github.com/cooper235/Canteen-project-sub000/routes"
	"github.com/cooper235/Canteen-project-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg := configs.LoadConfig()
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}

	// Real-time hub, one per process
	hub := ws.NewHub(log)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
