package main

import (
	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	cfg := config.Load()
	sugar := utils.InitLogger()
	defer func() { _ = sugar.Sync() }()

	if cfg.JWTSecret == "" {
		sugar.Fatalw("JWT_SECRET not set")
	}

	config.InitDB(cfg)

	rt := services.NewRealtimeHub()
	r := routes.SetupRouter(cfg, rt)

	sugar.Infow("Starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
