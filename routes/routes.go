package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(cfg *config.Config, rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authController := controllers.NewAuthController(cfg.JWTSecret)
	foodLogController := controllers.NewFoodLogController(rt)
	realtimeController := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected food log routes
	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		logs.POST("", foodLogController.AddFoodLog)
		logs.GET("/:date", foodLogController.GetLogsByDate)
		logs.PATCH("/:logId/:foodItemId", foodLogController.UpdateFoodItem)
		logs.DELETE("/:logId/:foodItemId", foodLogController.DeleteFoodItem)
	}

	realtime := r.Group("/realtime")
	realtime.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		realtime.GET("/ws", realtimeController.LogEventsWS)
	}

	return r
}
