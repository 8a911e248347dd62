package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/emre/event-discovery-go/config"
	controllers "github.com/emre/event-discovery-go/controllers"
	middleware "github.com/emre/event-discovery-go/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// public
	r.POST("/auth/register", controllers.Register(cfg))
	r.POST("/auth/login", controllers.Login(cfg))
	r.POST("/auth/refresh", controllers.RefreshToken(cfg))

	// discovery is browsable without an account
	r.GET("/events/discover", controllers.DiscoverEvents(cfg))
	r.GET("/categories", controllers.ListCategories(cfg))
	r.GET("/groups", controllers.ListGroups(cfg))
	r.GET("/filters/presets", controllers.ListFilterPresets(cfg))

	// protected
	auth := middleware.AuthMiddleware(cfg)

	events := r.Group("/events")
	events.Use(auth)
	{
		events.POST("", controllers.CreateEvent(cfg))
		events.GET("", controllers.ListEvents(cfg))
		events.GET("/:id", controllers.GetEvent(cfg))
		events.PATCH("/:id", controllers.UpdateEvent(cfg))
		events.DELETE("/:id", controllers.DeleteEvent(cfg))
		events.POST("/:id/join", controllers.JoinEvent(cfg))
		events.POST("/:id/leave", controllers.LeaveEvent(cfg))
	}

	profile := r.Group("/profile")
	profile.Use(auth)
	{
		profile.GET("", controllers.GetProfile(cfg))
		profile.PATCH("", controllers.UpdateProfile(cfg))
	}
}
