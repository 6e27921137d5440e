package api

import (
	"habitbloom/internal/auth"
	"habitbloom/internal/config"
	"habitbloom/internal/profile"
	"habitbloom/internal/reflection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func SetupRouter(cfg *config.Config, rdb *redis.Client, mgr *profile.Manager, store *profile.Store, refl *reflection.Service) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // e.g. "/habitbloom" or any custom path, always starts with '/'

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))

		// Setup: only if no users
		group.POST("/setup", SetupHandler())

		// Auth
		group.POST("/auth/login", LoginHandler(cfg, rdb))
		group.POST("/auth/logout", auth.AuthMiddleware(cfg, rdb), LogoutHandler(rdb, mgr))
		group.GET("/auth/me", auth.AuthMiddleware(cfg, rdb), MeHandler())
		group.DELETE("/users/me", auth.AuthMiddleware(cfg, rdb), DeleteMeHandler(rdb, mgr, store))

		// Profile
		group.GET("/profile", auth.AuthMiddleware(cfg, rdb), ProfileHandler(mgr))
		group.PUT("/profile/companion", auth.AuthMiddleware(cfg, rdb), UpdateCompanionHandler(mgr))
		group.PUT("/profile/theme", auth.AuthMiddleware(cfg, rdb), UpdateThemeHandler(mgr))

		// Habits
		group.POST("/habits/:category/toggle", auth.AuthMiddleware(cfg, rdb), ToggleHabitHandler(mgr))
		group.POST("/habits/:category/increment", auth.AuthMiddleware(cfg, rdb), IncrementHabitHandler(mgr))
		group.POST("/habits/:category/decrement", auth.AuthMiddleware(cfg, rdb), DecrementHabitHandler(mgr))
		group.POST("/habits/:category/custom", auth.AuthMiddleware(cfg, rdb), CreateCustomHabitHandler(mgr))
		group.PUT("/habits/:category/custom/:id", auth.AuthMiddleware(cfg, rdb), UpdateCustomHabitHandler(mgr))
		group.DELETE("/habits/:category/custom/:id", auth.AuthMiddleware(cfg, rdb), DeleteCustomHabitHandler(mgr))
		group.POST("/habits/reward/dismiss", auth.AuthMiddleware(cfg, rdb), DismissRewardHandler(mgr))

		// Mood + encouragement
		group.POST("/mood", auth.AuthMiddleware(cfg, rdb), MoodHandler(mgr))
		group.GET("/encouragement", auth.AuthMiddleware(cfg, rdb), EncouragementHandler(mgr))

		// Reflection
		group.POST("/reflect", auth.AuthMiddleware(cfg, rdb), ReflectHandler(mgr, refl))
	}
	return r
}
