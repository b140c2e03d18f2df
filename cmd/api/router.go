package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookstore-api/internal/domains/user/model"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/internal/shared/middleware"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(c.Log),
		middleware.RequestID(),
		middleware.Logger(c.Log),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupHomeRoutes(api, c)
		setupUserRoutes(api, c)
		setupAuthorRoutes(api, c)
		setupBookRoutes(api, c)
	}

	return router
}

// ========================================
// HOME ROUTES (anonymous)
// ========================================
func setupHomeRoutes(api *gin.RouterGroup, c *container.Container) {
	home := api.Group("/home")
	{
		home.GET("", c.HomeHandler.Index)
		home.GET("/:id", c.HomeHandler.Get)
		home.POST("", c.HomeHandler.Post)
		home.PUT("/:id", c.HomeHandler.Put)
		home.DELETE("/:id", c.HomeHandler.Delete)
	}
}

// ========================================
// USER ROUTES (anonymous login)
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/users", c.UserHandler.Login)
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	authors.Use(middleware.AuthMiddleware(c.JWTManager, c.Log))
	{
		authors.GET("", c.AuthorHandler.GetAuthors)
		authors.GET("/:id", c.AuthorHandler.GetAuthor)

		admin := authors.Group("")
		admin.Use(middleware.RequireRole(model.RoleAdministrator))
		{
			admin.POST("", c.AuthorHandler.Create)
			admin.PUT("", c.AuthorHandler.Update)
			admin.DELETE("/:id", c.AuthorHandler.Delete)
		}
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	books.Use(middleware.AuthMiddleware(c.JWTManager, c.Log))
	{
		books.GET("", c.BookHandler.GetBooks)
		books.GET("/:id", c.BookHandler.GetBook)

		admin := books.Group("")
		admin.Use(middleware.RequireRole(model.RoleAdministrator))
		{
			admin.POST("", c.BookHandler.Create)
			admin.PUT("", c.BookHandler.Update)
			admin.DELETE("/:id", c.BookHandler.Delete)
		}
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   c.Config.App.Version,
		}

		dbStatus := "ok"
		if c.DB == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()

			if err := database.Ping(pingCtx, c.DB); err != nil {
				c.Log.Warn("Health check failed", map[string]interface{}{"error": err.Error()})
				dbStatus = "error"
				health["status"] = "degraded"
			}
		}
		health["database"] = dbStatus

		if c.Postgres != nil {
			if stats, err := c.Postgres.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		if health["status"] != "ok" {
			response.ServiceUnavailable(ctx, health)
			return
		}
		response.OK(ctx, health)
	}
}
