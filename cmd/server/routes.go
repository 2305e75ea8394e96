package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"founder-net.backend/internal/interfaces/http/handlers"
	"founder-net.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	userHandler      *handlers.UserHandler
	startupHandler   *handlers.StartupHandler
	investorHandler  *handlers.InvestorHandler
	followHandler    *handlers.FollowHandler
	micropostHandler *handlers.MicroPostHandler
	commentHandler   *handlers.CommentHandler
	adminHandler     *handlers.AdminHandler
	authMiddleware   gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID, X-Session-ID")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "founder-net-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes. Logout stays public so an expired token can still
		// clear its session.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// User routes (registration and profile reads are public)
		users := v1.Group("/users")
		{
			users.POST("", d.userHandler.Create)
			users.GET("/:id", d.userHandler.GetProfile)
			users.PATCH("/me", d.authMiddleware, d.userHandler.UpdateMe)
			users.GET("/:id/microposts", d.micropostHandler.ListByUser)
			users.GET("/:id/startups", d.startupHandler.ListByFounder)
			users.GET("/:id/followers", d.followHandler.Followers)
		}

		// Startup routes (public read, protected write)
		startups := v1.Group("/startups")
		{
			startups.GET("", d.startupHandler.List)
			startups.GET("/:id", d.startupHandler.Get)
			startups.POST("", d.authMiddleware, d.startupHandler.Create)
			startups.POST("/:id/cofounders", d.authMiddleware, d.startupHandler.AddCofounder)
		}

		// Investor routes (protected)
		investors := v1.Group("/investors")
		investors.Use(d.authMiddleware)
		{
			investors.POST("", d.investorHandler.Register)
			investors.GET("/me", d.investorHandler.Me)
		}

		// Follow routes (protected)
		follows := v1.Group("/follows")
		follows.Use(d.authMiddleware)
		{
			follows.PUT("/:type/:id", d.followHandler.Follow)
			follows.DELETE("/:type/:id", d.followHandler.Unfollow)
			follows.GET("/:type/:id", d.followHandler.Status)
		}

		following := v1.Group("/following")
		following.Use(d.authMiddleware)
		{
			following.GET("/users", d.followHandler.FollowingUsers)
			following.GET("/startups", d.followHandler.FollowingStartups)
		}

		// Micro-post routes (protected)
		microposts := v1.Group("/microposts")
		microposts.Use(d.authMiddleware)
		{
			microposts.POST("", d.micropostHandler.Create)
			microposts.DELETE("/:id", d.micropostHandler.Delete)
		}

		v1.GET("/feed", d.authMiddleware, d.micropostHandler.Feed)

		// Comment routes (public read, protected write)
		comments := v1.Group("/comments")
		{
			comments.GET("", d.commentHandler.List)
			comments.POST("", d.authMiddleware, d.commentHandler.Create)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
		}
	}
}
