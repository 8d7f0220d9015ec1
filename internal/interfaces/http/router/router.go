// Package router wires handlers and middleware into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/infrastructure/logger"
	"github.com/tabledash/backend/internal/interfaces/http/handler"
	"github.com/tabledash/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Config carries everything route setup needs
type Config struct {
	Logger  *zap.Logger
	Session middleware.SessionConfig
	CORS    middleware.CORSConfig

	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Products      *handler.ProductHandler
	LocalProducts *handler.LocalProductHandler
	Admins        *handler.AdminHandler
	System        *handler.SystemHandler
}

// Setup installs global middleware and the full route table. All
// resource routes live under /api behind the session middleware and a
// role gate; probes stay at the root, outside both.
func Setup(engine *gin.Engine, cfg Config) {
	middleware.SetupValidator()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))

	engine.GET("/health", cfg.System.Health)
	engine.GET("/ready", cfg.System.Ready)

	api := engine.Group("/api")

	requireSession := middleware.RequireSession(cfg.Session)
	optionalSession := middleware.OptionalSession(cfg.Session)
	adminOnly := middleware.RequireRole(identity.AdminOnly)
	userOrAdmin := middleware.RequireRole(identity.UserOrAdmin)

	auth := api.Group("/auth")
	{
		auth.POST("/login", cfg.Auth.Login)
		auth.POST("/logout", optionalSession, cfg.Auth.Logout)
		auth.GET("/verify", requireSession, cfg.Auth.Verify)
		auth.GET("/me", requireSession, cfg.Auth.Me)
	}

	api.POST("/register", cfg.Auth.Register)

	users := api.Group("/users", requireSession, adminOnly)
	{
		users.GET("", cfg.Users.List)
		users.POST("", cfg.Users.Create)
		users.GET("/:id", cfg.Users.Get)
		users.PUT("/:id", cfg.Users.Update)
		users.DELETE("/:id", cfg.Users.Delete)
		users.POST("/:id/profile-image", cfg.Users.UploadProfileImage)
		users.DELETE("/:id/profile-image", cfg.Users.DeleteProfileImage)
	}

	products := api.Group("/products", requireSession, userOrAdmin)
	{
		products.GET("", cfg.Products.List)
		products.POST("", cfg.Products.Create)
		products.GET("/:id", cfg.Products.Get)
		products.PUT("/:id", cfg.Products.Update)
		products.DELETE("/:id", cfg.Products.Delete)
	}

	localProducts := api.Group("/local-products", requireSession, userOrAdmin)
	{
		localProducts.GET("", cfg.LocalProducts.List)
		localProducts.POST("", cfg.LocalProducts.Create)
		localProducts.GET("/:id", cfg.LocalProducts.Get)
		localProducts.PUT("/:id", cfg.LocalProducts.Update)
		localProducts.DELETE("/:id", cfg.LocalProducts.Delete)
	}

	admins := api.Group("/admins", requireSession, adminOnly)
	{
		admins.GET("", cfg.Admins.List)
		admins.POST("", cfg.Admins.Create)
		admins.GET("/:id", cfg.Admins.Get)
		admins.PUT("/:id", cfg.Admins.Update)
		admins.DELETE("/:id", cfg.Admins.Delete)
	}
}
