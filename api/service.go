// Package api translates HTTP requests into repository calls and repository
// results into responses, one resource group per entity.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mazrooa/fatoora/gateway"
	"github.com/mazrooa/fatoora/models"
	"github.com/mazrooa/fatoora/store"
)

// Service carries the shared dependencies of the non-generic handlers.
type Service struct {
	Db     *gorm.DB
	Logger *logrus.Logger
	Config models.Config
	Auth   *gateway.JWTAuth
}

// GetMainEngine composes the middleware and all resource routes. There is no
// package-level router; callers own the returned engine.
func GetMainEngine(cfg models.Config, db *gorm.DB, logger *logrus.Logger) *gin.Engine {
	binding.Validator = new(models.DefaultValidator)

	auth := &gateway.JWTAuth{Key: []byte(cfg.JWTKey)}
	s := &Service{Db: db, Logger: logger, Config: cfg, Auth: auth}

	route := gin.New()
	route.Use(gin.Recovery())
	route.HandleMethodNotAllowed = true
	route.Use(gateway.RequestID())
	route.Use(gateway.Instrumentation())

	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	route.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": true})
	})
	route.POST("/login", s.LoginHandler)

	authed := route.Group("/")
	authed.Use(auth.AuthMiddleware())
	authed.GET("/profile", s.Profile)

	user := &Resource[models.User, *models.User]{
		Name:       "user",
		WrapKey:    "user",
		Repo:       store.NewRepository[models.User, *models.User](db),
		Logger:     logger,
		BeforeSave: s.userBeforeSave,
		Sanitize:   sanitizeUser,
	}
	user.Register(route.Group("/user"))

	client := &Resource[models.Client, *models.Client]{
		Name:   "client",
		Repo:   store.NewRepository[models.Client, *models.Client](db),
		Logger: logger,
	}
	client.Register(route.Group("/client"))

	bankDetails := &Resource[models.BankDetails, *models.BankDetails]{
		Name:   "bank details",
		Repo:   store.NewRepository[models.BankDetails, *models.BankDetails](db),
		Logger: logger,
	}
	bankDetails.Register(route.Group("/bankDetails"))

	invoice := &Resource[models.Invoice, *models.Invoice]{
		Name:   "invoice",
		Repo:   store.NewRepository[models.Invoice, *models.Invoice](db),
		Logger: logger,
	}
	invoice.Register(route.Group("/Invoice"))

	itemsDetails := &Resource[models.ItemsDetails, *models.ItemsDetails]{
		Name:   "items details",
		Repo:   store.NewRepository[models.ItemsDetails, *models.ItemsDetails](db),
		Logger: logger,
	}
	itemsDetails.Register(route.Group("/itemsDetails"))

	relations := &Resource[models.UserClientRelations, *models.UserClientRelations]{
		Name:   "user client relation",
		Repo:   store.NewRepository[models.UserClientRelations, *models.UserClientRelations](db),
		Logger: logger,
	}
	relations.Register(route.Group("/userClientRelations"))

	return route
}
