package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contract-registry/internal/interfaces/http/handlers"
	"contract-registry/internal/interfaces/http/middleware"
	"contract-registry/pkg/metrics"
)

const (
	serviceName    = "contract-registry"
	serviceVersion = "1.0.0"
)

type routeDeps struct {
	contractHandler *handlers.ContractHandler
}

func newRouter(d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, d)
	return r
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		contracts := v1.Group("/contracts")
		{
			contracts.GET("", d.contractHandler.ListContracts)
			contracts.POST("", d.contractHandler.CreateContract)
			contracts.GET("/:id", d.contractHandler.GetContract)
			contracts.GET("/:id/form", d.contractHandler.GetContractForm)
			contracts.PUT("/:id", d.contractHandler.UpdateContract)
			contracts.DELETE("/:id", d.contractHandler.DeleteContract)
			contracts.POST("/:id/open", d.contractHandler.OpenDocument)
		}
	}
}
