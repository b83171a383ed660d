package handler

import (
	"net/http"

	"github.com/Aashish23092/cashflow-analyzer/metrics"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter registers the health, metrics and cash-flow routes.
func NewRouter(cashFlowHandler *CashFlowHandler, logger zerolog.Logger, maxMultipartMemory int64) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))
	router.MaxMultipartMemory = maxMultipartMemory

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Cash Flow Analyzer",
		})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	{
		cf := api.Group("/cashflow")
		{
			cf.GET("/sections", cashFlowHandler.ListSections)
			cf.POST("/analyze", cashFlowHandler.Analyze)
			cf.POST("/extract", cashFlowHandler.ExtractText)
			cf.POST("/export", cashFlowHandler.Export)
		}
	}
	return router
}
