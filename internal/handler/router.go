package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter はミドルウェアとルーティングを設定したginエンジンを作成
func NewRouter(h *SiteAnalysisHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(gin.LoggerWithFormatter(AccessLogFormatter))
	r.Use(gin.Recovery())
	r.Use(CORS(allowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "No route for " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/data", h.GetMapData)
		api.POST("/analyze", h.PostAnalyze)
		api.GET("/cities", h.GetCities)
		api.GET("/health", h.GetHealth)
	}

	return r
}
