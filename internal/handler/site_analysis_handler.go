package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/usecase"
)

// SiteAnalysisHandler は地図データと候補地分析APIのハンドラー
type SiteAnalysisHandler struct {
	siteAnalysisUseCase usecase.SiteAnalysisUseCase
}

// NewSiteAnalysisHandler は新しいSiteAnalysisHandlerインスタンスを作成
func NewSiteAnalysisHandler(siteAnalysisUseCase usecase.SiteAnalysisUseCase) *SiteAnalysisHandler {
	return &SiteAnalysisHandler{
		siteAnalysisUseCase: siteAnalysisUseCase,
	}
}

// GetMapData は充電ステーションと需要ゾーンを返すエンドポイント
// GET /api/data
func (h *SiteAnalysisHandler) GetMapData(c *gin.Context) {
	c.JSON(http.StatusOK, h.siteAnalysisUseCase.GetMapData(c.Request.Context()))
}

// PostAnalyze は候補地のスコアを計算するエンドポイント
// POST /api/analyze
func (h *SiteAnalysisHandler) PostAnalyze(c *gin.Context) {
	var req model.AnalysisRequest

	// リクエストボディのバインド（必須項目の欠落、数値以外、不正なJSONはここでエラー）
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Body must be a JSON object with numeric lat and lng: " + err.Error(),
		})
		return
	}

	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"field":   err.Field,
			"message": err.Message,
		})
		return
	}

	result := h.siteAnalysisUseCase.AnalyzeLocation(c.Request.Context(), *req.Lat, *req.Lng)
	c.JSON(http.StatusOK, result)
}

// GetCities は都市ショートカットを返すエンドポイント
// GET /api/cities
func (h *SiteAnalysisHandler) GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, h.siteAnalysisUseCase.GetCities(c.Request.Context()))
}

// GetHealth はヘルスチェックのエンドポイント
// GET /api/health
func (h *SiteAnalysisHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.siteAnalysisUseCase.GetHealth(c.Request.Context()))
}

// validateRequest はバインド後に緯度経度の範囲チェックを行う
func (h *SiteAnalysisHandler) validateRequest(req *model.AnalysisRequest) *ValidationError {
	if req.Lat == nil {
		return &ValidationError{Field: "lat", Message: "lat is required"}
	}
	if req.Lng == nil {
		return &ValidationError{Field: "lng", Message: "lng is required"}
	}
	if *req.Lat < -90 || *req.Lat > 90 {
		return &ValidationError{Field: "lat", Message: "lat must be between -90 and 90"}
	}
	if *req.Lng < -180 || *req.Lng > 180 {
		return &ValidationError{Field: "lng", Message: "lng must be between -180 and 180"}
	}
	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
