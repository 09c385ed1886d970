package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"Akshar-App/internal/domain/model"
)

// NamedHealthCheck ヘルスチェック対象のコラボレータ
type NamedHealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// MetaHandler はカタログ系・ヘルスチェックAPIのハンドラー
type MetaHandler struct {
	checks []NamedHealthCheck
}

// NewMetaHandler は新しいMetaHandlerインスタンスを作成
func NewMetaHandler(checks []NamedHealthCheck) *MetaHandler {
	return &MetaHandler{checks: checks}
}

// GetLanguages はサポート言語の一覧を返すエンドポイント
// GET /languages
func (h *MetaHandler) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": model.GetSupportedLanguages(),
	})
}

// GetCategories はPOIカテゴリの一覧を返すエンドポイント
// GET /categories
func (h *MetaHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": model.GetAllPOICategories(),
	})
}

// GetHealth はサービスと各コラボレータの疎通状態を返すエンドポイント
// GET /api/health
func (h *MetaHandler) GetHealth(c *gin.Context) {
	status := "healthy"
	results := make(map[string]string, len(h.checks))

	for _, check := range h.checks {
		if err := check.Check(c.Request.Context()); err != nil {
			status = "degraded"
			results[check.Name] = err.Error()
		} else {
			results[check.Name] = "ok"
		}
	}

	httpStatus := http.StatusOK
	if status != "healthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":  status,
		"service": "Akshar-App",
		"checks":  results,
	})
}
