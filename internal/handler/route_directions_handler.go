package handler

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Akshar-App/internal/domain/model"
	"Akshar-App/internal/usecase"
)

// 受け付ける画像の上限サイズ
const maxImageBytes = 10 << 20

// RouteDirectionsHandler は経路案内APIのハンドラー
type RouteDirectionsHandler struct {
	directionsUseCase usecase.DirectionsUseCase
}

// NewRouteDirectionsHandler は新しいRouteDirectionsHandlerインスタンスを作成
func NewRouteDirectionsHandler(directionsUseCase usecase.DirectionsUseCase) *RouteDirectionsHandler {
	return &RouteDirectionsHandler{
		directionsUseCase: directionsUseCase,
	}
}

// PostDirections は自由テキストから経路案内を生成するエンドポイント
// POST /routes/directions
func (h *RouteDirectionsHandler) PostDirections(c *gin.Context) {
	var req model.DirectionsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if err := validateLanguage(req.Language); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	result, err := h.directionsUseCase.GetDirectionsFromText(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "経路案内の生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// PostDirectionsFromImage は画像から経路案内を生成するエンドポイント。
// multipart/form-data（フィールド名: image）とBase64 JSONの両方を受け付ける
// POST /routes/directions/image
func (h *RouteDirectionsHandler) PostDirectionsFromImage(c *gin.Context) {
	image, mimeType, language, err := h.readImageRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "画像リクエストの読み取りに失敗しました",
			"details": err.Error(),
		})
		return
	}

	if err := validateLanguage(language); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	result, err := h.directionsUseCase.GetDirectionsFromImage(c.Request.Context(), image, mimeType, language)
	if err != nil {
		// 抽出できなかった場合はクライアント側の入力の問題として扱う
		if strings.Contains(err.Error(), "特定できませんでした") {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "画像から経路リクエストを検出できませんでした",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "経路案内の生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDirectionsResult はキャッシュ済みの経路案内を再取得するエンドポイント
// GET /routes/directions/:id
func (h *RouteDirectionsHandler) GetDirectionsResult(c *gin.Context) {
	resultID := c.Param("id")
	if resultID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "result_idが指定されていません",
		})
		return
	}

	result, err := h.directionsUseCase.GetCachedDirections(c.Request.Context(), resultID)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "経路案内が見つかりません",
				"details": err.Error(),
			})
			return
		}
		if strings.Contains(err.Error(), "無効化されています") {
			c.JSON(http.StatusNotImplemented, gin.H{
				"error":   "結果キャッシュが無効化されています",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "経路案内の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// readImageRequest はmultipartまたはBase64 JSONから画像データを取り出す
func (h *RouteDirectionsHandler) readImageRequest(c *gin.Context) (image []byte, mimeType, language string, err error) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/") {
		file, header, err := c.Request.FormFile("image")
		if err != nil {
			return nil, "", "", err
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		if err != nil {
			return nil, "", "", err
		}
		return data, header.Header.Get("Content-Type"), c.PostForm("language"), nil
	}

	var req model.ImageDirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, "", "", err
	}

	data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, "", "", err
	}
	return data, req.MimeType, req.Language, nil
}

// validateLanguage は指定された言語がサポート対象か検証する（空はEnglish扱い）
func validateLanguage(language string) error {
	if language == "" {
		return nil
	}
	if !model.IsSupportedLanguage(language) {
		return &ValidationError{Field: "language", Message: "サポートされていない言語です: " + language}
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
