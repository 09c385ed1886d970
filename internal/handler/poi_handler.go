package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"Akshar-App/internal/domain/model"
	"Akshar-App/internal/usecase"
)

// POIHandler は経路沿いPOI検索APIのハンドラー
type POIHandler struct {
	poiSearchUseCase usecase.POISearchUseCase
}

// NewPOIHandler は新しいPOIHandlerインスタンスを作成
func NewPOIHandler(poiSearchUseCase usecase.POISearchUseCase) *POIHandler {
	return &POIHandler{
		poiSearchUseCase: poiSearchUseCase,
	}
}

// GetPOIsAlongRoute は経路沿いのPOIを検索するエンドポイント
// GET /pois/along-route?origin=&destination=&category=&mode=&radius=&max_results=
func (h *POIHandler) GetPOIsAlongRoute(c *gin.Context) {
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "originとdestinationは必須です",
		})
		return
	}

	mode := model.TransportMode(strings.ToUpper(c.DefaultQuery("mode", string(model.DefaultTransportMode))))
	if !mode.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "modeはDRIVE/WALK/BICYCLE/TRANSITのいずれかを指定してください",
		})
		return
	}

	radius, err := parsePositiveIntQuery(c, "radius", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radiusは正の整数で指定してください"})
		return
	}
	maxResults, err := parsePositiveIntQuery(c, "max_results", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_resultsは正の整数で指定してください"})
		return
	}

	query := usecase.POISearchQuery{
		Origin:       origin,
		Destination:  destination,
		CategoryKey:  c.Query("category"),
		Mode:         mode,
		RadiusMeters: radius,
		MaxResults:   maxResults,
	}

	pois := h.poiSearchUseCase.SearchAlongRoute(c.Request.Context(), query)

	c.JSON(http.StatusOK, gin.H{
		"pois":  pois,
		"count": len(pois),
	})
}

// GetPlaceDetails はプレイス詳細を取得するエンドポイント
// GET /pois/:place_id
func (h *POIHandler) GetPlaceDetails(c *gin.Context) {
	placeID := c.Param("place_id")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "place_idが指定されていません",
		})
		return
	}

	details, err := h.poiSearchUseCase.GetPlaceDetails(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "プレイス詳細の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, details)
}

// parsePositiveIntQuery 省略可能な正整数クエリパラメータをパースする（省略時はfallback）
func parsePositiveIntQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, &ValidationError{Field: name, Message: "正の整数を指定してください"}
	}
	return value, nil
}
