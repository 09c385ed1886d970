package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"Akshar-App/internal/domain/model"
)

const (
	nearbySearchEndpoint = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	placeDetailsEndpoint = "https://maps.googleapis.com/maps/api/place/details/json"
	placePhotoEndpoint   = "https://maps.googleapis.com/maps/api/place/photo"
	geocodeEndpoint      = "https://maps.googleapis.com/maps/api/geocode/json"
)

// GooglePlacesProvider はGoogle Places APIを使用した周辺検索・詳細取得の実装
type GooglePlacesProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchNearby は指定地点の周辺から指定タイプのプレイスを検索する
func (g *GooglePlacesProvider) SearchNearby(ctx context.Context, center model.LatLng, radiusMeters int, placeType string) ([]model.POI, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", placeType)
	params.Set("key", g.apiKey)

	reqURL := fmt.Sprintf("%s?%s", nearbySearchEndpoint, params.Encode())

	var apiResp nearbySearchResponse
	if err := g.getJSON(ctx, reqURL, &apiResp); err != nil {
		return nil, err
	}

	// ZERO_RESULTSは正常系（該当なし）として空リストを返す
	if apiResp.Status != "OK" && apiResp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("Places APIからエラーステータスが返されました: %s %s", apiResp.Status, apiResp.ErrorMessage)
	}

	pois := make([]model.POI, 0, len(apiResp.Results))
	for _, result := range apiResp.Results {
		poi := model.POI{
			PlaceID:          result.PlaceID,
			Name:             result.Name,
			Address:          result.Vicinity,
			Rating:           result.Rating,
			UserRatingsTotal: result.UserRatingsTotal,
			Location: model.LatLng{
				Lat: result.Geometry.Location.Lat,
				Lng: result.Geometry.Location.Lng,
			},
			Types: result.Types,
		}
		if len(result.Photos) > 0 {
			poi.PhotoReference = result.Photos[0].PhotoReference
		}
		pois = append(pois, poi)
	}
	return pois, nil
}

// GetPlaceDetails はプレイスIDから詳細情報を取得する
func (g *GooglePlacesProvider) GetPlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_address,formatted_phone_number,website,opening_hours,url")
	params.Set("key", g.apiKey)

	reqURL := fmt.Sprintf("%s?%s", placeDetailsEndpoint, params.Encode())

	var apiResp placeDetailsResponse
	if err := g.getJSON(ctx, reqURL, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != "OK" {
		return nil, fmt.Errorf("Place Details APIからエラーステータスが返されました: %s %s", apiResp.Status, apiResp.ErrorMessage)
	}

	return &model.PlaceDetails{
		Name:             apiResp.Result.Name,
		FormattedAddress: apiResp.Result.FormattedAddress,
		PhoneNumber:      apiResp.Result.FormattedPhoneNumber,
		Website:          apiResp.Result.Website,
		OpeningHours:     apiResp.Result.OpeningHours.WeekdayText,
		MapsURL:          apiResp.Result.URL,
	}, nil
}

// BuildPhotoURL はフォト参照から画像取得用URLを組み立てる（API呼び出しはしない）
func (g *GooglePlacesProvider) BuildPhotoURL(photoReference string, maxWidth int) string {
	if photoReference == "" {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = 400
	}
	params := url.Values{}
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("photoreference", photoReference)
	params.Set("key", g.apiKey)
	return fmt.Sprintf("%s?%s", placePhotoEndpoint, params.Encode())
}

// HealthCheck はジオコーディングの疎通確認でAPIキーの有効性を検証する
func (g *GooglePlacesProvider) HealthCheck(ctx context.Context) error {
	params := url.Values{}
	params.Set("address", "New York")
	params.Set("key", g.apiKey)

	reqURL := fmt.Sprintf("%s?%s", geocodeEndpoint, params.Encode())

	var apiResp geocodeResponse
	if err := g.getJSON(ctx, reqURL, &apiResp); err != nil {
		return err
	}
	if apiResp.Status != "OK" {
		return fmt.Errorf("Geocoding APIの疎通確認に失敗: %s", apiResp.Status)
	}
	return nil
}

func (g *GooglePlacesProvider) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return nil
}

// --- Places APIのレスポンスをパースするための構造体 ---

type nearbySearchResponse struct {
	Results      []placeSummary `json:"results"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

type placeSummary struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Vicinity         string        `json:"vicinity"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Geometry         placeGeometry `json:"geometry"`
	Types            []string      `json:"types"`
	Photos           []placePhoto  `json:"photos"`
}

type placeGeometry struct {
	Location placeLocation `json:"location"`
}

type placeLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type placeDetailsResponse struct {
	Result       placeDetailsResult `json:"result"`
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message,omitempty"`
}

type placeDetailsResult struct {
	Name                 string            `json:"name"`
	FormattedAddress     string            `json:"formatted_address"`
	FormattedPhoneNumber string            `json:"formatted_phone_number"`
	Website              string            `json:"website"`
	OpeningHours         placeOpeningHours `json:"opening_hours"`
	URL                  string            `json:"url"`
}

type placeOpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

type geocodeResponse struct {
	Status string `json:"status"`
}
