package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"Akshar-App/internal/domain/model"
)

const routesAPIEndpoint = "https://routes.googleapis.com/directions/v2:computeRoutes"

// ルート1本分の取得に必要なフィールドのみ要求する
const routesFieldMask = "routes.distanceMeters,routes.duration,routes.polyline.encodedPolyline,routes.legs.steps.navigationInstruction,routes.legs.steps.distanceMeters"

// GoogleRoutesProvider はGoogle Routes API (v2) を使用した経路検索の実装
type GoogleRoutesProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewGoogleRoutesProvider は新しいプロバイダを生成する
func NewGoogleRoutesProvider(apiKey string) *GoogleRoutesProvider {
	return &GoogleRoutesProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ComputeRoute はRoutes APIを呼び出して経路情報を取得する。
// 距離・所要時間・ステップ・オーバービューポリラインを1回の呼び出しで取得できる
func (g *GoogleRoutesProvider) ComputeRoute(ctx context.Context, origin, destination string, mode model.TransportMode) (*model.RouteInfo, error) {
	if !mode.IsValid() {
		mode = model.DefaultTransportMode
	}

	reqBody, err := json.Marshal(computeRoutesRequest{
		Origin:      routeWaypoint{Address: origin},
		Destination: routeWaypoint{Address: destination},
		TravelMode:  string(mode),
	})
	if err != nil {
		return nil, fmt.Errorf("リクエストのシリアライズに失敗: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", routesAPIEndpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", g.apiKey)
	req.Header.Set("X-Goog-FieldMask", routesFieldMask)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("APIからエラーステータスが返されました (status: %d): %s", resp.StatusCode, string(body))
	}

	var apiResp computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if len(apiResp.Routes) == 0 {
		return nil, errors.New("APIから有効なルートが返されませんでした")
	}

	firstRoute := apiResp.Routes[0]

	duration, err := parseDurationSeconds(firstRoute.Duration)
	if err != nil {
		return nil, fmt.Errorf("所要時間のパースに失敗: %w", err)
	}

	var steps []model.RouteStep
	for _, leg := range firstRoute.Legs {
		for _, step := range leg.Steps {
			instruction := strings.TrimSpace(step.NavigationInstruction.Instructions)
			if instruction == "" {
				continue
			}
			steps = append(steps, model.RouteStep{
				Instruction:    instruction,
				DistanceMeters: step.DistanceMeters,
			})
		}
	}

	return &model.RouteInfo{
		Origin:         origin,
		Destination:    destination,
		Mode:           mode,
		DistanceMeters: firstRoute.DistanceMeters,
		Duration:       duration,
		Steps:          steps,
		Polyline:       firstRoute.Polyline.EncodedPolyline,
	}, nil
}

// parseDurationSeconds はRoutes APIのduration表記（"1234s"）をパースする
func parseDurationSeconds(raw string) (time.Duration, error) {
	trimmed := strings.TrimSuffix(raw, "s")
	if trimmed == raw {
		return 0, fmt.Errorf("未知のduration形式: %q", raw)
	}
	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// --- Routes APIのリクエスト・レスポンス構造体 ---

type computeRoutesRequest struct {
	Origin      routeWaypoint `json:"origin"`
	Destination routeWaypoint `json:"destination"`
	TravelMode  string        `json:"travelMode"`
}

type routeWaypoint struct {
	Address string `json:"address"`
}

type computeRoutesResponse struct {
	Routes []computedRoute `json:"routes"`
}

type computedRoute struct {
	DistanceMeters int             `json:"distanceMeters"`
	Duration       string          `json:"duration"`
	Polyline       encodedPolyline `json:"polyline"`
	Legs           []routeLeg      `json:"legs"`
}

type encodedPolyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

type routeLeg struct {
	Steps []routeLegStep `json:"steps"`
}

type routeLegStep struct {
	DistanceMeters        int                   `json:"distanceMeters"`
	NavigationInstruction navigationInstruction `json:"navigationInstruction"`
}

type navigationInstruction struct {
	Instructions string `json:"instructions"`
}
