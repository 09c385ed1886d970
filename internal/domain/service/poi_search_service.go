package service

import (
	"context"
	"log"
	"sort"

	"github.com/paulmach/orb/geo"

	"Akshar-App/internal/domain/helper"
	"Akshar-App/internal/domain/model"
	"Akshar-App/internal/domain/repository"
)

const (
	// DefaultSearchRadiusMeters 周辺検索の既定半径
	DefaultSearchRadiusMeters = 5000
	// DefaultMaxPOIResults 集約結果の既定上限件数
	DefaultMaxPOIResults = 10
)

// Logger 集約処理の進捗を記録する注入可能なロガー。
// コアのロジックを副作用から切り離すため、log.Printf互換の関数として受け取る
type Logger func(format string, args ...interface{})

// POISearchService 経路沿いのPOIを収集・重複排除・ランク付けして返すサービス
type POISearchService interface {
	// FindAlongRoute 経路沿いのPOIを検索する。コラボレータの失敗時は
	// エラーを伝播せず空のリストに縮退する（フェイルソフト）
	FindAlongRoute(ctx context.Context, origin, destination, categoryKey string, mode model.TransportMode, radiusMeters, maxResults int) []model.POI
}

// poiSearchServiceImpl POISearchServiceの実装
type poiSearchServiceImpl struct {
	directionsProvider repository.DirectionsProvider
	nearbySearchRepo   repository.NearbySearchRepository
	logf               Logger
}

// NewPOISearchService 新しいPOISearchServiceインスタンスを作成。loggerがnilの場合はlog.Printfを使う
func NewPOISearchService(directionsProvider repository.DirectionsProvider, nearbySearchRepo repository.NearbySearchRepository, logger Logger) POISearchService {
	if logger == nil {
		logger = log.Printf
	}
	return &poiSearchServiceImpl{
		directionsProvider: directionsProvider,
		nearbySearchRepo:   nearbySearchRepo,
		logf:               logger,
	}
}

// FindAlongRoute 経路沿いのPOIを検索する。
// 1. カテゴリ解決（未知キーはrestaurantsにフォールバック）
// 2. 経路計算とポリラインのデコード（失敗時は即座に空を返す）
// 3. 最大5点のサンプリング
// 4. 各サンプル地点でプライマリタイプによる周辺検索（地点ごとの失敗は隔離）
// 5. プレイスIDによる重複排除（地点順で先勝ち、フィールドのマージはしない）
// 6. 複合スコア降順でランク付けし、maxResultsに切り詰める
func (s *poiSearchServiceImpl) FindAlongRoute(ctx context.Context, origin, destination, categoryKey string, mode model.TransportMode, radiusMeters, maxResults int) []model.POI {
	if radiusMeters <= 0 {
		radiusMeters = DefaultSearchRadiusMeters
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxPOIResults
	}

	category := model.GetPOICategory(categoryKey)
	placeType := category.PrimaryType()

	route, err := s.directionsProvider.ComputeRoute(ctx, origin, destination, mode)
	if err != nil {
		// 経路が取れない場合は部分集約せず即座に空を返す（カテゴリに該当なしの場合とはログで区別する）
		s.logf("❌ POI検索用の経路取得に失敗 (%s → %s): %v", origin, destination, err)
		return []model.POI{}
	}

	line := helper.DecodePolyline(route.Polyline)
	if len(line) == 0 {
		s.logf("❌ 経路ポリラインのデコード結果が空 (%s → %s)", origin, destination)
		return []model.POI{}
	}

	points := SampleRoutePoints(line)
	s.logf("📍 経路%d頂点から%d地点をサンプリング (カテゴリ: %s, タイプ: %s)", len(line), len(points), category.Key, placeType)

	seen := make(map[string]struct{})
	var merged []model.POI

	for i, point := range points {
		center := model.LatLngFromPoint(point)

		results, err := s.nearbySearchRepo.SearchNearby(ctx, center, radiusMeters, placeType)
		if err != nil {
			// 地点ごとの失敗は致命的ではない。これまでに集めた結果を捨てずに次の地点へ進む
			s.logf("⚠️ 地点%d (%.5f, %.5f) の周辺検索に失敗: %v", i, center.Lat, center.Lng, err)
			continue
		}

		added := 0
		for _, poi := range results {
			if _, dup := seen[poi.PlaceID]; dup {
				continue
			}
			seen[poi.PlaceID] = struct{}{}
			poi.DistanceMeters = geo.DistanceHaversine(point, poi.Location.ToPoint())
			merged = append(merged, poi)
			added++
		}
		s.logf("✅ 地点%d: %d件取得（新規%d件）", i, len(results), added)
	}

	// 複合スコア降順。同点は先に見つかった地点の結果を優先する
	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Score() > merged[b].Score()
	})

	if len(merged) > maxResults {
		merged = merged[:maxResults]
	}
	if merged == nil {
		merged = []model.POI{}
	}

	s.logf("🎉 POI集約完了: %d件 (カテゴリ: %s)", len(merged), category.Key)
	return merged
}
