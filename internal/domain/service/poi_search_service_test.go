package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"Akshar-App/internal/domain/helper"
	"Akshar-App/internal/domain/model"
)

// mockDirectionsProvider 固定のポリラインを返すDirectionsProviderモック
type mockDirectionsProvider struct {
	polyline string
	err      error
}

func (m *mockDirectionsProvider) ComputeRoute(ctx context.Context, origin, destination string, mode model.TransportMode) (*model.RouteInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &model.RouteInfo{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
		Polyline:    m.polyline,
	}, nil
}

// mockNearbySearcher 呼び出し回数ごとに結果またはエラーを返すNearbySearchRepositoryモック
type mockNearbySearcher struct {
	resultsPerCall [][]model.POI
	errPerCall     []error
	calls          int
	placeTypes     []string
}

func (m *mockNearbySearcher) SearchNearby(ctx context.Context, center model.LatLng, radiusMeters int, placeType string) ([]model.POI, error) {
	call := m.calls
	m.calls++
	m.placeTypes = append(m.placeTypes, placeType)

	if call < len(m.errPerCall) && m.errPerCall[call] != nil {
		return nil, m.errPerCall[call]
	}
	if call < len(m.resultsPerCall) {
		return m.resultsPerCall[call], nil
	}
	return nil, nil
}

func discardLog(format string, args ...interface{}) {}

// testPolyline 2点の単純な経路（サンプリング結果も2点になる）
func testPolyline() string {
	return helper.EncodePolyline(orb.LineString{
		{73.8567, 18.5204}, // プネ
		{72.8777, 19.0760}, // ムンバイ
	})
}

func makePOI(id string, rating float64, count int) model.POI {
	return model.POI{
		PlaceID:          id,
		Name:             "poi-" + id,
		Rating:           rating,
		UserRatingsTotal: count,
		Location:         model.LatLng{Lat: 18.6, Lng: 73.7},
	}
}

func TestPOISearchService_FindAlongRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("経路取得に失敗した場合は空のリスト", func(t *testing.T) {
		svc := NewPOISearchService(
			&mockDirectionsProvider{err: errors.New("route not found")},
			&mockNearbySearcher{},
			discardLog,
		)

		pois := svc.FindAlongRoute(ctx, "pune", "mumbai", "restaurants", model.ModeDrive, 0, 0)
		assert.NotNil(t, pois)
		assert.Empty(t, pois)
	})

	t.Run("プレイスIDの重複は先勝ちで排除される", func(t *testing.T) {
		first := makePOI("dup", 4.0, 50)
		first.Name = "first-seen"
		second := makePOI("dup", 4.0, 50)
		second.Name = "second-seen"

		searcher := &mockNearbySearcher{
			resultsPerCall: [][]model.POI{
				{first, makePOI("a", 3.0, 10)},
				{second, makePOI("b", 3.5, 20)},
			},
		}
		svc := NewPOISearchService(&mockDirectionsProvider{polyline: testPolyline()}, searcher, discardLog)

		pois := svc.FindAlongRoute(ctx, "pune", "mumbai", "restaurants", model.ModeDrive, 0, 0)

		assert.Len(t, pois, 3)
		var dupCount int
		for _, poi := range pois {
			if poi.PlaceID == "dup" {
				dupCount++
				assert.Equal(t, "first-seen", poi.Name)
			}
		}
		assert.Equal(t, 1, dupCount)
	})

	t.Run("複合スコアの降順でランク付けされる", func(t *testing.T) {
		// 4.5 × min(2000, 100) = 450 が 4.8 × min(10, 100) = 48 より上位に来る
		searcher := &mockNearbySearcher{
			resultsPerCall: [][]model.POI{
				{makePOI("niche", 4.8, 10), makePOI("popular", 4.5, 2000)},
			},
		}
		svc := NewPOISearchService(&mockDirectionsProvider{polyline: testPolyline()}, searcher, discardLog)

		pois := svc.FindAlongRoute(ctx, "pune", "mumbai", "restaurants", model.ModeDrive, 0, 0)

		assert.Len(t, pois, 2)
		assert.Equal(t, "popular", pois[0].PlaceID)
		assert.Equal(t, "niche", pois[1].PlaceID)
	})

	t.Run("評価なしのPOIはスコア0で残る", func(t *testing.T) {
		searcher := &mockNearbySearcher{
			resultsPerCall: [][]model.POI{
				{makePOI("unrated", 0, 0), makePOI("rated", 4.0, 100)},
			},
		}
		svc := NewPOISearchService(&mockDirectionsProvider{polyline: testPolyline()}, searcher, discardLog)

		pois := svc.FindAlongRoute(ctx, "pune", "mumbai", "restaurants", model.ModeDrive, 0, 0)

		assert.Len(t, pois, 2)
		assert.Equal(t, "rated", pois[0].PlaceID)
		assert.Equal(t, "unrated", pois[1].PlaceID)
	})

	t.Run("結果はmaxResultsに切り詰められる", func(t *testing.T) {
		var many []model.POI
		for i := 0; i < 15; i++ {
			many = append(many, makePOI(fmt.Sprintf("p%02d", i), 4.0, 100))
		}
		searcher := &mockNearbySearcher{resultsPerCall: [][]model.POI{many}}
		svc := NewPOISearchService(&mockDirectionsProvider{polyline: testPolyline()}, searcher, discardLog)

		pois := svc.FindAlongRoute(ctx, "pune", "mumbai", "restaurants", model.ModeDrive, 0, 0)
		assert.Len(t, pois, DefaultMaxPOIResults)
	})

	t.Run("一部地点の検索失敗は他の地点に影響しない", func(t *testing.T) {
		searcher := &mockNearbySearcher{
			resultsPerCall: [][]model.POI{
				nil,
				{makePOI("survivor", 4.2, 30)},
			},
			errPerCall: []error{errors.New("quota exceeded"), nil},
		}
		svc := NewPOISearchService(&mockDirectionsProvider{polyline: testPolyline()}, searcher, discardLog)

		pois := svc.FindAlongRoute(ctx, "pune", "mumbai", "restaurants", model.ModeDrive, 0, 0)
		assert.Len(t, pois, 1)
		assert.Equal(t, "survivor", pois[0].PlaceID)
	})

	t.Run("未知のカテゴリはレストランにフォールバック", func(t *testing.T) {
		searcher := &mockNearbySearcher{}
		svc := NewPOISearchService(&mockDirectionsProvider{polyline: testPolyline()}, searcher, discardLog)

		svc.FindAlongRoute(ctx, "pune", "mumbai", "space stations", model.ModeDrive, 0, 0)

		assert.NotEmpty(t, searcher.placeTypes)
		for _, placeType := range searcher.placeTypes {
			assert.Equal(t, "restaurant", placeType)
		}
	})

	t.Run("サンプル地点からの距離が付与される", func(t *testing.T) {
		searcher := &mockNearbySearcher{
			resultsPerCall: [][]model.POI{{makePOI("near", 4.0, 10)}},
		}
		svc := NewPOISearchService(&mockDirectionsProvider{polyline: testPolyline()}, searcher, discardLog)

		pois := svc.FindAlongRoute(ctx, "pune", "mumbai", "restaurants", model.ModeDrive, 0, 0)
		assert.Len(t, pois, 1)
		assert.Greater(t, pois[0].DistanceMeters, 0.0)
	})
}
