package usecase

import (
	"context"
	"log"

	"Akshar-App/internal/domain/model"
	domainrepo "Akshar-App/internal/domain/repository"
	"Akshar-App/internal/domain/service"
)

const poiPhotoMaxWidth = 400

// POISearchQuery 経路沿いPOI検索のパラメータ
type POISearchQuery struct {
	Origin       string
	Destination  string
	CategoryKey  string
	Mode         model.TransportMode
	RadiusMeters int
	MaxResults   int
}

// POISearchUseCase 経路沿いPOI検索と詳細取得のオーケストレーション
type POISearchUseCase interface {
	// SearchAlongRoute 経路沿いのPOIを検索し、フォトURLを付与して返す（フェイルソフト）
	SearchAlongRoute(ctx context.Context, query POISearchQuery) []model.POI
	// GetPlaceDetails プレイス詳細のパススルー取得
	GetPlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error)
}

type poiSearchUseCaseImpl struct {
	searchService    service.POISearchService
	placeDetailsRepo domainrepo.PlaceDetailsRepository
}

// NewPOISearchUseCase 新しいPOISearchUseCaseインスタンスを作成
func NewPOISearchUseCase(searchService service.POISearchService, placeDetailsRepo domainrepo.PlaceDetailsRepository) POISearchUseCase {
	return &poiSearchUseCaseImpl{
		searchService:    searchService,
		placeDetailsRepo: placeDetailsRepo,
	}
}

func (u *poiSearchUseCaseImpl) SearchAlongRoute(ctx context.Context, query POISearchQuery) []model.POI {
	log.Printf("🚀 経路沿いPOI検索: %s → %s (カテゴリ: %s, モード: %s)", query.Origin, query.Destination, query.CategoryKey, query.Mode)

	pois := u.searchService.FindAlongRoute(ctx, query.Origin, query.Destination, query.CategoryKey, query.Mode, query.RadiusMeters, query.MaxResults)

	for i := range pois {
		if pois[i].PhotoReference != "" {
			pois[i].PhotoURL = u.placeDetailsRepo.BuildPhotoURL(pois[i].PhotoReference, poiPhotoMaxWidth)
		}
	}
	return pois
}

func (u *poiSearchUseCaseImpl) GetPlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	return u.placeDetailsRepo.GetPlaceDetails(ctx, placeID)
}
