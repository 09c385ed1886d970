package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"Akshar-App/internal/domain/model"
	domainrepo "Akshar-App/internal/domain/repository"
	"Akshar-App/internal/domain/service"
	"Akshar-App/internal/repository"
)

// 整形済み結果をFirestoreに保持する時間
const directionsResultTTLHours = 24

// DirectionsUseCase 経路案内リクエストのオーケストレーション
type DirectionsUseCase interface {
	// GetDirectionsFromText 自由テキストの経路リクエストを処理する。
	// 解析失敗は致命的エラーではなくヘルプ文の返却になる
	GetDirectionsFromText(ctx context.Context, req *model.DirectionsRequest) (*model.DirectionsResult, error)
	// GetDirectionsFromImage 画像からGemini Visionで経路を抽出して処理する
	GetDirectionsFromImage(ctx context.Context, image []byte, mimeType, language string) (*model.DirectionsResult, error)
	// GetCachedDirections result_idでキャッシュ済みの結果を再取得する
	GetCachedDirections(ctx context.Context, resultID string) (*model.DirectionsResult, error)
}

type directionsUseCaseImpl struct {
	parser             service.RouteParseService
	directionsProvider domainrepo.DirectionsProvider
	routeExtractor     domainrepo.RouteExtractionRepository
	translator         domainrepo.TranslationRepository
	cacheRepo          *repository.FirestoreDirectionsRepository // nil可（キャッシュ無効）
}

// NewDirectionsUseCase 新しいDirectionsUseCaseインスタンスを作成。cacheRepoはnil可
func NewDirectionsUseCase(
	parser service.RouteParseService,
	directionsProvider domainrepo.DirectionsProvider,
	routeExtractor domainrepo.RouteExtractionRepository,
	translator domainrepo.TranslationRepository,
	cacheRepo *repository.FirestoreDirectionsRepository,
) DirectionsUseCase {
	return &directionsUseCaseImpl{
		parser:             parser,
		directionsProvider: directionsProvider,
		routeExtractor:     routeExtractor,
		translator:         translator,
		cacheRepo:          cacheRepo,
	}
}

func (u *directionsUseCaseImpl) GetDirectionsFromText(ctx context.Context, req *model.DirectionsRequest) (*model.DirectionsResult, error) {
	language := normalizeLanguage(req.Language)

	log.Printf("🚀 経路リクエストを処理中: %q (言語: %s)", req.Text, language)

	routeReq, err := u.parser.Parse(req.Text)
	if err != nil {
		if errors.Is(err, service.ErrUnparsableInput) {
			// 解析失敗はヘルプ文で応答する（エラーにしない）
			log.Printf("⚠️ 入力を解析できませんでした: %q", req.Text)
			return &model.DirectionsResult{
				Directions: service.HelpText,
				Language:   language,
			}, nil
		}
		return nil, err
	}

	return u.buildResult(ctx, routeReq, language)
}

func (u *directionsUseCaseImpl) GetDirectionsFromImage(ctx context.Context, image []byte, mimeType, language string) (*model.DirectionsResult, error) {
	if len(image) == 0 {
		return nil, errors.New("画像データが空です")
	}

	routeReq, err := u.routeExtractor.ExtractRouteFromImage(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("画像からの経路抽出に失敗: %w", err)
	}

	return u.buildResult(ctx, routeReq, normalizeLanguage(language))
}

func (u *directionsUseCaseImpl) GetCachedDirections(ctx context.Context, resultID string) (*model.DirectionsResult, error) {
	if u.cacheRepo == nil {
		return nil, errors.New("結果キャッシュが無効化されています")
	}
	return u.cacheRepo.GetDirectionsResult(ctx, resultID)
}

// buildResult 解析済みリクエストから整形・翻訳・キャッシュ保存までを実行する
func (u *directionsUseCaseImpl) buildResult(ctx context.Context, routeReq *model.RouteRequest, language string) (*model.DirectionsResult, error) {
	result := &model.DirectionsResult{
		Origin:      routeReq.Origin,
		Destination: routeReq.Destination,
		Mode:        routeReq.Mode,
		Language:    language,
	}

	route, err := u.directionsProvider.ComputeRoute(ctx, routeReq.Origin, routeReq.Destination, routeReq.Mode)
	if err != nil {
		// コラボレータの失敗は整形済みエラーメッセージとして返す
		log.Printf("❌ 経路の取得に失敗 (%s → %s): %v", routeReq.Origin, routeReq.Destination, err)
		result.Directions = fmt.Sprintf("Error: %v", err)
		return result, nil
	}

	result.DistanceMeters = route.DistanceMeters
	result.DurationSeconds = int(route.Duration.Seconds())
	result.Directions = service.FormatDirections(route)

	// 英語の案内文は常に返し、翻訳はその上に付加する
	if language != model.LanguageEnglish {
		translated, err := u.translator.Translate(ctx, result.Directions, language)
		if err != nil {
			log.Printf("⚠️ %sへの翻訳に失敗、英語のみ返却: %v", language, err)
		} else {
			result.TranslatedDirections = translated
		}
	}

	if u.cacheRepo != nil {
		resultID, err := u.cacheRepo.SaveDirectionsResult(ctx, result, directionsResultTTLHours)
		if err != nil {
			// キャッシュ保存の失敗でリクエスト全体は落とさない
			log.Printf("⚠️ 結果のキャッシュ保存に失敗: %v", err)
		} else {
			result.ResultID = resultID
		}
	}

	log.Printf("✅ 経路案内を生成: %s → %s (%s)", result.Origin, result.Destination, result.Mode)
	return result, nil
}

func normalizeLanguage(language string) string {
	if language == "" {
		return model.LanguageEnglish
	}
	return language
}
