package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Akshar-App/internal/domain/model"
	"Akshar-App/internal/domain/service"
)

type stubParser struct {
	req *model.RouteRequest
	err error
}

func (s *stubParser) Parse(input string) (*model.RouteRequest, error) {
	return s.req, s.err
}

type stubDirectionsProvider struct {
	route *model.RouteInfo
	err   error
}

func (s *stubDirectionsProvider) ComputeRoute(ctx context.Context, origin, destination string, mode model.TransportMode) (*model.RouteInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	route := *s.route
	route.Origin = origin
	route.Destination = destination
	route.Mode = mode
	return &route, nil
}

type stubExtractor struct {
	req *model.RouteRequest
	err error
}

func (s *stubExtractor) ExtractRouteFromImage(ctx context.Context, image []byte, mimeType string) (*model.RouteRequest, error) {
	return s.req, s.err
}

type stubTranslator struct {
	prefix string
	err    error
}

func (s *stubTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.prefix + text, nil
}

func testRoute() *model.RouteInfo {
	return &model.RouteInfo{
		DistanceMeters: 148000,
		Duration:       150 * time.Minute,
		Steps: []model.RouteStep{
			{Instruction: "Head north", DistanceMeters: 450},
		},
	}
}

func TestDirectionsUseCase_GetDirectionsFromText(t *testing.T) {
	ctx := context.Background()

	t.Run("解析失敗はヘルプ文を返す（エラーにしない）", func(t *testing.T) {
		uc := NewDirectionsUseCase(
			&stubParser{err: service.ErrUnparsableInput},
			&stubDirectionsProvider{route: testRoute()},
			&stubExtractor{},
			&stubTranslator{},
			nil,
		)

		result, err := uc.GetDirectionsFromText(ctx, &model.DirectionsRequest{Text: "gibberish"})
		assert.NoError(t, err)
		assert.Equal(t, service.HelpText, result.Directions)
		assert.Equal(t, model.LanguageEnglish, result.Language)
		assert.Empty(t, result.Origin)
	})

	t.Run("経路取得失敗は整形済みエラーメッセージになる", func(t *testing.T) {
		uc := NewDirectionsUseCase(
			&stubParser{req: &model.RouteRequest{Origin: "pune", Destination: "mumbai", Mode: model.ModeDrive}},
			&stubDirectionsProvider{err: errors.New("no route found")},
			&stubExtractor{},
			&stubTranslator{},
			nil,
		)

		result, err := uc.GetDirectionsFromText(ctx, &model.DirectionsRequest{Text: "pune to mumbai"})
		assert.NoError(t, err)
		assert.Equal(t, "pune", result.Origin)
		assert.Equal(t, "mumbai", result.Destination)
		assert.True(t, strings.HasPrefix(result.Directions, "Error:"))
	})

	t.Run("英語指定では翻訳しない", func(t *testing.T) {
		uc := NewDirectionsUseCase(
			&stubParser{req: &model.RouteRequest{Origin: "pune", Destination: "mumbai", Mode: model.ModeDrive}},
			&stubDirectionsProvider{route: testRoute()},
			&stubExtractor{},
			&stubTranslator{prefix: "[hi] "},
			nil,
		)

		result, err := uc.GetDirectionsFromText(ctx, &model.DirectionsRequest{Text: "pune to mumbai"})
		assert.NoError(t, err)
		assert.Contains(t, result.Directions, "Route from pune to mumbai:")
		assert.Empty(t, result.TranslatedDirections)
		assert.Equal(t, 148000, result.DistanceMeters)
		assert.Equal(t, 9000, result.DurationSeconds)
	})

	t.Run("翻訳指定時は英語と翻訳の両方を返す", func(t *testing.T) {
		uc := NewDirectionsUseCase(
			&stubParser{req: &model.RouteRequest{Origin: "pune", Destination: "mumbai", Mode: model.ModeDrive}},
			&stubDirectionsProvider{route: testRoute()},
			&stubExtractor{},
			&stubTranslator{prefix: "[hi] "},
			nil,
		)

		result, err := uc.GetDirectionsFromText(ctx, &model.DirectionsRequest{Text: "pune to mumbai", Language: "Hindi"})
		assert.NoError(t, err)
		assert.Contains(t, result.Directions, "Route from pune to mumbai:")
		assert.True(t, strings.HasPrefix(result.TranslatedDirections, "[hi] "))
		assert.Equal(t, "Hindi", result.Language)
	})

	t.Run("翻訳失敗時は英語のみ返す（エラーにしない）", func(t *testing.T) {
		uc := NewDirectionsUseCase(
			&stubParser{req: &model.RouteRequest{Origin: "pune", Destination: "mumbai", Mode: model.ModeDrive}},
			&stubDirectionsProvider{route: testRoute()},
			&stubExtractor{},
			&stubTranslator{err: errors.New("quota exceeded")},
			nil,
		)

		result, err := uc.GetDirectionsFromText(ctx, &model.DirectionsRequest{Text: "pune to mumbai", Language: "Hindi"})
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Directions)
		assert.Empty(t, result.TranslatedDirections)
	})
}

func TestDirectionsUseCase_GetDirectionsFromImage(t *testing.T) {
	ctx := context.Background()

	t.Run("抽出結果から経路案内を生成する", func(t *testing.T) {
		uc := NewDirectionsUseCase(
			&stubParser{},
			&stubDirectionsProvider{route: testRoute()},
			&stubExtractor{req: &model.RouteRequest{Origin: "delhi", Destination: "agra", Mode: model.ModeTransit}},
			&stubTranslator{},
			nil,
		)

		result, err := uc.GetDirectionsFromImage(ctx, []byte{0x89, 0x50}, "image/png", "")
		assert.NoError(t, err)
		assert.Equal(t, "delhi", result.Origin)
		assert.Equal(t, "agra", result.Destination)
		assert.Equal(t, model.ModeTransit, result.Mode)
	})

	t.Run("空の画像はエラー", func(t *testing.T) {
		uc := NewDirectionsUseCase(&stubParser{}, &stubDirectionsProvider{route: testRoute()}, &stubExtractor{}, &stubTranslator{}, nil)

		result, err := uc.GetDirectionsFromImage(ctx, nil, "", "")
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("抽出失敗はエラーとして伝播する", func(t *testing.T) {
		uc := NewDirectionsUseCase(
			&stubParser{},
			&stubDirectionsProvider{route: testRoute()},
			&stubExtractor{err: errors.New("出発地・目的地を特定できませんでした")},
			&stubTranslator{},
			nil,
		)

		result, err := uc.GetDirectionsFromImage(ctx, []byte{1}, "image/png", "")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestDirectionsUseCase_GetCachedDirections(t *testing.T) {
	t.Run("キャッシュ無効時はエラー", func(t *testing.T) {
		uc := NewDirectionsUseCase(&stubParser{}, &stubDirectionsProvider{route: testRoute()}, &stubExtractor{}, &stubTranslator{}, nil)

		result, err := uc.GetCachedDirections(context.Background(), "temp_res_x")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
