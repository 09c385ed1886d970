package repository

import (
	"context"

	"Akshar-App/internal/domain/model"
)

// RouteExtractionRepository 画像から経路リクエスト（出発地・目的地・移動手段）を抽出するコラボレータ。
// 実装はAIビジョンモデルを使うが、呼び出し側からはブラックボックスとして扱う
type RouteExtractionRepository interface {
	ExtractRouteFromImage(ctx context.Context, image []byte, mimeType string) (*model.RouteRequest, error)
}
