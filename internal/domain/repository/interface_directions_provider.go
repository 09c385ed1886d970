package repository

import (
	"context"

	"Akshar-App/internal/domain/model"
)

// DirectionsProvider 出発地・目的地・移動手段から経路を計算する外部コラボレータ
type DirectionsProvider interface {
	// ComputeRoute 経路を1本計算して距離・所要時間・ステップ・ポリラインを返す
	ComputeRoute(ctx context.Context, origin, destination string, mode model.TransportMode) (*model.RouteInfo, error)
}
