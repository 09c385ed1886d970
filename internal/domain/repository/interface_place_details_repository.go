package repository

import (
	"context"

	"Akshar-App/internal/domain/model"
)

// PlaceDetailsRepository プレイスIDから詳細情報を取得するリポジトリ
type PlaceDetailsRepository interface {
	// GetPlaceDetails 詳細を取得する。見つからない場合はnilとエラーを返す
	GetPlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error)

	// BuildPhotoURL 写真参照トークンから写真URLを構築する（純粋な文字列組み立て、API呼び出しなし）
	BuildPhotoURL(photoReference string, maxWidth int) string
}
