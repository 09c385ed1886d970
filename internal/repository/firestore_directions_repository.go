package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"Akshar-App/internal/domain/model"
)

const directionsCollection = "directionsResults"

// FirestoreDirectionsRepository Firestoreを使用した整形済み経路案内のキャッシュリポジトリ
type FirestoreDirectionsRepository struct {
	client *firestore.Client
}

// NewFirestoreDirectionsRepository 新しいFirestoreDirectionsRepositoryインスタンスを作成
func NewFirestoreDirectionsRepository(client *firestore.Client) *FirestoreDirectionsRepository {
	return &FirestoreDirectionsRepository{
		client: client,
	}
}

// SaveDirectionsResult は整形済みの経路案内をTTL付きで保存し、生成したresult_idを返す
func (r *FirestoreDirectionsRepository) SaveDirectionsResult(ctx context.Context, result *model.DirectionsResult, ttlHours int) (string, error) {
	resultID := fmt.Sprintf("temp_res_%s", uuid.New().String())

	firestoreData := result.ToFirestoreDirectionsResult(ttlHours)

	_, err := r.client.Collection(directionsCollection).Doc(resultID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save directions result %s: %v", resultID, err)
		return "", fmt.Errorf("経路案内の保存に失敗しました: %w", err)
	}

	log.Printf("💾 Directions result saved: %s (expires in %d hours)", resultID, ttlHours)
	return resultID, nil
}

// GetDirectionsResult は指定されたresult_idの経路案内をFirestoreから取得する
func (r *FirestoreDirectionsRepository) GetDirectionsResult(ctx context.Context, resultID string) (*model.DirectionsResult, error) {
	doc, err := r.client.Collection(directionsCollection).Doc(resultID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("経路案内が見つかりません（有効期限切れまたは無効なID）: %s", resultID)
		}
		return nil, fmt.Errorf("経路案内の取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreDirectionsResult
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	log.Printf("📖 Directions result retrieved: %s", resultID)
	return firestoreData.ToDirectionsResult(resultID), nil
}
