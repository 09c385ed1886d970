package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient 経路案内の結果キャッシュが使うFirestoreクライアントのラッパー
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient 新しいFirestoreクライアントを作成する。
// Cloud Run上ではデフォルト認証、ローカルでは認証ファイルにフォールバックする
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	// Cloud Run環境の検出
	if os.Getenv("K_SERVICE") != "" {
		log.Printf("☁️ Cloud Run環境: デフォルト認証でFirestoreに接続します")
		client, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("Firestoreクライアントの作成に失敗（デフォルト認証）: %w", err)
		}
		log.Printf("✅ Firestoreに接続しました (project: %s)", projectID)
		return &FirestoreClient{client: client}, nil
	}

	// ローカル環境では環境変数またはファイルから認証
	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsFile == "" {
		credentialsFile = "akshar-firestore-key.json"
	}

	var client *firestore.Client
	var err error
	if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
		log.Printf("⚠️ 認証ファイルが見つかりません (%s)、デフォルト認証を試行します", credentialsFile)
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		log.Printf("📄 認証ファイルを使用: %s", credentialsFile)
		client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	}
	if err != nil {
		return nil, fmt.Errorf("Firestoreクライアントの作成に失敗: %w", err)
	}

	log.Printf("✅ Firestoreに接続しました (project: %s)", projectID)
	return &FirestoreClient{client: client}, nil
}

// Close クライアントを閉じる
func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

// GetClient 内部のFirestoreクライアントを取得
func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
