package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient 自前ホストのPOIテーブル（PostGIS）へ直接続するクライアント。
// POI_BACKEND=postgres の場合のみ初期化される
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient 新しいPostgreSQLクライアントを作成。
// Supabaseホストの接続情報（SUPABASE_URL / SUPABASE_DB_PASSWORD）から接続文字列を組み立てる
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")

	if supabaseURL == "" {
		return nil, fmt.Errorf("POIバックエンドにpostgresを指定する場合はSUPABASE_URLが必要です")
	}
	if supabasePassword == "" {
		return nil, fmt.Errorf("POIバックエンドにpostgresを指定する場合はSUPABASE_DB_PASSWORDが必要です")
	}

	// https://xxx.supabase.co からプロジェクトホストを取り出し、pooler用ポート6543で接続する
	host := strings.TrimPrefix(supabaseURL, "https://")

	connStr := fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, supabasePassword,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("POIデータベース接続の初期化に失敗: %w", err)
	}

	// 周辺検索は経路1本あたり最大5クエリ。小さめのプールで十分
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("POIデータベースへの接続に失敗: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck POIデータベース接続のヘルスチェック
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("POIデータベースクライアントが初期化されていません")
	}
	return pc.DB.Ping()
}
