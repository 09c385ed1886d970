package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Akshar-App/internal/database"
	"Akshar-App/internal/domain/service"
	"Akshar-App/internal/handler"
	"Akshar-App/internal/infrastructure/ai"
	infradb "Akshar-App/internal/infrastructure/database"
	"Akshar-App/internal/infrastructure/firestore"
	"Akshar-App/internal/infrastructure/maps"
	"Akshar-App/internal/repository"
	"Akshar-App/internal/usecase"

	domainrepo "Akshar-App/internal/domain/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	googleMapsAPIKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")

	if googleMapsAPIKey == "" || geminiAPIKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		if googleMapsAPIKey == "" {
			fmt.Println("  - GOOGLE_MAPS_API_KEY")
		}
		if geminiAPIKey == "" {
			fmt.Println("  - GEMINI_API_KEY")
		}
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	// 外部コラボレータのプロバイダ
	routesProvider := maps.NewGoogleRoutesProvider(googleMapsAPIKey)
	placesProvider := maps.NewGooglePlacesProvider(googleMapsAPIKey)
	geminiClient := ai.NewGeminiClient(geminiAPIKey)
	routeExtractor := ai.NewGeminiRouteExtractor(geminiClient)
	translator := ai.NewGeminiTranslator(geminiClient)

	healthChecks := []handler.NamedHealthCheck{
		{Name: "google_maps", Check: placesProvider.HealthCheck},
	}

	// 周辺検索バックエンドの選択（既定はGoogle Places、POI_BACKENDで自前DBに切替）
	nearbyRepo, dbChecks, err := selectNearbyBackend(placesProvider)
	if err != nil {
		log.Fatalf("周辺検索バックエンドの初期化に失敗: %v", err)
	}
	healthChecks = append(healthChecks, dbChecks...)

	// Firestoreキャッシュ（FIRESTORE_PROJECT_ID未設定なら無効）
	var cacheRepo *repository.FirestoreDirectionsRepository
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer firestoreClient.Close()
		cacheRepo = repository.NewFirestoreDirectionsRepository(firestoreClient.GetClient())
	} else {
		log.Printf("⚠️ FIRESTORE_PROJECT_ID未設定のため結果キャッシュは無効です")
	}

	// ドメインサービスとユースケース
	parser := service.NewRouteParseService()
	poiSearchService := service.NewPOISearchService(routesProvider, nearbyRepo, nil)
	directionsUseCase := usecase.NewDirectionsUseCase(parser, routesProvider, routeExtractor, translator, cacheRepo)
	poiSearchUseCase := usecase.NewPOISearchUseCase(poiSearchService, placesProvider)

	directionsHandler := handler.NewRouteDirectionsHandler(directionsUseCase)
	poiHandler := handler.NewPOIHandler(poiSearchUseCase)
	metaHandler := handler.NewMetaHandler(healthChecks)

	r := gin.Default()

	routes := r.Group("/routes")
	{
		routes.POST("/directions", directionsHandler.PostDirections)
		routes.POST("/directions/image", directionsHandler.PostDirectionsFromImage)
		routes.GET("/directions/:id", directionsHandler.GetDirectionsResult)
	}

	pois := r.Group("/pois")
	{
		pois.GET("/along-route", poiHandler.GetPOIsAlongRoute)
		pois.GET("/:place_id", poiHandler.GetPlaceDetails)
	}

	r.GET("/languages", metaHandler.GetLanguages)
	r.GET("/categories", metaHandler.GetCategories)
	r.GET("/api/health", metaHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Akshar-App server starting on :%s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}

// selectNearbyBackend はPOI_BACKEND環境変数に応じて周辺検索の実装を選択する
func selectNearbyBackend(placesProvider *maps.GooglePlacesProvider) (domainrepo.NearbySearchRepository, []handler.NamedHealthCheck, error) {
	switch backend := os.Getenv("POI_BACKEND"); backend {
	case "", "places":
		return placesProvider, nil, nil

	case "postgres":
		postgresClient, err := infradb.NewPostgreSQLClient()
		if err != nil {
			return nil, nil, err
		}
		check := handler.NamedHealthCheck{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return postgresClient.HealthCheck() },
		}
		return repository.NewPostgresPOIsRepository(postgresClient), []handler.NamedHealthCheck{check}, nil

	case "supabase":
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			return nil, nil, err
		}
		check := handler.NamedHealthCheck{
			Name:  "supabase",
			Check: func(ctx context.Context) error { return supabaseClient.HealthCheck() },
		}
		return repository.NewSupabasePOIsRepository(supabaseClient), []handler.NamedHealthCheck{check}, nil

	default:
		return nil, nil, fmt.Errorf("未知のPOI_BACKENDです: %s", backend)
	}
}
