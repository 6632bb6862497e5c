package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"chargelk-planner/internal/config"
	"chargelk-planner/internal/domain/repository"
	"chargelk-planner/internal/infrastructure/database"
	dynamodbinfra "chargelk-planner/internal/infrastructure/dynamodb"
	firestoreinfra "chargelk-planner/internal/infrastructure/firestore"
)

const (
	postgresConnectAttempts = 3
	postgresRetryWait       = 2 * time.Second
)

// NewDatasetRepository cfg.DatasetSourceに応じたリポジトリを作成
// 返すcleanupはクライアント接続を解放する（nilにはならない）
func NewDatasetRepository(ctx context.Context, cfg *config.Config) (repository.DatasetRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.DatasetSource {
	case config.SourceEmbedded:
		log.Printf("📦 組み込みデータセットを使用")
		return NewEmbeddedDatasetRepository(), noop, nil

	case config.SourceFile:
		log.Printf("📄 データセットファイルを使用: %s", cfg.DatasetFile)
		return NewFileDatasetRepository(cfg.DatasetFile), noop, nil

	case config.SourcePostgres:
		connStr := cfg.DatabaseURL
		if connStr == "" {
			var err error
			connStr, err = database.SupabaseConnString(cfg.SupabaseURL, cfg.SupabaseDBPassword)
			if err != nil {
				return nil, noop, err
			}
		}
		client, err := database.NewPostgreSQLClientWithRetry(connStr, postgresConnectAttempts, postgresRetryWait)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("✅ PostgreSQL接続成功")
		return NewPostgresDatasetRepository(client), client.Close, nil

	case config.SourceSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, noop, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, noop, err
		}
		log.Printf("✅ Supabaseクライアントを初期化しました (URL: %s)", client.URL())
		return NewSupabaseDatasetRepository(client), noop, nil

	case config.SourceFirestore:
		client, err := firestoreinfra.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.GoogleCredentials)
		if err != nil {
			return nil, noop, err
		}
		return NewFirestoreDatasetRepository(client.GetClient()), client.Close, nil

	case config.SourceDynamoDB:
		client, err := dynamodbinfra.NewDynamoDBClient(ctx)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("✅ DynamoDBテーブルを使用: %s, %s", cfg.DynamoDBStationsTable, cfg.DynamoDBZonesTable)
		return NewDynamoDBDatasetRepository(client, cfg.DynamoDBStationsTable, cfg.DynamoDBZonesTable), noop, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", repository.ErrUnknownSource, cfg.DatasetSource)
}
