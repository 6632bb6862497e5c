package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DATASET_SOURCEで指定できるデータソース
const (
	SourceEmbedded  = "embedded"
	SourceFile      = "file"
	SourcePostgres  = "postgres"
	SourceSupabase  = "supabase"
	SourceFirestore = "firestore"
	SourceDynamoDB  = "dynamodb"
)

// Config 起動時に環境変数から読み込む設定
type Config struct {
	Port               int
	GinMode            string
	DatasetSource      string
	DatasetFile        string
	CORSAllowedOrigins []string

	DatabaseURL        string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string

	FirestoreProjectID string
	GoogleCredentials  string

	DynamoDBStationsTable string
	DynamoDBZonesTable    string
}

// Load .envファイル（存在する場合）と環境変数から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .envファイルが見つかりません。システム環境変数を使用します")
	}
	return FromEnv()
}

// FromEnv 環境変数のみからConfigを作成
func FromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := &Config{
		Port:                  port,
		GinMode:               getEnv("GIN_MODE", "debug"),
		DatasetSource:         strings.ToLower(getEnv("DATASET_SOURCE", SourceEmbedded)),
		DatasetFile:           os.Getenv("DATASET_FILE"),
		CORSAllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		SupabaseURL:           os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:       os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseDBPassword:    os.Getenv("SUPABASE_DB_PASSWORD"),
		FirestoreProjectID:    os.Getenv("FIRESTORE_PROJECT_ID"),
		GoogleCredentials:     os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		DynamoDBStationsTable: os.Getenv("DYNAMODB_STATIONS_TABLE"),
		DynamoDBZonesTable:    os.Getenv("DYNAMODB_ZONES_TABLE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 選択されたデータソースに必要な設定をチェック
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	for _, origin := range c.CORSAllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}

	var missing []string
	require := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	switch c.DatasetSource {
	case SourceEmbedded:
	case SourceFile:
		require("DATASET_FILE", c.DatasetFile)
	case SourcePostgres:
		if c.DatabaseURL == "" {
			require("SUPABASE_URL", c.SupabaseURL)
			require("SUPABASE_DB_PASSWORD", c.SupabaseDBPassword)
		}
	case SourceSupabase:
		require("SUPABASE_URL", c.SupabaseURL)
		require("SUPABASE_ANON_KEY", c.SupabaseAnonKey)
	case SourceFirestore:
		require("FIRESTORE_PROJECT_ID", c.FirestoreProjectID)
	case SourceDynamoDB:
		require("DYNAMODB_STATIONS_TABLE", c.DynamoDBStationsTable)
		require("DYNAMODB_ZONES_TABLE", c.DynamoDBZonesTable)
	default:
		return fmt.Errorf("unsupported DATASET_SOURCE %q", c.DatasetSource)
	}

	if len(missing) > 0 {
		return fmt.Errorf("environment variables not set for %s source: %s", c.DatasetSource, strings.Join(missing, ", "))
	}
	return nil
}

// Addr http.Serverの待ち受けアドレス
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
