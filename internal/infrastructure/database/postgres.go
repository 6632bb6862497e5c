package database

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient PostgreSQL直接接続クライアント
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient 新しいPostgreSQLクライアントを作成し、接続テストを行う
func NewPostgreSQLClient(connStr string) (*PostgreSQLClient, error) {
	if connStr == "" {
		return nil, fmt.Errorf("PostgreSQL connection string is empty")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// NewPostgreSQLClientWithRetry 接続に失敗した場合、attempts回までwait間隔で再試行する
func NewPostgreSQLClientWithRetry(connStr string, attempts int, wait time.Duration) (*PostgreSQLClient, error) {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 1; i <= attempts; i++ {
		client, err := NewPostgreSQLClient(connStr)
		if err == nil {
			return client, nil
		}
		lastErr = err
		log.Printf("⚠️ PostgreSQL接続に失敗 (%d/%d回目): %v", i, attempts, err)
		if i < attempts {
			time.Sleep(wait)
		}
	}
	return nil, fmt.Errorf("PostgreSQL unreachable after %d attempts: %w", attempts, lastErr)
}

// SupabaseConnString SupabaseのURL (https://<ref>.supabase.co) とDBパスワードから
// PostgreSQL接続文字列を構築（ポート6543を使用）
func SupabaseConnString(supabaseURL, password string) (string, error) {
	if supabaseURL == "" {
		return "", fmt.Errorf("SUPABASE_URL is not set")
	}
	if password == "" {
		return "", fmt.Errorf("SUPABASE_DB_PASSWORD is not set")
	}

	u, err := url.Parse(supabaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid SUPABASE_URL: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		host = strings.TrimSuffix(strings.TrimPrefix(supabaseURL, "https://"), "/")
	}

	return fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, password,
	), nil
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}
