package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/domain/repository"
	"chargelk-planner/internal/infrastructure/database"
	firestoreinfra "chargelk-planner/internal/infrastructure/firestore"
)

// loadAndValidate リポジトリから読み込んだデータがmodel.NewDatasetの検証を通ることを確認
func loadAndValidate(t *testing.T, repo repository.DatasetRepository) {
	t.Helper()
	ctx := context.Background()

	stations, err := repo.GetChargingStations(ctx)
	require.NoError(t, err)
	zones, err := repo.GetDemandZones(ctx)
	require.NoError(t, err)

	_, err = model.NewDataset(stations, zones)
	require.NoError(t, err)

	for i := 1; i < len(stations); i++ {
		require.Less(t, stations[i-1].ID, stations[i].ID)
	}
}

func TestPostgresDatasetRepository_Integration(t *testing.T) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}

	client, err := database.NewPostgreSQLClient(connStr)
	require.NoError(t, err)
	defer client.Close()

	loadAndValidate(t, NewPostgresDatasetRepository(client))
}

func TestSupabaseDatasetRepository_Integration(t *testing.T) {
	url, key := os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY")
	if url == "" || key == "" {
		t.Skip("SUPABASE_URL / SUPABASE_ANON_KEY not set, skipping Supabase integration test")
	}

	client, err := database.NewSupabaseClient(url, key)
	require.NoError(t, err)

	loadAndValidate(t, NewSupabaseDatasetRepository(client))
}

func TestFirestoreDatasetRepository_Integration(t *testing.T) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" || projectID == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST / FIRESTORE_PROJECT_ID not set, skipping Firestore integration test")
	}

	client, err := firestoreinfra.NewFirestoreClient(context.Background(), projectID, "")
	require.NoError(t, err)
	defer client.Close()

	loadAndValidate(t, NewFirestoreDatasetRepository(client.GetClient()))
}
