package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chargelk-planner/internal/domain/model"
)

// MockDynamoDBClient DynamoDBのScan呼び出しのモック
type MockDynamoDBClient struct {
	mock.Mock
}

func (m *MockDynamoDBClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*dynamodb.ScanOutput), args.Error(1)
}

func stationItem(id, name, lat, lng, stationType string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":   &types.AttributeValueMemberN{Value: id},
		"name": &types.AttributeValueMemberS{Value: name},
		"lat":  &types.AttributeValueMemberN{Value: lat},
		"lng":  &types.AttributeValueMemberN{Value: lng},
		"type": &types.AttributeValueMemberS{Value: stationType},
	}
}

func forTable(table string, firstPage bool) interface{} {
	return mock.MatchedBy(func(input *dynamodb.ScanInput) bool {
		return *input.TableName == table && (input.ExclusiveStartKey == nil) == firstPage
	})
}

func TestDynamoDBDatasetRepository_GetChargingStations_Paginates(t *testing.T) {
	mockClient := new(MockDynamoDBClient)
	repo := NewDynamoDBDatasetRepository(mockClient, "test-stations", "test-zones")

	lastKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberN{Value: "9"}}

	mockClient.On("Scan", mock.Anything, forTable("test-stations", true)).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{
			stationItem("9", "East Lagoon Charger", "7.717", "81.6996", model.StationTypeACStandard),
		},
		LastEvaluatedKey: lastKey,
	}, nil).Once()
	mockClient.On("Scan", mock.Anything, forTable("test-stations", false)).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{
			stationItem("1", "ChargeNet - Arcade Independence", "6.9062", "79.8708", model.StationTypeDCFast),
		},
	}, nil).Once()

	stations, err := repo.GetChargingStations(context.Background())

	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, 1, stations[0].ID)
	assert.Equal(t, 79.8708, stations[0].Lng)
	assert.Equal(t, "East Lagoon Charger", stations[1].Name)
	mockClient.AssertExpectations(t)
}

func TestDynamoDBDatasetRepository_GetDemandZones(t *testing.T) {
	mockClient := new(MockDynamoDBClient)
	repo := NewDynamoDBDatasetRepository(mockClient, "test-stations", "test-zones")

	mockClient.On("Scan", mock.Anything, forTable("test-zones", true)).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{
			{
				"id":      &types.AttributeValueMemberN{Value: "4"},
				"name":    &types.AttributeValueMemberS{Value: "Galle Fort"},
				"lat":     &types.AttributeValueMemberN{Value: "6.026"},
				"lng":     &types.AttributeValueMemberN{Value: "80.217"},
				"density": &types.AttributeValueMemberN{Value: "92"},
			},
		},
	}, nil).Once()

	zones, err := repo.GetDemandZones(context.Background())

	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, model.DemandZone{ID: 4, Name: "Galle Fort", Lat: 6.026, Lng: 80.217, Density: 92}, zones[0])
	mockClient.AssertExpectations(t)
}

func TestDynamoDBDatasetRepository_ScanError(t *testing.T) {
	mockClient := new(MockDynamoDBClient)
	repo := NewDynamoDBDatasetRepository(mockClient, "test-stations", "test-zones")

	mockClient.On("Scan", mock.Anything, mock.Anything).Return((*dynamodb.ScanOutput)(nil), errors.New("throttled"))

	_, err := repo.GetChargingStations(context.Background())

	assert.ErrorContains(t, err, "failed to scan test-stations")
	assert.ErrorContains(t, err, "throttled")
}

func TestDynamoDBDatasetRepository_UnmarshalError(t *testing.T) {
	mockClient := new(MockDynamoDBClient)
	repo := NewDynamoDBDatasetRepository(mockClient, "test-stations", "test-zones")

	mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{
			{"id": &types.AttributeValueMemberS{Value: "not-a-number"}},
		},
	}, nil)

	_, err := repo.GetChargingStations(context.Background())

	assert.ErrorContains(t, err, "failed to unmarshal charging stations")
}

func TestDynamoDBDatasetRepository_MissingAttributes(t *testing.T) {
	mockClient := new(MockDynamoDBClient)
	repo := NewDynamoDBDatasetRepository(mockClient, "test-stations", "test-zones")

	mockClient.On("Scan", mock.Anything, forTable("test-zones", true)).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{
			{
				"id":   &types.AttributeValueMemberN{Value: "4"},
				"name": &types.AttributeValueMemberS{Value: "Galle Fort"},
			},
		},
	}, nil).Once()

	zones, err := repo.GetDemandZones(context.Background())

	assert.Nil(t, zones)
	var dsErr *model.DatasetError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, 4, dsErr.ID)
	assert.Equal(t, "record 0 is missing lat, lng, density", dsErr.Message)
	mockClient.AssertExpectations(t)
}
