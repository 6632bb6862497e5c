package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/domain/repository"
)

// DynamoDBScanAPI モック可能なDynamoDBクライアントのインターフェース
type DynamoDBScanAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type DynamoDBDatasetRepository struct {
	client        DynamoDBScanAPI
	stationsTable string
	zonesTable    string
}

func NewDynamoDBDatasetRepository(client DynamoDBScanAPI, stationsTable, zonesTable string) repository.DatasetRepository {
	return &DynamoDBDatasetRepository{
		client:        client,
		stationsTable: stationsTable,
		zonesTable:    zonesTable,
	}
}

// scanAll LastEvaluatedKeyをたどってテーブル全件を取得
func (r *DynamoDBDatasetRepository) scanAll(ctx context.Context, table string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		items = append(items, out.Items...)

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *DynamoDBDatasetRepository) GetChargingStations(ctx context.Context) ([]model.ChargingStation, error) {
	items, err := r.scanAll(ctx, r.stationsTable)
	if err != nil {
		return nil, err
	}

	var records []StationRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal charging stations: %w", err)
	}

	return toChargingStations(records)
}

func (r *DynamoDBDatasetRepository) GetDemandZones(ctx context.Context) ([]model.DemandZone, error) {
	items, err := r.scanAll(ctx, r.zonesTable)
	if err != nil {
		return nil, err
	}

	var records []ZoneRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal demand zones: %w", err)
	}

	return toDemandZones(records)
}
