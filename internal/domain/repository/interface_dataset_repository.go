package repository

import (
	"context"
	"errors"

	"chargelk-planner/internal/domain/model"
)

// ErrUnknownSource DATASET_SOURCEが未知のデータソースを指定した場合のエラー
var ErrUnknownSource = errors.New("unknown dataset source")

// DatasetRepository 充電ステーションと需要ゾーンを読み込むリポジトリ
// 実装はid順にレコードを返す
type DatasetRepository interface {
	GetChargingStations(ctx context.Context) ([]model.ChargingStation, error)
	GetDemandZones(ctx context.Context) ([]model.DemandZone, error)
}
