package service

import (
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chargelk-planner/internal/domain/model"
)

var colombo = orb.Point{79.8612, 6.9271}

func newTestDataset(t *testing.T, stations []model.ChargingStation, zones []model.DemandZone) *model.Dataset {
	t.Helper()
	dataset, err := model.NewDataset(stations, zones)
	require.NoError(t, err)
	return dataset
}

func station(id int, name string, lat, lng float64) model.ChargingStation {
	return model.ChargingStation{ID: id, Name: name, Lat: lat, Lng: lng, Type: model.StationTypeDCFast}
}

func zone(id int, name string, lat, lng float64, density int) model.DemandZone {
	return model.DemandZone{ID: id, Name: name, Lat: lat, Lng: lng, Density: density}
}

func TestAnalyze_DistantStationClampsToMaximum(t *testing.T) {
	dataset := newTestDataset(t,
		[]model.ChargingStation{station(1, "Far Charger", 7.9271, 79.8612)},
		[]model.DemandZone{zone(1, "Fort", 6.9271, 79.8612, 90)},
	)

	result := Analyze(colombo, dataset)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, model.VerdictCriticalGap, result.Verdict)
	assert.Equal(t, model.ColorGreen, result.Color)
	assert.Equal(t, "Fort", result.Metrics.NearestHotspot)
	assert.Equal(t, "90/100", result.Metrics.EstDensity)
	assert.Equal(t, "110.59 km", result.Metrics.NearestCompDist)
	require.Len(t, result.Insights, 3)
	assert.Equal(t, headlineCriticalGap, result.Insights[0])
	assert.Equal(t, "🔌 Nearest Station: Far Charger (110.59km).", result.Insights[1])
	assert.Equal(t, "🏙️ Demand Driver: Fort (0.00km).", result.Insights[2])
}

func TestAnalyze_StationAtQueryPointIsSaturated(t *testing.T) {
	dataset := newTestDataset(t,
		[]model.ChargingStation{station(1, "Fort Charger", 6.9271, 79.8612)},
		[]model.DemandZone{zone(1, "Fort", 6.9271, 79.8612, 90)},
	)

	result := Analyze(colombo, dataset)

	assert.Equal(t, 60, result.Score)
	assert.Equal(t, model.VerdictGoodExpansion, result.Verdict)
	assert.Equal(t, model.ColorOrange, result.Color)
	assert.Equal(t, "0.00 km", result.Metrics.NearestCompDist)
	assert.Equal(t, headlineGoodExpansion, result.Insights[0])
}

func TestAnalyze_ScoringRules(t *testing.T) {
	tests := []struct {
		name            string
		stationLat      float64
		zoneLat         float64
		density         int
		expectedScore   int
		expectedVerdict string
	}{
		{
			name:            "station between 2 and 5 km",
			stationLat:      6.9571, // 北に約3.3km
			zoneLat:         6.9271,
			density:         90,
			expectedScore:   80,
			expectedVerdict: model.VerdictGoodExpansion,
		},
		{
			name:            "isolated from demand",
			stationLat:      7.9271,
			zoneLat:         7.0271, // 北に約11km
			density:         90,
			expectedScore:   60,
			expectedVerdict: model.VerdictGoodExpansion,
		},
		{
			name:            "saturated and low demand clamps to zero",
			stationLat:      6.9271,
			zoneLat:         6.9271,
			density:         10,
			expectedScore:   0,
			expectedVerdict: model.VerdictLowPriority,
		},
		{
			name:            "saturated and isolated",
			stationLat:      6.9371, // 北に約1.1km
			zoneLat:         7.0271,
			density:         95,
			expectedScore:   25,
			expectedVerdict: model.VerdictLowPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := newTestDataset(t,
				[]model.ChargingStation{station(1, "Charger", tt.stationLat, 79.8612)},
				[]model.DemandZone{zone(1, "Zone", tt.zoneLat, 79.8612, tt.density)},
			)

			result := Analyze(colombo, dataset)

			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, tt.expectedVerdict, result.Verdict)
		})
	}
}

func TestScoreFor_Boundaries(t *testing.T) {
	const near, far = 0.5, 10.0

	tests := []struct {
		name      string
		stationKm float64
		zoneKm    float64
		expected  int
	}{
		{"station just inside 2 km", 1.999, near, 20},
		{"station at 2 km", 2.0, near, 40},
		{"station just inside 5 km", 4.999, near, 40},
		{"station at 5 km", 5.0, near, 60},
		{"station just past 5 km", 5.001, near, 60},
		{"zone just inside 5 km", far, 4.999, 60},
		{"zone at 5 km", far, 5.0, 60},
		{"zone just past 5 km", far, 5.001, 20},
		{"zone at 2 km is not penalised", far, 2.0, 60},
		{"saturated and isolated", 1.999, 5.001, 0},
		{"crowded and isolated at the edges", 2.0, 5.001, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreFor(50, tt.stationKm, tt.zoneKm))
		})
	}
}

func TestScoreFor_Clamps(t *testing.T) {
	assert.Equal(t, 100, scoreFor(100, 5.0, 0))
	assert.Equal(t, 0, scoreFor(0, 0, 5.001))
}

func TestAnalyze_PicksNearestRecords(t *testing.T) {
	dataset := newTestDataset(t,
		[]model.ChargingStation{
			station(1, "Kandy", 7.2936, 80.6350),
			station(2, "Colombo", 6.9296, 79.8444),
			station(3, "Galle", 6.0535, 80.2110),
		},
		[]model.DemandZone{
			zone(1, "Peradeniya", 7.2664, 80.5930, 88),
			zone(2, "Galle Fort", 6.0260, 80.2170, 92),
		},
	)

	s, sd := FindNearestStation(orb.Point{80.2170, 6.0260}, dataset)
	assert.Equal(t, "Galle", s.Name)
	assert.Less(t, sd, 5.0)

	z, zd := FindNearestZone(orb.Point{80.6350, 7.2936}, dataset)
	assert.Equal(t, "Peradeniya", z.Name)
	assert.Greater(t, zd, 0.0)
}

func TestAnalyze_SingleRecordIsAlwaysNearest(t *testing.T) {
	dataset := newTestDataset(t,
		[]model.ChargingStation{station(7, "Only Charger", 9.6660, 80.0200)},
		[]model.DemandZone{zone(3, "Only Zone", 6.0260, 80.2170, 50)},
	)

	for _, p := range []orb.Point{{79.8612, 6.9271}, {81.6996, 7.7170}, {-0.1276, 51.5072}} {
		s, _ := FindNearestStation(p, dataset)
		z, _ := FindNearestZone(p, dataset)
		assert.Equal(t, 7, s.ID)
		assert.Equal(t, 3, z.ID)
	}
}

func TestAnalyze_TiesResolveToFirstInListOrder(t *testing.T) {
	dataset := newTestDataset(t,
		[]model.ChargingStation{
			station(1, "First", 6.9371, 79.8612),
			station(2, "Second", 6.9371, 79.8612),
		},
		[]model.DemandZone{
			zone(1, "Zone A", 6.9271, 79.8612, 70),
			zone(2, "Zone B", 6.9271, 79.8612, 40),
		},
	)

	result := Analyze(colombo, dataset)

	assert.Contains(t, result.Insights[1], "First")
	assert.Equal(t, "Zone A", result.Metrics.NearestHotspot)
	assert.Equal(t, "70/100", result.Metrics.EstDensity)
}

func TestAnalyze_IsDeterministic(t *testing.T) {
	dataset := newTestDataset(t,
		[]model.ChargingStation{station(1, "Charger", 6.9062, 79.8708)},
		[]model.DemandZone{zone(1, "Zone", 6.9128, 79.8650, 85)},
	)
	svc := NewViabilityService(dataset)

	first := svc.Analyze(colombo)

	var wg sync.WaitGroup
	results := make([]*model.AnalysisResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Analyze(colombo)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, first, r)
	}
}

func TestAnalyze_ScoreAlwaysWithinBounds(t *testing.T) {
	dataset := newTestDataset(t,
		[]model.ChargingStation{station(1, "Charger", 6.9062, 79.8708)},
		[]model.DemandZone{
			zone(1, "Hot", 6.9128, 79.8650, 100),
			zone(2, "Cold", 8.7020, 81.1900, 0),
		},
	)

	for lat := 5.9; lat <= 9.9; lat += 0.25 {
		for lng := 79.5; lng <= 81.9; lng += 0.25 {
			result := Analyze(orb.Point{lng, lat}, dataset)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		}
	}
}

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		score   int
		verdict string
		color   string
	}{
		{100, model.VerdictCriticalGap, model.ColorGreen},
		{81, model.VerdictCriticalGap, model.ColorGreen},
		{80, model.VerdictGoodExpansion, model.ColorOrange},
		{51, model.VerdictGoodExpansion, model.ColorOrange},
		{50, model.VerdictLowPriority, model.ColorRed},
		{0, model.VerdictLowPriority, model.ColorRed},
	}

	for _, tt := range tests {
		verdict, color := ClassifyScore(tt.score)
		assert.Equal(t, tt.verdict, verdict, "score %d", tt.score)
		assert.Equal(t, tt.color, color, "score %d", tt.score)
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-45))
	assert.Equal(t, 0, ClampScore(0))
	assert.Equal(t, 64, ClampScore(64))
	assert.Equal(t, 100, ClampScore(100))
	assert.Equal(t, 100, ClampScore(110))
}
