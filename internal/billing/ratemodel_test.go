package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripbill-be-svc/internal/models"
)

func TestEvaluateTripModel(t *testing.T) {
	trip := &models.Trip{
		DistanceKM:      12.5,
		DurationMinutes: 90,
		ExtraKM:         3,
		ExtraHours:      1,
	}
	config := models.RateConfig{
		"per_km":          2.0,
		"per_hour":        10.0,
		"extra_km_rate":   3.0,
		"extra_hour_rate": 8.0,
	}

	// 12.5*2 + 1.5*10 + 3*3 + 1*8
	assert.Equal(t, 57.0, Evaluate(ModelTrip, config, trip))
}

func TestEvaluateDefaults(t *testing.T) {
	trip := &models.Trip{
		DistanceKM:      10,
		DurationMinutes: 60,
		ExtraKM:         2,
		ExtraHours:      1,
	}

	tests := []struct {
		name  string
		model string
		want  float64
	}{
		// 10*1.0 + 1*0.0 + 2*2.0 + 1*5.0
		{name: "trip model", model: ModelTrip, want: 19.0},
		// 1000.0 + 2*2.0
		{name: "package model", model: ModelPackage, want: 1004.0},
		// 500.0 + 10*1.0 + 2*2.0
		{name: "hybrid model", model: ModelHybrid, want: 514.0},
		// 10*1.0 flat fallback
		{name: "unknown model", model: "mystery", want: 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.model, models.RateConfig{}, trip))
		})
	}
}

func TestEvaluateNilConfig(t *testing.T) {
	trip := &models.Trip{DistanceKM: 10}
	assert.Equal(t, 10.0, Evaluate(ModelTrip, nil, trip))
}

func TestEvaluateIgnoresUnknownKeys(t *testing.T) {
	trip := &models.Trip{DistanceKM: 5}
	config := models.RateConfig{"per_mile": 99.0, "surge": 3.0}

	assert.Equal(t, 5.0, Evaluate(ModelTrip, config, trip))
}

func TestEvaluateFallbackIgnoresConfig(t *testing.T) {
	trip := &models.Trip{DistanceKM: 7.5, DurationMinutes: 120, ExtraKM: 4}
	config := models.RateConfig{"per_km": 100.0, "monthly_cost": 100.0}

	assert.Equal(t, 7.5, Evaluate("", config, trip))
}

func TestEvaluateRounding(t *testing.T) {
	trip := &models.Trip{DistanceKM: 3.333}
	config := models.RateConfig{"per_km": 1.0}

	// 3.333 rounds half away from zero at two decimals
	assert.Equal(t, 3.33, Evaluate(ModelTrip, config, trip))

	// 1.005 is 1.00499999... in binary, so it rounds down
	trip.DistanceKM = 1.005
	assert.Equal(t, 1.0, Evaluate(ModelTrip, config, trip))
}

func TestEvaluateNegativeMeasurements(t *testing.T) {
	// Negative inputs are not rejected; the formula applies arithmetically
	trip := &models.Trip{DistanceKM: -10, DurationMinutes: -60}
	config := models.RateConfig{"per_km": 2.0, "per_hour": 5.0}

	assert.Equal(t, -25.0, Evaluate(ModelTrip, config, trip))
}

func TestEvaluatePackageIgnoresDistanceAndDuration(t *testing.T) {
	a := Evaluate(ModelPackage, models.RateConfig{}, &models.Trip{DistanceKM: 1, DurationMinutes: 5})
	b := Evaluate(ModelPackage, models.RateConfig{}, &models.Trip{DistanceKM: 500, DurationMinutes: 900})

	assert.Equal(t, a, b)
}

func TestParseRateModelVariants(t *testing.T) {
	assert.IsType(t, TripRate{}, ParseRateModel(ModelTrip, nil))
	assert.IsType(t, PackageRate{}, ParseRateModel(ModelPackage, nil))
	assert.IsType(t, HybridRate{}, ParseRateModel(ModelHybrid, nil))
	assert.IsType(t, FlatRate{}, ParseRateModel("whatever", nil))
}
