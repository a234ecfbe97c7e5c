package billing

import (
	"math"

	"tripbill-be-svc/internal/models"
)

// Billing model tags carried on the vendor record. Any other tag falls
// back to a flat per-km rate.
const (
	ModelTrip    = "trip"
	ModelPackage = "package"
	ModelHybrid  = "hybrid"
)

// RateModel converts trip measurements into a billable amount. Each
// variant carries its own typed rate fields, resolved from the vendor's
// sparse config map at parse time.
type RateModel interface {
	Amount(trip *models.Trip) float64
}

// TripRate bills by distance and duration plus surcharges for usage
// beyond the contracted allowance
type TripRate struct {
	PerKM         float64
	PerHour       float64
	ExtraKMRate   float64
	ExtraHourRate float64
}

// Amount returns distance*per_km + hours*per_hour + extras
func (r TripRate) Amount(trip *models.Trip) float64 {
	amount := trip.DistanceKM * r.PerKM
	amount += float64(trip.DurationMinutes) / 60 * r.PerHour
	amount += trip.ExtraKM * r.ExtraKMRate
	amount += trip.ExtraHours * r.ExtraHourRate
	return amount
}

// PackageRate bills a fixed monthly cost per trip plus an extra-distance
// surcharge. Distance and duration are ignored.
type PackageRate struct {
	MonthlyCost float64
	ExtraKMRate float64
}

// Amount returns monthly_cost + extra_km surcharge
func (r PackageRate) Amount(trip *models.Trip) float64 {
	return r.MonthlyCost + trip.ExtraKM*r.ExtraKMRate
}

// HybridRate bills a base monthly cost plus distance and extra-distance
// charges
type HybridRate struct {
	MonthlyCost float64
	PerKM       float64
	ExtraKMRate float64
}

// Amount returns monthly_cost + distance*per_km + extra_km surcharge
func (r HybridRate) Amount(trip *models.Trip) float64 {
	return r.MonthlyCost + trip.DistanceKM*r.PerKM + trip.ExtraKM*r.ExtraKMRate
}

// FlatRate is the fallback for unknown model tags: one unit per km,
// ignoring all configuration
type FlatRate struct{}

// Amount returns the raw distance
func (FlatRate) Amount(trip *models.Trip) float64 {
	return trip.DistanceKM
}

// ParseRateModel resolves a vendor's model tag and sparse config map into
// a concrete RateModel with defaults applied for absent keys. Unknown
// config keys are ignored. Never fails.
func ParseRateModel(model string, config models.RateConfig) RateModel {
	switch model {
	case ModelTrip:
		return TripRate{
			PerKM:         lookup(config, "per_km", 1.0),
			PerHour:       lookup(config, "per_hour", 0.0),
			ExtraKMRate:   lookup(config, "extra_km_rate", 2.0),
			ExtraHourRate: lookup(config, "extra_hour_rate", 5.0),
		}
	case ModelPackage:
		return PackageRate{
			MonthlyCost: lookup(config, "monthly_cost", 1000.0),
			ExtraKMRate: lookup(config, "extra_km_rate", 2.0),
		}
	case ModelHybrid:
		return HybridRate{
			MonthlyCost: lookup(config, "monthly_cost", 500.0),
			PerKM:       lookup(config, "per_km", 1.0),
			ExtraKMRate: lookup(config, "extra_km_rate", 2.0),
		}
	default:
		return FlatRate{}
	}
}

// Evaluate computes the billable amount for a trip under the given model
// and config, rounded to two decimal places. Pure and deterministic; out
// of range measurements are not rejected, the formula applies as given.
func Evaluate(model string, config models.RateConfig, trip *models.Trip) float64 {
	return round2(ParseRateModel(model, config).Amount(trip))
}

func lookup(config models.RateConfig, key string, fallback float64) float64 {
	if v, ok := config[key]; ok {
		return v
	}
	return fallback
}

// round2 rounds to two decimals, halves away from zero
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
