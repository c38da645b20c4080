// Package stationkeeping estimates the propellant budget needed to hold a
// large reflective film against solar radiation pressure over a mission
// lifetime, with a hybrid solar/fusion/beamed power model.
package stationkeeping

import (
	"math"

	"github.com/dysonworks/occulter/pkg/constants"
	"github.com/dysonworks/occulter/pkg/scenario"
)

// ThrustPerKW converts electrical power to thrust for a high-Isp electric
// propulsion system, N per kW.
const ThrustPerKW = 0.10

// Counter-thrust is sized at twice the SRP force to cover attitude losses
// and off-nominal pointing.
const thrustMargin = 2.0

// Result is the station-keeping budget for one mission case.
type Result struct {
	AUDistance         float64 `json:"au_distance"`
	MissionYears       float64 `json:"mission_years"`
	PowerKW            float64 `json:"power_kw"`
	FusionSurvival     float64 `json:"fusion_survival"`
	DryMassKg          float64 `json:"dry_mass_kg"`
	SRPForceN          float64 `json:"srp_force_n"`
	RequiredThrustN    float64 `json:"required_thrust_n"`
	ThrustN            float64 `json:"thrust_n"`
	AnnualFuelKg       float64 `json:"annual_fuel_kg"`
	TotalFuelKg        float64 `json:"total_fuel_kg"`
	WetMassKg          float64 `json:"wet_mass_kg"`
	PropellantFraction float64 `json:"propellant_fraction"`
}

// SRPPressure returns the photon pressure on a surface in N/m² for the
// given solar constant, surface reflectivity and incidence cosine.
func SRPPressure(solarConstant, reflectivity, cosTheta float64) float64 {
	return (1.0 + reflectivity) * (solarConstant / constants.SpeedOfLight) * cosTheta
}

// HybridPower returns the available electrical power in kW at a given
// distance and mission age. Solar output falls with the inverse square of
// distance; fusion output decays exponentially with the fuel half-life.
// The craft draws from whichever source chain is stronger.
func HybridPower(solarConstant, auDistance, missionYears, solarAreaM2, solarEff, fusionBaseKW, beamedKW, halfLifeYr float64) float64 {
	solarKW := (solarConstant / (auDistance * auDistance)) * solarAreaM2 * solarEff / 1000.0
	fusionKW := fusionBaseKW * FusionSurvival(missionYears, halfLifeYr)
	return math.Max(solarKW, fusionKW+beamedKW)
}

// FusionSurvival is the fraction of fusion fuel remaining after the given
// mission time.
func FusionSurvival(missionYears, halfLifeYr float64) float64 {
	return math.Pow(0.5, missionYears/halfLifeYr)
}

// annualFuel applies the rocket equation for one year of delta-v.
func annualFuel(massKg, deltaVMps, ispS float64) float64 {
	if deltaVMps <= 0 {
		return 0
	}
	return massKg * (math.Exp(deltaVMps/(ispS*constants.StandardGravity)) - 1)
}

// Budget computes the lifetime propellant estimate for one mission case.
func Budget(s *scenario.Scenario, mc scenario.MissionCase) Result {
	sk := s.Stationkeeping

	dryMassKg := s.Occulter.ArealDensityKgM2 * s.Occulter.AreaM2
	pressure := SRPPressure(s.Baseline.SolarConstantWM2, sk.Reflectivity, sk.IncidenceCosine)
	srpForce := pressure * s.Occulter.AreaM2
	requiredThrust := srpForce * thrustMargin

	powerKW := HybridPower(s.Baseline.SolarConstantWM2, mc.AUDistance, mc.MissionYears,
		s.Occulter.AreaM2, sk.SolarEfficiency, mc.FusionBaseKW, mc.BeamedMicrowaveKW, mc.FusionHalfLifeYr)

	fuelPerYear := annualFuel(dryMassKg, sk.AnnualDeltaVMps, sk.SpecificImpulseS)
	totalFuel := fuelPerYear * sk.LifetimeYears

	return Result{
		AUDistance:         mc.AUDistance,
		MissionYears:       mc.MissionYears,
		PowerKW:            powerKW,
		FusionSurvival:     FusionSurvival(mc.MissionYears, mc.FusionHalfLifeYr),
		DryMassKg:          dryMassKg,
		SRPForceN:          srpForce,
		RequiredThrustN:    requiredThrust,
		ThrustN:            powerKW * ThrustPerKW,
		AnnualFuelKg:       fuelPerYear,
		TotalFuelKg:        totalFuel,
		WetMassKg:          dryMassKg + totalFuel,
		PropellantFraction: totalFuel / dryMassKg,
	}
}

// BudgetAll runs Budget for every configured mission case.
func BudgetAll(s *scenario.Scenario) []Result {
	results := make([]Result, len(s.Stationkeeping.Cases))
	for i, mc := range s.Stationkeeping.Cases {
		results[i] = Budget(s, mc)
	}
	return results
}
