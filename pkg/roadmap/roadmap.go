// Package roadmap models occulter deployment timelines from climate-scale
// solar radiation management up to a full Dyson swarm, under three launch
// scenarios: constant cadence, exponentially growing cadence, and a
// self-replicating off-Earth industrial base.
package roadmap

import (
	"encoding/json"
	"math"

	"github.com/dysonworks/occulter/pkg/constants"
	"github.com/dysonworks/occulter/pkg/scenario"
)

// Result is the scalability estimate for one occlusion target. Year fields
// are +Inf when the scenario never reaches the target within its horizon.
type Result struct {
	EtaTarget            float64 `json:"eta_target"`
	Occulters            float64 `json:"occulters"`
	TotalAreaKm2         float64 `json:"total_area_km2"`
	TotalMassT           float64 `json:"total_mass_t"`
	MassPerOcculterKg    float64 `json:"mass_per_occulter_kg"`
	LaunchesRequired     float64 `json:"launches_required"`
	YearsConstantCadence float64 `json:"years_constant_cadence"`
	YearsExponential     float64 `json:"years_exponential_cadence"`
	YearsSelfReplicating float64 `json:"years_self_replicating"`
	PowerBlockedTW       float64 `json:"power_blocked_tw"`
}

// MarshalJSON renders an unreachable self-replication year as null, since
// encoding/json rejects IEEE infinities.
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	out := struct {
		alias
		YearsSelfReplicating any `json:"years_self_replicating"`
	}{alias: alias(r), YearsSelfReplicating: r.YearsSelfReplicating}
	if math.IsInf(r.YearsSelfReplicating, 0) {
		out.YearsSelfReplicating = nil
	}
	return json.Marshal(out)
}

// Build computes the deployment roadmap for a fractional occlusion target.
func Build(s *scenario.Scenario, eta float64) Result {
	earthArea := constants.EarthCrossSection(s.Baseline.EarthRadiusM)

	occulters := eta * earthArea / (s.Occulter.AreaM2 * s.Occulter.OpticalEfficiency)
	massPerOcculterKg := s.Occulter.AreaM2 * s.Occulter.ArealDensityKgM2
	totalMassT := occulters * massPerOcculterKg / 1000.0

	launches := totalMassT / s.Launch.PayloadToL1T
	yearsConstant := launches / s.Launch.FlightsPerYear

	return Result{
		EtaTarget:            eta,
		Occulters:            occulters,
		TotalAreaKm2:         occulters * s.Occulter.AreaM2 / 1e6,
		TotalMassT:           totalMassT,
		MassPerOcculterKg:    massPerOcculterKg,
		LaunchesRequired:     launches,
		YearsConstantCadence: yearsConstant,
		YearsExponential:     exponentialCadenceYears(launches, s.Launch.FlightsPerYear, s.Launch.CadenceGrowthRate, yearsConstant),
		YearsSelfReplicating: selfReplicationYears(totalMassT, s.Industry.InitialProductionTPerYr, s.Industry.GrowthRate, s.Industry.HorizonYears),
		PowerBlockedTW:       eta * s.Baseline.SolarConstantWM2 * earthArea / 1e12,
	}
}

// BuildAll runs Build for every configured target.
func BuildAll(s *scenario.Scenario) []Result {
	results := make([]Result, len(s.Roadmap.Targets))
	for i, eta := range s.Roadmap.Targets {
		results[i] = Build(s, eta)
	}
	return results
}

// exponentialCadenceYears solves for T in
//
//	launches = ∫₀ᵀ f₀·(1+g)ᵗ dt = (f₀/ln(1+g))·((1+g)ᵀ - 1)
//
// giving T = ln(1 + launches·ln(1+g)/f₀) / ln(1+g). Falls back to the
// constant-cadence answer when there is no growth.
func exponentialCadenceYears(launches, initialCadence, growthRate, yearsConstant float64) float64 {
	if growthRate <= 0 {
		return yearsConstant
	}
	lg := math.Log(1 + growthRate)
	return math.Log(1+launches*lg/initialCadence) / lg
}

// selfReplicationYears scans compound annual production until cumulative
// output covers the required mass. Year t produces m₀·(1+r)^(t+1) tons,
// matching a base that spends its first year replicating before shipping.
// Returns +Inf when the horizon is never reached.
func selfReplicationYears(totalMassT, initialProductionT, growthRate float64, horizonYears int) float64 {
	if growthRate <= 0 || initialProductionT <= 0 {
		return math.Inf(1)
	}
	annual := initialProductionT
	cumulative := 0.0
	for t := 0; t < horizonYears; t++ {
		annual *= 1 + growthRate
		cumulative += annual
		if cumulative >= totalMassT {
			return float64(t)
		}
	}
	return math.Inf(1)
}
