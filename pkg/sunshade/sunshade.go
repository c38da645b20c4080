// Package sunshade sizes an L1 occulter constellation for a target
// fractional reduction in solar input.
package sunshade

import (
	"github.com/dysonworks/occulter/pkg/constants"
	"github.com/dysonworks/occulter/pkg/scenario"
)

// Result holds the full engineering estimate for one occlusion target.
type Result struct {
	EtaTarget            float64 `json:"eta_target"`
	Satellites           float64 `json:"satellites"`
	ShadeAreaPerSatKm2   float64 `json:"shade_area_per_sat_km2"`
	TotalShadeAreaKm2    float64 `json:"total_shade_area_km2"`
	ArealDensityGM2      float64 `json:"areal_density_g_m2"`
	MassPerSatelliteKg   float64 `json:"mass_per_satellite_kg"`
	TotalMassGt          float64 `json:"total_mass_gt"`
	LaunchesRequired     float64 `json:"launches_required"`
	YearsConstantCadence float64 `json:"years_constant_cadence"`
	DeltaTEffectiveK     float64 `json:"delta_t_effective_k"`
	DeltaTSurfaceK       float64 `json:"delta_t_surface_k"`
}

// Size computes constellation requirements for a fractional flux reduction
// eta. Satellite count comes from the blocked disk area divided by effective
// per-shade area; the temperature impact is the linearized radiative
// response dT = -T_eff·eta/4 scaled by the surface response multiplier.
func Size(s *scenario.Scenario, eta float64) Result {
	earthArea := constants.EarthCrossSection(s.Baseline.EarthRadiusM)

	satellites := eta * earthArea / (s.Occulter.AreaM2 * s.Occulter.OpticalEfficiency)
	massPerSatKg := s.Occulter.AreaM2 * s.Occulter.ArealDensityKgM2
	totalMassT := satellites * massPerSatKg / 1000.0

	launches := totalMassT / s.Launch.PayloadToL1T
	years := launches / s.Launch.FlightsPerYear

	deltaTEff := -s.Baseline.EffectiveTemperatureK * 0.25 * eta
	deltaTSurface := deltaTEff * s.Baseline.ECSMultiplier

	return Result{
		EtaTarget:            eta,
		Satellites:           satellites,
		ShadeAreaPerSatKm2:   s.Occulter.AreaM2 / 1e6,
		TotalShadeAreaKm2:    satellites * s.Occulter.AreaM2 / 1e6,
		ArealDensityGM2:      s.Occulter.ArealDensityKgM2 * 1000,
		MassPerSatelliteKg:   massPerSatKg,
		TotalMassGt:          totalMassT / 1e9,
		LaunchesRequired:     launches,
		YearsConstantCadence: years,
		DeltaTEffectiveK:     deltaTEff,
		DeltaTSurfaceK:       deltaTSurface,
	}
}

// SizeAll runs Size for every configured case.
func SizeAll(s *scenario.Scenario) []Result {
	results := make([]Result, len(s.Sunshade.Cases))
	for i, c := range s.Sunshade.Cases {
		results[i] = Size(s, c.Eta)
	}
	return results
}
