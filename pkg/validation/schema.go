// Package validation checks trade-study scenarios before any calculator
// runs, so physically meaningless inputs fail with a pointed message
// instead of producing NaN tables.
package validation

import (
	"fmt"

	"github.com/dysonworks/occulter/pkg/scenario"
)

// Brute-force layer selection enumerates all subsets; above this many
// candidates the exact optimizer becomes impractical.
const maxExactCandidates = 20

// ValidateSchema performs structural validation on a parsed scenario.
func ValidateSchema(s *scenario.Scenario) *Report {
	r := NewReport()

	validateBaseline(s, r)
	validateOcculter(s, r)
	validateLaunch(s, r)
	validateIndustry(s, r)
	validateSunshade(s, r)
	validateStationkeeping(s, r)
	validateReflector(s, r)
	validateRoadmap(s, r)

	return r
}

func validateBaseline(s *scenario.Scenario, r *Report) {
	if s.Baseline.SolarConstantWM2 <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "solar constant must be > 0",
			ScenarioPath: "baseline.solar_constant_w_m2",
			ActualValue:  s.Baseline.SolarConstantWM2,
			Expected:     "> 0",
		})
	}
	if s.Baseline.EarthRadiusM <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "planetary radius must be > 0",
			ScenarioPath: "baseline.earth_radius_m",
			ActualValue:  s.Baseline.EarthRadiusM,
			Expected:     "> 0",
		})
	}
	if s.Baseline.EffectiveTemperatureK <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "effective temperature must be > 0",
			ScenarioPath: "baseline.effective_temperature_k",
			ActualValue:  s.Baseline.EffectiveTemperatureK,
			Expected:     "> 0",
		})
	}
	if s.Baseline.ECSMultiplier < 1 {
		r.AddWarning(Result{
			Level:        LevelSchema,
			Message:      fmt.Sprintf("ECS multiplier %.2f is below 1; surface response would be weaker than the radiative response", s.Baseline.ECSMultiplier),
			ScenarioPath: "baseline.ecs_multiplier",
			ActualValue:  s.Baseline.ECSMultiplier,
			Expected:     ">= 1",
		})
	}
}

func validateOcculter(s *scenario.Scenario, r *Report) {
	if s.Occulter.AreaM2 <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "occulter area must be > 0",
			ScenarioPath: "occulter.area_m2",
			ActualValue:  s.Occulter.AreaM2,
			Expected:     "> 0",
		})
	}
	if s.Occulter.OpticalEfficiency <= 0 || s.Occulter.OpticalEfficiency > 1 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      fmt.Sprintf("optical efficiency %.3f is outside (0, 1]", s.Occulter.OpticalEfficiency),
			ScenarioPath: "occulter.optical_efficiency",
			ActualValue:  s.Occulter.OpticalEfficiency,
			Expected:     "0 < kappa <= 1",
		})
	}
	if s.Occulter.ArealDensityKgM2 <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "areal density must be > 0",
			ScenarioPath: "occulter.areal_density_kg_m2",
			ActualValue:  s.Occulter.ArealDensityKgM2,
			Expected:     "> 0",
		})
	}
}

func validateLaunch(s *scenario.Scenario, r *Report) {
	if s.Launch.PayloadToL1T <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "payload per launch must be > 0",
			ScenarioPath: "launch.payload_to_l1_t",
			ActualValue:  s.Launch.PayloadToL1T,
			Expected:     "> 0",
		})
	}
	if s.Launch.FlightsPerYear <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "launch cadence must be > 0",
			ScenarioPath: "launch.flights_per_year",
			ActualValue:  s.Launch.FlightsPerYear,
			Expected:     "> 0",
		})
	}
	if s.Launch.CadenceGrowthRate < 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "cadence growth rate must be >= 0",
			ScenarioPath: "launch.cadence_growth_rate",
			ActualValue:  s.Launch.CadenceGrowthRate,
			Expected:     ">= 0",
		})
	}
}

func validateIndustry(s *scenario.Scenario, r *Report) {
	if s.Industry.InitialProductionTPerYr < 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "initial production must be >= 0",
			ScenarioPath: "industry.initial_production_t_per_year",
			ActualValue:  s.Industry.InitialProductionTPerYr,
			Expected:     ">= 0",
		})
	}
	if s.Industry.GrowthRate < 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "industry growth rate must be >= 0",
			ScenarioPath: "industry.growth_rate",
			ActualValue:  s.Industry.GrowthRate,
			Expected:     ">= 0",
		})
	}
	if s.Industry.HorizonYears <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "simulation horizon must be > 0 years",
			ScenarioPath: "industry.horizon_years",
			ActualValue:  s.Industry.HorizonYears,
			Expected:     "> 0",
		})
	}
}

func validateSunshade(s *scenario.Scenario, r *Report) {
	validateEtaList(r, "sunshade.cases", etasOf(s.Sunshade.Cases))
}

func validateRoadmap(s *scenario.Scenario, r *Report) {
	validateEtaList(r, "roadmap.targets", s.Roadmap.Targets)
}

func etasOf(cases []scenario.TargetCase) []float64 {
	etas := make([]float64, len(cases))
	for i, c := range cases {
		etas[i] = c.Eta
	}
	return etas
}

func validateEtaList(r *Report, path string, etas []float64) {
	if len(etas) == 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      fmt.Sprintf("%s must contain at least one occlusion target", path),
			ScenarioPath: path,
			Expected:     "at least 1 target",
		})
		return
	}
	for i, eta := range etas {
		if eta <= 0 || eta > 1 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("%s[%d]: occlusion fraction %.4f is outside (0, 1]", path, i, eta),
				ScenarioPath: fmt.Sprintf("%s[%d]", path, i),
				ActualValue:  eta,
				Expected:     "0 < eta <= 1",
			})
		}
	}
}

func validateStationkeeping(s *scenario.Scenario, r *Report) {
	sk := s.Stationkeeping
	if sk.Reflectivity <= 0 || sk.Reflectivity > 1 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      fmt.Sprintf("reflectivity %.3f is outside (0, 1]", sk.Reflectivity),
			ScenarioPath: "stationkeeping.reflectivity",
			ActualValue:  sk.Reflectivity,
			Expected:     "0 < rho <= 1",
		})
	}
	if sk.IncidenceCosine <= 0 || sk.IncidenceCosine > 1 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      fmt.Sprintf("incidence cosine %.3f is outside (0, 1]", sk.IncidenceCosine),
			ScenarioPath: "stationkeeping.incidence_cosine",
			ActualValue:  sk.IncidenceCosine,
			Expected:     "0 < cos(theta) <= 1",
		})
	}
	if sk.SpecificImpulseS <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "specific impulse must be > 0",
			ScenarioPath: "stationkeeping.specific_impulse_s",
			ActualValue:  sk.SpecificImpulseS,
			Expected:     "> 0",
		})
	}
	if sk.AnnualDeltaVMps < 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "annual delta-v must be >= 0",
			ScenarioPath: "stationkeeping.annual_delta_v_mps",
			ActualValue:  sk.AnnualDeltaVMps,
			Expected:     ">= 0",
		})
	}
	if sk.LifetimeYears <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "lifetime must be > 0 years",
			ScenarioPath: "stationkeeping.lifetime_years",
			ActualValue:  sk.LifetimeYears,
			Expected:     "> 0",
		})
	}

	for i, c := range sk.Cases {
		path := fmt.Sprintf("stationkeeping.cases[%d]", i)
		if c.AUDistance <= 0 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("%s: distance %.2f AU must be > 0", path, c.AUDistance),
				ScenarioPath: path + ".au_distance",
				ActualValue:  c.AUDistance,
				Expected:     "> 0",
			})
		}
		if c.MissionYears <= 0 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("%s: mission duration must be > 0 years", path),
				ScenarioPath: path + ".mission_years",
				ActualValue:  c.MissionYears,
				Expected:     "> 0",
			})
		}
		if c.FusionHalfLifeYr <= 0 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("%s: fusion half-life must be > 0 years", path),
				ScenarioPath: path + ".fusion_half_life_yr",
				ActualValue:  c.FusionHalfLifeYr,
				Expected:     "> 0",
			})
		}
		if c.FusionBaseKW < 0 || c.BeamedMicrowaveKW < 0 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("%s: power sources must be >= 0 kW", path),
				ScenarioPath: path,
				Expected:     ">= 0",
			})
		}
	}
}

func validateReflector(s *scenario.Scenario, r *Report) {
	for i, target := range s.Reflector.Targets {
		if target <= 0 || target >= 1 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("reflector.targets[%d]: target reflectivity %.4f is outside (0, 1)", i, target),
				ScenarioPath: fmt.Sprintf("reflector.targets[%d]", i),
				ActualValue:  target,
				Expected:     "0 < R < 1",
			})
		}
	}

	if len(s.Reflector.Candidates) == 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "reflector.candidates must contain at least one layer",
			ScenarioPath: "reflector.candidates",
			Expected:     "at least 1 candidate",
		})
	}

	for i, c := range s.Reflector.Candidates {
		path := fmt.Sprintf("reflector.candidates[%d]", i)
		if c.Reflectivity <= 0 || c.Reflectivity >= 1 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("%s (%s): layer reflectivity %.3f is outside (0, 1)", path, c.Name, c.Reflectivity),
				ScenarioPath: path + ".reflectivity",
				ActualValue:  c.Reflectivity,
			})
		}
		if c.ArealMassKgM2 <= 0 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("%s (%s): areal mass must be > 0", path, c.Name),
				ScenarioPath: path + ".areal_mass_kg_m2",
				ActualValue:  c.ArealMassKgM2,
				Expected:     "> 0",
			})
		}
	}

	if n := len(s.Reflector.Candidates); n > maxExactCandidates {
		r.AddWarning(Result{
			Level:        LevelSchema,
			Message:      fmt.Sprintf("%d candidate layers: exact subset search enumerates 2^n combinations", n),
			ScenarioPath: "reflector.candidates",
			ActualValue:  n,
			Expected:     fmt.Sprintf("<= %d for exact search", maxExactCandidates),
			Suggestions:  []string{"Set reflector.max_layers or rely on the greedy optimizer for large candidate sets"},
		})
	}
}
