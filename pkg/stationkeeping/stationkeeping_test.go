package stationkeeping

import (
	"math"
	"testing"

	"github.com/dysonworks/occulter/pkg/scenario"
)

func defaultScenario() *scenario.Scenario {
	s := &scenario.Scenario{}
	s.ApplyDefaults()
	return s
}

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestSRPPressure(t *testing.T) {
	// perfect mirror at normal incidence: 2·S0/c
	p := SRPPressure(1361.0, 1.0, 1.0)
	want := 2.0 * 1361.0 / 299792458.0 // ≈ 9.08e-6 N/m²
	if relErr(p, want) > 1e-12 {
		t.Errorf("pressure = %v, want %v", p, want)
	}

	// fully absorbing surface halves the momentum transfer
	absorbing := SRPPressure(1361.0, 0.0, 1.0)
	if relErr(absorbing, want/2) > 1e-12 {
		t.Errorf("absorbing pressure = %v, want %v", absorbing, want/2)
	}
}

func TestFusionSurvival(t *testing.T) {
	if got := FusionSurvival(12, 12); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("one half-life: survival = %v, want 0.5", got)
	}
	if got := FusionSurvival(24, 12); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("two half-lives: survival = %v, want 0.25", got)
	}
	if got := FusionSurvival(100, 12); relErr(got, 0.0031003) > 1e-4 {
		t.Errorf("100yr/12yr: survival = %v, want ≈0.0031", got)
	}
}

func TestHybridPowerSolarDominatesNearSun(t *testing.T) {
	// 1 km² at 20% efficiency, 1 AU: (1361 W/m² · 1e6 m² · 0.2) = 272.2 MW
	p := HybridPower(1361.0, 1.0, 1.0, 1e6, 0.20, 100.0, 0.0, 12.0)
	if relErr(p, 272200.0) > 1e-9 {
		t.Errorf("power = %v kW, want 272200", p)
	}
}

func TestHybridPowerFusionTakesOverFarOut(t *testing.T) {
	// at 1000 AU solar collapses to ~0.27 kW; a fresh 500 kW reactor wins
	p := HybridPower(1361.0, 1000.0, 0.0, 1e6, 0.20, 500.0, 0.0, 12.0)
	if relErr(p, 500.0) > 1e-9 {
		t.Errorf("power = %v kW, want 500", p)
	}

	// beamed power stacks on the fusion chain
	withBeam := HybridPower(1361.0, 1000.0, 0.0, 1e6, 0.20, 500.0, 800.0, 12.0)
	if relErr(withBeam, 1300.0) > 1e-9 {
		t.Errorf("power with beam = %v kW, want 1300", withBeam)
	}
}

func TestBudgetNearEarth(t *testing.T) {
	s := defaultScenario()
	s.Occulter.ArealDensityKgM2 = 0.0005
	mc := scenario.MissionCase{AUDistance: 1.0, MissionYears: 1, FusionHalfLifeYr: 12, FusionBaseKW: 100}

	res := Budget(s, mc)

	if res.DryMassKg != 500.0 {
		t.Errorf("dry mass = %v kg, want 500", res.DryMassKg)
	}
	// (1+0.97)·(1361/c)·0.95·1e6 ≈ 8.496 N
	if relErr(res.SRPForceN, 8.4962) > 1e-3 {
		t.Errorf("SRP force = %v N, want ≈8.496", res.SRPForceN)
	}
	if relErr(res.RequiredThrustN, 2*res.SRPForceN) > 1e-12 {
		t.Errorf("required thrust = %v, want 2x SRP force", res.RequiredThrustN)
	}
	// solar-dominated: 272200 kW at 0.1 N/kW
	if relErr(res.ThrustN, 27220.0) > 1e-9 {
		t.Errorf("available thrust = %v N, want 27220", res.ThrustN)
	}
}

func TestBudgetPropellantFraction(t *testing.T) {
	s := defaultScenario()
	mc := scenario.MissionCase{AUDistance: 100.0, MissionYears: 100, FusionHalfLifeYr: 12, FusionBaseKW: 500}

	res := Budget(s, mc)

	// rocket equation at Isp 1e6 s, 75 m/s per year for 100 years:
	// fraction = 100·(exp(75/(1e6·9.80665)) - 1) ≈ 7.648e-4
	if relErr(res.PropellantFraction, 7.6479e-4) > 1e-4 {
		t.Errorf("propellant fraction = %v, want ≈7.648e-4", res.PropellantFraction)
	}
	if relErr(res.WetMassKg, res.DryMassKg+res.TotalFuelKg) > 1e-12 {
		t.Errorf("wet mass = %v, want dry+fuel = %v", res.WetMassKg, res.DryMassKg+res.TotalFuelKg)
	}
	if relErr(res.AnnualFuelKg*s.Stationkeeping.LifetimeYears, res.TotalFuelKg) > 1e-12 {
		t.Errorf("total fuel %v inconsistent with annual %v over %v years",
			res.TotalFuelKg, res.AnnualFuelKg, s.Stationkeeping.LifetimeYears)
	}
}

func TestBudgetZeroDeltaV(t *testing.T) {
	// a statite holding position on SRP alone burns nothing
	s := defaultScenario()
	s.Stationkeeping.AnnualDeltaVMps = 0

	res := Budget(s, scenario.MissionCase{AUDistance: 1, MissionYears: 1, FusionHalfLifeYr: 12})
	if res.TotalFuelKg != 0 {
		t.Errorf("fuel = %v kg, want 0 for zero delta-v", res.TotalFuelKg)
	}
	if res.WetMassKg != res.DryMassKg {
		t.Errorf("wet mass = %v, want dry mass %v", res.WetMassKg, res.DryMassKg)
	}
}

func TestBudgetAllCoversDefaultMissions(t *testing.T) {
	s := defaultScenario()
	results := BudgetAll(s)

	if len(results) != len(s.Stationkeeping.Cases) {
		t.Fatalf("got %d results for %d cases", len(results), len(s.Stationkeeping.Cases))
	}
	for i, res := range results {
		if res.AUDistance != s.Stationkeeping.Cases[i].AUDistance {
			t.Errorf("result %d: distance %v, want %v", i, res.AUDistance, s.Stationkeeping.Cases[i].AUDistance)
		}
		if res.PowerKW <= 0 {
			t.Errorf("result %d: non-positive power %v", i, res.PowerKW)
		}
	}
}
