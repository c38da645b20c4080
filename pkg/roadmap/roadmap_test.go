package roadmap

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/dysonworks/occulter/pkg/scenario"
)

func defaultScenario() *scenario.Scenario {
	s := &scenario.Scenario{}
	s.ApplyDefaults()
	s.Launch.CadenceGrowthRate = 0.20
	s.Industry.InitialProductionTPerYr = 1e5
	s.Industry.GrowthRate = 0.50
	return s
}

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestBuildFullDyson(t *testing.T) {
	s := defaultScenario()
	res := Build(s, 1.0)

	if relErr(res.Occulters, 1.3423e8) > 1e-3 {
		t.Errorf("occulters = %.5g, want ≈1.3423e8", res.Occulters)
	}
	if relErr(res.TotalMassT, 1.3423e8) > 1e-3 {
		t.Errorf("total mass = %.5g t, want ≈1.3423e8", res.TotalMassT)
	}
	if relErr(res.LaunchesRequired, 2.6846e6) > 1e-3 {
		t.Errorf("launches = %.5g, want ≈2.685e6", res.LaunchesRequired)
	}
	// 173,500 TW blocked at full occlusion
	if relErr(res.PowerBlockedTW, 1.7355e5) > 1e-3 {
		t.Errorf("power blocked = %.5g TW, want ≈1.7355e5", res.PowerBlockedTW)
	}
}

func TestBuildConstantVsExponentialCadence(t *testing.T) {
	s := defaultScenario()
	res := Build(s, 1.0)

	// constant cadence: 2.68M launches at 20/yr
	if relErr(res.YearsConstantCadence, 134228) > 1e-3 {
		t.Errorf("constant cadence years = %.6g, want ≈134228", res.YearsConstantCadence)
	}
	// 20%/yr cadence growth collapses that to about 55 years
	if relErr(res.YearsExponential, 55.43) > 2e-3 {
		t.Errorf("exponential cadence years = %.4g, want ≈55.4", res.YearsExponential)
	}
	if res.YearsExponential >= res.YearsConstantCadence {
		t.Error("exponential growth should beat constant cadence")
	}
}

func TestBuildZeroGrowthFallsBackToConstant(t *testing.T) {
	s := defaultScenario()
	s.Launch.CadenceGrowthRate = 0

	res := Build(s, 0.10)
	if res.YearsExponential != res.YearsConstantCadence {
		t.Errorf("zero growth: exponential years %v != constant years %v",
			res.YearsExponential, res.YearsConstantCadence)
	}
}

func TestBuildSelfReplication(t *testing.T) {
	s := defaultScenario()
	res := Build(s, 1.0)

	// 1e5 t/yr growing 50%/yr crosses 1.34e8 t cumulative in year 15
	if res.YearsSelfReplicating != 15 {
		t.Errorf("self-replication years = %v, want 15", res.YearsSelfReplicating)
	}
}

func TestBuildSelfReplicationNeverWithoutIndustry(t *testing.T) {
	s := defaultScenario()
	s.Industry.InitialProductionTPerYr = 0

	res := Build(s, 0.5)
	if !math.IsInf(res.YearsSelfReplicating, 1) {
		t.Errorf("years = %v, want +Inf with no production base", res.YearsSelfReplicating)
	}
}

func TestBuildSelfReplicationBeyondHorizon(t *testing.T) {
	s := defaultScenario()
	s.Industry.HorizonYears = 5

	res := Build(s, 1.0)
	if !math.IsInf(res.YearsSelfReplicating, 1) {
		t.Errorf("years = %v, want +Inf past a 5-year horizon", res.YearsSelfReplicating)
	}
}

func TestMarshalJSONInfiniteYears(t *testing.T) {
	s := defaultScenario()
	s.Industry.InitialProductionTPerYr = 0

	data, err := json.Marshal(Build(s, 1.0))
	if err != nil {
		t.Fatalf("marshal with +Inf years: %v", err)
	}
	if !strings.Contains(string(data), `"years_self_replicating":null`) {
		t.Errorf("expected null self-replication years, got %s", data)
	}
	if !strings.Contains(string(data), `"eta_target":1`) {
		t.Errorf("expected eta_target in output, got %s", data)
	}
}

func TestBuildAllSpansClimateToDyson(t *testing.T) {
	s := defaultScenario()
	results := BuildAll(s)

	if len(results) != len(s.Roadmap.Targets) {
		t.Fatalf("got %d results for %d targets", len(results), len(s.Roadmap.Targets))
	}
	for i := 1; i < len(results); i++ {
		if results[i].TotalMassT <= results[i-1].TotalMassT {
			t.Errorf("mass should grow with eta: %v then %v",
				results[i-1].TotalMassT, results[i].TotalMassT)
		}
	}
}
