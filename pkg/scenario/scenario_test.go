package scenario

import (
	"testing"

	"github.com/dysonworks/occulter/pkg/constants"
)

func TestLoadProject(t *testing.T) {
	s, err := LoadProject("../../examples/baseline")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if s.SpecVersion != "0.1.0" {
		t.Errorf("spec_version = %q, want %q", s.SpecVersion, "0.1.0")
	}
	if s.Baseline.SolarConstantWM2 != 1361.0 {
		t.Errorf("solar constant = %v, want 1361.0", s.Baseline.SolarConstantWM2)
	}
	if s.Baseline.EarthRadiusM != 6.371e6 {
		t.Errorf("earth radius = %v, want 6.371e6", s.Baseline.EarthRadiusM)
	}
	if s.Occulter.AreaM2 != 1.0e6 {
		t.Errorf("occulter area = %v, want 1e6", s.Occulter.AreaM2)
	}
	if s.Occulter.ArealDensityKgM2 != 0.0005 {
		t.Errorf("areal density = %v, want 0.0005", s.Occulter.ArealDensityKgM2)
	}
	if s.Launch.FlightsPerYear != 20.0 {
		t.Errorf("flights per year = %v, want 20", s.Launch.FlightsPerYear)
	}
	if s.Launch.CadenceGrowthRate != 0.20 {
		t.Errorf("cadence growth = %v, want 0.20", s.Launch.CadenceGrowthRate)
	}
	if s.Industry.HorizonYears != 100 {
		t.Errorf("horizon = %d, want 100", s.Industry.HorizonYears)
	}

	if len(s.Sunshade.Cases) != 4 {
		t.Errorf("sunshade cases = %d, want 4", len(s.Sunshade.Cases))
	}
	if len(s.Stationkeeping.Cases) != 6 {
		t.Errorf("stationkeeping cases = %d, want 6", len(s.Stationkeeping.Cases))
	}
	if len(s.Reflector.Candidates) != 7 {
		t.Errorf("reflector candidates = %d, want 7", len(s.Reflector.Candidates))
	}
	if len(s.Roadmap.Targets) != 6 {
		t.Errorf("roadmap targets = %d, want 6", len(s.Roadmap.Targets))
	}

	last := s.Stationkeeping.Cases[5]
	if last.FusionHalfLifeYr != 100 || last.FusionBaseKW != 300 {
		t.Errorf("last mission case = %+v, want 100yr half-life at 300 kW", last)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestApplyDefaultsFillsBaseline(t *testing.T) {
	s := &Scenario{}
	s.ApplyDefaults()

	if s.Baseline.SolarConstantWM2 != constants.SolarConstant {
		t.Errorf("solar constant = %v, want %v", s.Baseline.SolarConstantWM2, constants.SolarConstant)
	}
	if s.Baseline.EarthRadiusM != constants.EarthRadius {
		t.Errorf("earth radius = %v, want %v", s.Baseline.EarthRadiusM, constants.EarthRadius)
	}
	if s.Occulter.OpticalEfficiency != constants.DefaultOpticalEfficiency {
		t.Errorf("kappa = %v, want %v", s.Occulter.OpticalEfficiency, constants.DefaultOpticalEfficiency)
	}
	if s.Launch.PayloadToL1T != constants.DefaultPayloadToL1T {
		t.Errorf("payload = %v, want %v", s.Launch.PayloadToL1T, constants.DefaultPayloadToL1T)
	}
	if len(s.Sunshade.Cases) == 0 || len(s.Stationkeeping.Cases) == 0 ||
		len(s.Reflector.Candidates) == 0 || len(s.Roadmap.Targets) == 0 {
		t.Error("expected stock case lists to be installed")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	s := &Scenario{}
	s.Occulter.ArealDensityKgM2 = 0.0005
	s.Baseline.SolarConstantWM2 = 1362.0
	s.ApplyDefaults()

	if s.Occulter.ArealDensityKgM2 != 0.0005 {
		t.Errorf("density = %v, want explicit 0.0005 preserved", s.Occulter.ArealDensityKgM2)
	}
	if s.Baseline.SolarConstantWM2 != 1362.0 {
		t.Errorf("solar constant = %v, want explicit 1362.0 preserved", s.Baseline.SolarConstantWM2)
	}
}

func TestScenariosAreIndependent(t *testing.T) {
	a := &Scenario{}
	a.ApplyDefaults()
	b := &Scenario{}
	b.ApplyDefaults()

	a.Occulter.OpticalEfficiency = 0.99
	a.Sunshade.Cases[0].Eta = 0.5

	if b.Occulter.OpticalEfficiency != constants.DefaultOpticalEfficiency {
		t.Errorf("second scenario saw override: kappa = %v", b.Occulter.OpticalEfficiency)
	}
	if b.Sunshade.Cases[0].Eta == 0.5 {
		t.Error("second scenario shares case slice with first")
	}
}
