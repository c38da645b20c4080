package scenario

import "github.com/dysonworks/occulter/pkg/constants"

// ApplyDefaults fills zero-valued fields from the baseline constant set and
// installs the stock case lists where a section is empty. The shared
// constants are copied, never referenced mutably, so two scenarios with
// different overrides never interfere.
func (s *Scenario) ApplyDefaults() {
	if s.Baseline.SolarConstantWM2 == 0 {
		s.Baseline.SolarConstantWM2 = constants.SolarConstant
	}
	if s.Baseline.EarthRadiusM == 0 {
		s.Baseline.EarthRadiusM = constants.EarthRadius
	}
	if s.Baseline.EffectiveTemperatureK == 0 {
		s.Baseline.EffectiveTemperatureK = constants.EffectiveTemperature
	}
	if s.Baseline.ECSMultiplier == 0 {
		s.Baseline.ECSMultiplier = constants.ECSMultiplier
	}

	if s.Occulter.AreaM2 == 0 {
		s.Occulter.AreaM2 = constants.DefaultShadeAreaM2
	}
	if s.Occulter.OpticalEfficiency == 0 {
		s.Occulter.OpticalEfficiency = constants.DefaultOpticalEfficiency
	}
	if s.Occulter.ArealDensityKgM2 == 0 {
		s.Occulter.ArealDensityKgM2 = constants.DefaultArealDensityKgM2
	}

	if s.Launch.PayloadToL1T == 0 {
		s.Launch.PayloadToL1T = constants.DefaultPayloadToL1T
	}
	if s.Launch.FlightsPerYear == 0 {
		s.Launch.FlightsPerYear = constants.DefaultFlightsPerYear
	}

	if s.Industry.HorizonYears == 0 {
		s.Industry.HorizonYears = 100
	}

	if s.Stationkeeping.Reflectivity == 0 {
		s.Stationkeeping.Reflectivity = 0.97
	}
	if s.Stationkeeping.IncidenceCosine == 0 {
		s.Stationkeeping.IncidenceCosine = 0.95
	}
	if s.Stationkeeping.SolarEfficiency == 0 {
		s.Stationkeeping.SolarEfficiency = 0.20
	}
	if s.Stationkeeping.AnnualDeltaVMps == 0 {
		s.Stationkeeping.AnnualDeltaVMps = 75.0
	}
	if s.Stationkeeping.SpecificImpulseS == 0 {
		s.Stationkeeping.SpecificImpulseS = 1e6
	}
	if s.Stationkeeping.LifetimeYears == 0 {
		s.Stationkeeping.LifetimeYears = 100.0
	}

	if len(s.Sunshade.Cases) == 0 {
		s.Sunshade.Cases = DefaultSunshadeCases()
	}
	if len(s.Stationkeeping.Cases) == 0 {
		s.Stationkeeping.Cases = DefaultMissionCases()
	}
	if len(s.Reflector.Targets) == 0 {
		s.Reflector.Targets = []float64{0.90, 0.95, 0.98, 0.995}
	}
	if len(s.Reflector.Candidates) == 0 {
		s.Reflector.Candidates = DefaultLayerCandidates()
	}
	if len(s.Roadmap.Targets) == 0 {
		s.Roadmap.Targets = []float64{0.018, 0.10, 0.30, 0.50, 0.99, 1.00}
	}
}

// DefaultSunshadeCases spans climate offset through full stellar occlusion.
func DefaultSunshadeCases() []TargetCase {
	return []TargetCase{
		{Name: "Climate offset (1.8%)", Eta: 0.018},
		{Name: "Strong cooling (10%)", Eta: 0.10},
		{Name: "Half Dyson (50%)", Eta: 0.50},
		{Name: "Full Dyson (100%)", Eta: 1.00},
	}
}

// DefaultMissionCases covers 1 AU station-keeping through 100-year Oort
// cloud deployments with progressively better fusion fuels.
func DefaultMissionCases() []MissionCase {
	return []MissionCase{
		{AUDistance: 1.0, MissionYears: 1, FusionHalfLifeYr: 12, FusionBaseKW: 100},
		{AUDistance: 10.0, MissionYears: 10, FusionHalfLifeYr: 12, FusionBaseKW: 150, BeamedMicrowaveKW: 800},
		{AUDistance: 50.0, MissionYears: 50, FusionHalfLifeYr: 12, FusionBaseKW: 300},
		{AUDistance: 100.0, MissionYears: 100, FusionHalfLifeYr: 12, FusionBaseKW: 500},
		{AUDistance: 100.0, MissionYears: 100, FusionHalfLifeYr: 18, FusionBaseKW: 400},
		{AUDistance: 100.0, MissionYears: 100, FusionHalfLifeYr: 100, FusionBaseKW: 300},
	}
}

// DefaultLayerCandidates are realistic near-term coating technologies.
func DefaultLayerCandidates() []LayerDef {
	return []LayerDef{
		{Name: "30nm Al on polymer", Reflectivity: 0.91, ArealMassKgM2: 0.00015},
		{Name: "12nm Al ultra-thin", Reflectivity: 0.88, ArealMassKgM2: 0.00006},
		{Name: "single SiO2 dielectric", Reflectivity: 0.12, ArealMassKgM2: 0.0008},
		{Name: "5-layer dielectric stack", Reflectivity: 0.25, ArealMassKgM2: 0.0018},
		{Name: "15-layer V-coat mirror", Reflectivity: 0.45, ArealMassKgM2: 0.0045},
		{Name: "fluoropolymer overcoat", Reflectivity: 0.05, ArealMassKgM2: 0.00003},
		{Name: "retroreflector film", Reflectivity: 0.60, ArealMassKgM2: 0.012},
	}
}
