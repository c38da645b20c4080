package scenario

// Scenario is the top-level input for a trade study. Any zero-valued scalar
// falls back to the shared baseline constants when ApplyDefaults runs.
type Scenario struct {
	SpecVersion    string            `yaml:"spec_version" json:"spec_version"`
	Baseline       BaselineDef       `yaml:"baseline" json:"baseline"`
	Occulter       OcculterDef       `yaml:"occulter" json:"occulter"`
	Launch         LaunchDef         `yaml:"launch" json:"launch"`
	Industry       IndustryDef       `yaml:"industry" json:"industry"`
	Sunshade       SunshadeDef       `yaml:"sunshade" json:"sunshade"`
	Stationkeeping StationkeepingDef `yaml:"stationkeeping" json:"stationkeeping"`
	Reflector      ReflectorDef      `yaml:"reflector" json:"reflector"`
	Roadmap        RoadmapDef        `yaml:"roadmap" json:"roadmap"`
}

// BaselineDef overrides the shared physical constants for one study.
type BaselineDef struct {
	SolarConstantWM2      float64 `yaml:"solar_constant_w_m2" json:"solar_constant_w_m2"`
	EarthRadiusM          float64 `yaml:"earth_radius_m" json:"earth_radius_m"`
	EffectiveTemperatureK float64 `yaml:"effective_temperature_k" json:"effective_temperature_k"`
	ECSMultiplier         float64 `yaml:"ecs_multiplier" json:"ecs_multiplier"`
}

// OcculterDef describes a single occulter element.
type OcculterDef struct {
	AreaM2            float64 `yaml:"area_m2" json:"area_m2"`
	OpticalEfficiency float64 `yaml:"optical_efficiency" json:"optical_efficiency"`
	ArealDensityKgM2  float64 `yaml:"areal_density_kg_m2" json:"areal_density_kg_m2"`
}

// LaunchDef describes the Earth-launch campaign.
type LaunchDef struct {
	PayloadToL1T      float64 `yaml:"payload_to_l1_t" json:"payload_to_l1_t"`
	FlightsPerYear    float64 `yaml:"flights_per_year" json:"flights_per_year"`
	CadenceGrowthRate float64 `yaml:"cadence_growth_rate" json:"cadence_growth_rate"`
}

// IndustryDef describes a self-replicating off-Earth production base.
type IndustryDef struct {
	InitialProductionTPerYr float64 `yaml:"initial_production_t_per_year" json:"initial_production_t_per_year"`
	GrowthRate              float64 `yaml:"growth_rate" json:"growth_rate"`
	HorizonYears            int     `yaml:"horizon_years" json:"horizon_years"`
}

type SunshadeDef struct {
	Cases []TargetCase `yaml:"cases" json:"cases"`
}

// TargetCase names one occlusion target η.
type TargetCase struct {
	Name string  `yaml:"name" json:"name"`
	Eta  float64 `yaml:"eta" json:"eta"`
}

type StationkeepingDef struct {
	Reflectivity     float64       `yaml:"reflectivity" json:"reflectivity"`
	IncidenceCosine  float64       `yaml:"incidence_cosine" json:"incidence_cosine"`
	SolarEfficiency  float64       `yaml:"solar_efficiency" json:"solar_efficiency"`
	AnnualDeltaVMps  float64       `yaml:"annual_delta_v_mps" json:"annual_delta_v_mps"`
	SpecificImpulseS float64       `yaml:"specific_impulse_s" json:"specific_impulse_s"`
	LifetimeYears    float64       `yaml:"lifetime_years" json:"lifetime_years"`
	Cases            []MissionCase `yaml:"cases" json:"cases"`
}

// MissionCase is one deployment distance/duration/power point.
type MissionCase struct {
	AUDistance        float64 `yaml:"au_distance" json:"au_distance"`
	MissionYears      float64 `yaml:"mission_years" json:"mission_years"`
	FusionHalfLifeYr  float64 `yaml:"fusion_half_life_yr" json:"fusion_half_life_yr"`
	FusionBaseKW      float64 `yaml:"fusion_base_kw" json:"fusion_base_kw"`
	BeamedMicrowaveKW float64 `yaml:"beamed_microwave_kw" json:"beamed_microwave_kw"`
}

type ReflectorDef struct {
	Targets    []float64  `yaml:"targets" json:"targets"`
	MaxLayers  int        `yaml:"max_layers" json:"max_layers"`
	Candidates []LayerDef `yaml:"candidates" json:"candidates"`
}

// LayerDef is one candidate coating technology.
type LayerDef struct {
	Name          string  `yaml:"name" json:"name"`
	Reflectivity  float64 `yaml:"reflectivity" json:"reflectivity"`
	ArealMassKgM2 float64 `yaml:"areal_mass_kg_m2" json:"areal_mass_kg_m2"`
}

type RoadmapDef struct {
	Targets []float64 `yaml:"targets" json:"targets"`
}
