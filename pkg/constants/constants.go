// Package constants is the single source of baseline physical and
// engineering values shared by every calculator. Consumers may override
// individual values per scenario; the shared set itself is never mutated.
package constants

import (
	"fmt"
	"math"
)

// Physical constants.
const (
	SolarConstant        = 1361.0      // W/m² at 1 AU
	EarthRadius          = 6.371e6     // m
	EffectiveTemperature = 255.0       // K, planetary radiative equilibrium
	ECSMultiplier        = 1.8         // surface/effective warming ratio (GCM-derived)
	SpeedOfLight         = 299792458.0 // m/s
	StandardGravity      = 9.80665     // m/s²
)

// Engineering defaults for occulter and launch-campaign sizing.
const (
	DefaultShadeAreaM2       = 1e6   // 1 km² per occulter
	DefaultOpticalEfficiency = 0.95  // fraction of swept area effectively blocking flux
	DefaultArealDensityKgM2  = 0.001 // 1 g/m² ultralight film baseline
	DefaultPayloadToL1T      = 50.0  // delivered tons per launch to L1
	DefaultFlightsPerYear    = 20.0  // launch cadence
)

// EarthCrossSection returns the disk area π·r² for a planet of the given
// radius in meters. It is always computed, never stored, so a scenario that
// overrides the radius cannot observe a stale area.
func EarthCrossSection(radiusM float64) float64 {
	return math.Pi * radiusM * radiusM
}

// Set is an immutable snapshot of the named baseline values. Calculators
// receive a Set (or values resolved from one) explicitly rather than reading
// package globals, so two consumers can hold different overrides without
// affecting each other.
type Set struct {
	values map[string]float64
}

// Baseline constructs the default Set. Repeated calls yield identical values.
func Baseline() Set {
	s := Set{values: map[string]float64{
		"S0":                     SolarConstant,
		"R_EARTH":                EarthRadius,
		"T_EFF":                  EffectiveTemperature,
		"ECS_MULTIPLIER":         ECSMultiplier,
		"DEFAULT_A_SHADE_M2":     DefaultShadeAreaM2,
		"DEFAULT_KAPPA":          DefaultOpticalEfficiency,
		"DEFAULT_DENSITY_KG_M2":  DefaultArealDensityKgM2,
		"DEFAULT_PAYLOAD_L1_T":   DefaultPayloadToL1T,
		"DEFAULT_FLIGHTS_PER_YR": DefaultFlightsPerYear,
	}}
	s.values["A_EARTH"] = EarthCrossSection(s.values["R_EARTH"])
	return s
}

// With returns a copy of the Set with one value replaced. Overriding R_EARTH
// recomputes A_EARTH; A_EARTH itself cannot be set directly.
func (s Set) With(name string, value float64) (Set, error) {
	if name == "A_EARTH" {
		return Set{}, fmt.Errorf("constant A_EARTH is derived from R_EARTH and cannot be set")
	}
	if _, ok := s.values[name]; !ok {
		return Set{}, fmt.Errorf("unknown constant %q", name)
	}
	out := Set{values: make(map[string]float64, len(s.values))}
	for k, v := range s.values {
		out.values[k] = v
	}
	out.values[name] = value
	if name == "R_EARTH" {
		out.values["A_EARTH"] = EarthCrossSection(value)
	}
	return out, nil
}

// Value looks up a constant by identifier. Unknown names are a programming
// error and fail immediately.
func (s Set) Value(name string) (float64, error) {
	v, ok := s.values[name]
	if !ok {
		return 0, fmt.Errorf("unknown constant %q", name)
	}
	return v, nil
}

// MustValue is Value for init-time use; it panics on unknown names.
func (s Set) MustValue(name string) float64 {
	v, err := s.Value(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Names returns the known identifiers, for diagnostics.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	return names
}
