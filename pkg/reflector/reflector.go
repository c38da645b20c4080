// Package reflector finds the minimum areal mass coating stack that meets a
// target reflectivity. Physics are approximate and intended for system
// comparison only.
package reflector

import (
	"math"
	"math/bits"
	"sort"
)

// Layer is one candidate coating technology.
type Layer struct {
	Name          string  `json:"name"`
	Reflectivity  float64 `json:"reflectivity"`
	ArealMassKgM2 float64 `json:"areal_mass_kg_m2"`
}

// Solution is an optimized layer stack.
type Solution struct {
	TotalArealMassKgM2   float64 `json:"total_areal_mass_kg_m2"`
	AchievedReflectivity float64 `json:"achieved_reflectivity"`
	LayersUsed           int     `json:"layers_used"`
	Layers               []Layer `json:"layers"`
	Method               string  `json:"method"`
}

// Combined returns the total reflectivity of a non-coherent layer stack.
// Each layer reflects fraction r of the light that reaches it, so the
// transmitted fraction is the product of (1-r) and R = 1 - Π(1-rᵢ).
// Exact for lossless, randomly phased partial reflections (thin films).
func Combined(reflectivities []float64) float64 {
	if len(reflectivities) == 0 {
		return 0.0
	}
	transmitted := 1.0
	for _, r := range reflectivities {
		transmitted *= 1.0 - r
	}
	return 1.0 - transmitted
}

// OptimizeExact enumerates every non-empty subset of candidates and returns
// the minimum-mass stack with combined reflectivity >= target, or nil when
// no subset reaches it. maxLayers <= 0 means unlimited. Exponential in the
// candidate count; practical for n <= 20.
func OptimizeExact(target float64, candidates []Layer, maxLayers int) *Solution {
	n := len(candidates)
	if maxLayers <= 0 || maxLayers > n {
		maxLayers = n
	}

	bestMass := math.Inf(1)
	var best *Solution

	for mask := 1; mask < 1<<n; mask++ {
		size := bits.OnesCount(uint(mask))
		if size > maxLayers {
			continue
		}

		totalMass := 0.0
		transmitted := 1.0
		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			totalMass += candidates[i].ArealMassKgM2
			transmitted *= 1.0 - candidates[i].Reflectivity
		}
		achieved := 1.0 - transmitted

		if achieved >= target && totalMass < bestMass {
			selected := make([]Layer, 0, size)
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					selected = append(selected, candidates[i])
				}
			}
			bestMass = totalMass
			best = &Solution{
				TotalArealMassKgM2:   totalMass,
				AchievedReflectivity: achieved,
				LayersUsed:           size,
				Layers:               selected,
				Method:               "exact",
			}
		}
	}

	return best
}

// OptimizeGreedy repeatedly adds the layer with the best marginal
// reflectivity gain per unit mass until the target is met. Fast for large
// candidate sets; not guaranteed optimal. Returns nil when the full
// candidate set cannot reach the target.
func OptimizeGreedy(target float64, candidates []Layer) *Solution {
	remaining := make([]Layer, len(candidates))
	copy(remaining, candidates)
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i].Reflectivity/remaining[i].ArealMassKgM2 >
			remaining[j].Reflectivity/remaining[j].ArealMassKgM2
	})

	var selected []Layer
	currentR := 0.0
	currentMass := 0.0

	for currentR < target && len(remaining) > 0 {
		bestRatio := -1.0
		bestIdx := -1
		for i, cand := range remaining {
			if cand.ArealMassKgM2 <= 0 {
				continue
			}
			rs := make([]float64, 0, len(selected)+1)
			rs = append(rs, cand.Reflectivity)
			for _, s := range selected {
				rs = append(rs, s.Reflectivity)
			}
			ratio := (Combined(rs) - currentR) / cand.ArealMassKgM2
			if ratio > bestRatio {
				bestRatio = ratio
				bestIdx = i
			}
		}

		if bestIdx == -1 {
			break
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		currentMass += selected[len(selected)-1].ArealMassKgM2

		rs := make([]float64, len(selected))
		for i, s := range selected {
			rs[i] = s.Reflectivity
		}
		currentR = Combined(rs)
	}

	if currentR < target {
		return nil
	}
	return &Solution{
		TotalArealMassKgM2:   currentMass,
		AchievedReflectivity: currentR,
		LayersUsed:           len(selected),
		Layers:               selected,
		Method:               "greedy",
	}
}
