package reflector

import "github.com/dysonworks/occulter/pkg/scenario"

// TargetSolution pairs one target reflectivity with its best stack.
// Solution is nil when the candidate set cannot reach the target.
type TargetSolution struct {
	Target   float64   `json:"target"`
	Solution *Solution `json:"solution"`
}

// Subset enumeration stays exact up to this many candidates; beyond it the
// greedy heuristic takes over.
const exactSearchLimit = 20

// CandidateLayers converts scenario layer definitions to optimizer input.
func CandidateLayers(defs []scenario.LayerDef) []Layer {
	layers := make([]Layer, len(defs))
	for i, d := range defs {
		layers[i] = Layer{Name: d.Name, Reflectivity: d.Reflectivity, ArealMassKgM2: d.ArealMassKgM2}
	}
	return layers
}

// OptimizeAll solves every configured target against the scenario's
// candidate layers.
func OptimizeAll(s *scenario.Scenario) []TargetSolution {
	layers := CandidateLayers(s.Reflector.Candidates)
	exact := len(layers) <= exactSearchLimit

	solutions := make([]TargetSolution, len(s.Reflector.Targets))
	for i, target := range s.Reflector.Targets {
		var sol *Solution
		if exact {
			sol = OptimizeExact(target, layers, s.Reflector.MaxLayers)
		} else {
			sol = OptimizeGreedy(target, layers)
		}
		solutions[i] = TargetSolution{Target: target, Solution: sol}
	}
	return solutions
}
