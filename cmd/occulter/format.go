package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/dysonworks/occulter/pkg/constants"
	"github.com/dysonworks/occulter/pkg/reflector"
	"github.com/dysonworks/occulter/pkg/roadmap"
	"github.com/dysonworks/occulter/pkg/scenario"
	"github.com/dysonworks/occulter/pkg/stationkeeping"
	"github.com/dysonworks/occulter/pkg/sunshade"
	"github.com/dysonworks/occulter/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.ScenarioPath != "" {
				fmt.Printf("    -> %s = %v\n", e.ScenarioPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.ScenarioPath != "" {
				fmt.Printf("    -> %s = %v\n", w.ScenarioPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSunshadeResults(scn *scenario.Scenario, results []sunshade.Result) {
	fmt.Println("L1 Sunshade Constellation Requirements")
	fmt.Println()

	for i, res := range results {
		name := fmt.Sprintf("eta = %.3f", res.EtaTarget)
		if i < len(scn.Sunshade.Cases) && scn.Sunshade.Cases[i].Name != "" {
			name = scn.Sunshade.Cases[i].Name
		}
		fmt.Println(name)
		fmt.Printf("   Satellites      : %s\n", formatCount(res.Satellites))
		fmt.Printf("   Shade area      : %s km²\n", formatCount(res.TotalShadeAreaKm2))
		fmt.Printf("   Total mass      : %.3f Gt\n", res.TotalMassGt)
		fmt.Printf("   Launches        : %s\n", formatCount(res.LaunchesRequired))
		fmt.Printf("   Time (%.0f/yr)    : %.0f years\n", scn.Launch.FlightsPerYear, res.YearsConstantCadence)
		fmt.Printf("   dT surface      : %+5.1f K\n", res.DeltaTSurfaceK)
		fmt.Println()
	}
}

func printStationkeepingTable(scn *scenario.Scenario, results []stationkeeping.Result) {
	fmt.Printf("Station-Keeping Propellant Budget (%.0f-year lifetime)\n\n", scn.Stationkeeping.LifetimeYears)
	fmt.Printf("%4s %6s %9s %10s %10s %10s %10s\n",
		"AU", "Years", "HalfLife", "FusionIn", "PowerOut", "FuelLeft", "Prop/Mass")
	fmt.Println("------------------------------------------------------------------")

	for i, res := range results {
		halfLife, fusionIn := 0.0, 0.0
		if i < len(scn.Stationkeeping.Cases) {
			halfLife = scn.Stationkeeping.Cases[i].FusionHalfLifeYr
			fusionIn = scn.Stationkeeping.Cases[i].FusionBaseKW
		}
		fmt.Printf("%4.0f %6.0f %8.0fy %8.0fkW %8.0fkW %9.1f%% %9.4f%%\n",
			res.AUDistance, res.MissionYears, halfLife, fusionIn,
			res.PowerKW, res.FusionSurvival*100, res.PropellantFraction*100)
	}
}

func printReflectorResults(solutions []reflector.TargetSolution) {
	fmt.Println("Multi-Layer Reflector Optimization")
	fmt.Println("==================================")

	for _, ts := range solutions {
		fmt.Printf("\nTarget reflectivity: %.3f\n", ts.Target)
		if ts.Solution == nil {
			fmt.Println("   Impossible with available layers")
			continue
		}
		sol := ts.Solution
		fmt.Printf("   Min areal mass  : %6.3f g/m²\n", sol.TotalArealMassKgM2*1000)
		fmt.Printf("   Achieved R      : %.5f\n", sol.AchievedReflectivity)
		fmt.Printf("   Layers used     : %d (%s)\n", sol.LayersUsed, sol.Method)
		fmt.Print("   Composition     :")
		for _, layer := range sol.Layers {
			fmt.Printf(" %s (%.2f, %.2fg)", layer.Name, layer.Reflectivity, layer.ArealMassKgM2*1000)
		}
		fmt.Println()
	}
}

func printRoadmapTable(results []roadmap.Result) {
	fmt.Println("Dyson-Scale Occluder / Sunshade Scalability")
	fmt.Println()
	fmt.Printf("%6s %12s %10s %12s %10s %9s %9s %11s\n",
		"eta", "Occluders", "Mass [Gt]", "Launches", "YrsConst", "YrsExp", "YrsSelf", "Power [TW]")
	fmt.Println("-------------------------------------------------------------------------------------")

	for _, res := range results {
		fmt.Printf("%6.3f %12s %10.2f %12s %10.0f %9.0f %9s %11.0f\n",
			res.EtaTarget,
			formatCount(res.Occulters),
			res.TotalMassT/1e9,
			formatCount(res.LaunchesRequired),
			res.YearsConstantCadence,
			res.YearsExponential,
			formatYears(res.YearsSelfReplicating),
			res.PowerBlockedTW)
	}
}

func printConstants() error {
	set := constants.Baseline()
	names := set.Names()
	sort.Strings(names)

	fmt.Println("Baseline Constants")
	fmt.Println("------------------")
	for _, name := range names {
		v, err := set.Value(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-24s %g\n", name, v)
	}
	return nil
}

func formatYears(v float64) string {
	if math.IsInf(v, 1) {
		return "never"
	}
	return fmt.Sprintf("%.0f", v)
}

func formatCount(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.1fK", v/1_000)
	}
	return fmt.Sprintf("%.1f", v)
}
