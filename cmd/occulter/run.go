package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dysonworks/occulter/pkg/reflector"
	"github.com/dysonworks/occulter/pkg/roadmap"
	"github.com/dysonworks/occulter/pkg/scenario"
	"github.com/dysonworks/occulter/pkg/stationkeeping"
	"github.com/dysonworks/occulter/pkg/sunshade"
	"github.com/dysonworks/occulter/pkg/validation"
)

// loadAndValidate loads the scenario and runs schema validation.
func loadAndValidate(projectPath string) (*scenario.Scenario, *validation.Report, error) {
	scn, err := scenario.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	report := validation.ValidateSchema(scn)
	return scn, report, nil
}

// requireValid is the common load-and-gate step for the calculator commands.
func requireValid(projectPath string) (*scenario.Scenario, error) {
	scn, report, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, err
	}
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("scenario has validation errors; fix before computing")
	}
	return scn, nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runSunshade(projectPath string) error {
	scn, err := requireValid(projectPath)
	if err != nil {
		return err
	}
	printSunshadeResults(scn, sunshade.SizeAll(scn))
	return nil
}

func runStationkeeping(projectPath string) error {
	scn, err := requireValid(projectPath)
	if err != nil {
		return err
	}
	printStationkeepingTable(scn, stationkeeping.BudgetAll(scn))
	return nil
}

func runReflector(projectPath string) error {
	scn, err := requireValid(projectPath)
	if err != nil {
		return err
	}
	printReflectorResults(reflector.OptimizeAll(scn))
	return nil
}

func runRoadmap(projectPath string) error {
	scn, err := requireValid(projectPath)
	if err != nil {
		return err
	}
	printRoadmapTable(roadmap.BuildAll(scn))
	return nil
}

func runReport(projectPath string) error {
	scn, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors")
	}

	output := map[string]any{
		"scenario":       scn,
		"validation":     report,
		"sunshade":       sunshade.SizeAll(scn),
		"stationkeeping": stationkeeping.BudgetAll(scn),
		"reflector":      reflector.OptimizeAll(scn),
		"roadmap":        roadmap.BuildAll(scn),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
