package main

import (
	"os"

	"github.com/dysonworks/occulter/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "occulter",
		Short: "Order-of-magnitude sunshade and Dyson-swarm trade-study calculators",
	}

	rootCmd.AddCommand(sunshadeCmd())
	rootCmd.AddCommand(stationkeepingCmd())
	rootCmd.AddCommand(reflectorCmd())
	rootCmd.AddCommand(roadmapCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(constantsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func sunshadeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sunshade [project-path]",
		Short: "Size an L1 sunshade constellation for each occlusion target",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSunshade(args[0])
		},
	}
}

func stationkeepingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stationkeeping [project-path]",
		Short: "Budget station-keeping propellant for each mission case",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStationkeeping(args[0])
		},
	}
}

func reflectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reflector [project-path]",
		Short: "Find minimum-mass coating stacks for each reflectivity target",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReflector(args[0])
		},
	}
}

func roadmapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roadmap [project-path]",
		Short: "Tabulate deployment timelines from climate SRM to full Dyson swarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRoadmap(args[0])
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [project-path]",
		Short: "Run every calculator and emit a single JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReport(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario without running the calculators",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func constantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the baseline physical and engineering constants",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConstants()
		},
	}
}

func serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Serve calculator results as JSON over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return server.New(args[0], port).Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on")
	return cmd
}
