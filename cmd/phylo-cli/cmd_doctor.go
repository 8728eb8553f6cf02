package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and connectivity",
		Long:  "Run diagnostic checks against config, server health and the selected tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context())
		},
	}
}

type checkResult struct {
	Name   string
	Passed bool
	Detail string
	Hint   string
}

func runDoctor(ctx context.Context) error {
	fmt.Println("\nphylo doctor")
	fmt.Println("============")

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	results := []checkResult{doctorConfigFile()}

	health, err := apiClient.Health(ctx)
	if err != nil {
		results = append(results, checkResult{
			Name: "Server reachable", Detail: flagURL,
			Hint: fmt.Sprintf("Is phylo-server running? Set --url or PHYLO_URL.\n   Error: %v", err),
		})
	} else {
		results = append(results, checkResult{
			Name: "Server reachable", Passed: true,
			Detail: fmt.Sprintf("%s (v%s, database %s)", flagURL, health.Version, health.Database),
		})

		ready, err := apiClient.Ready(ctx)
		if err != nil {
			results = append(results, checkResult{
				Name: "Server ready",
				Hint: fmt.Sprintf("The database or schema is not available. Error: %v", err),
			})
		} else {
			results = append(results, checkResult{
				Name: "Server ready", Passed: true,
				Detail: fmt.Sprintf("schema v%d", ready.SchemaVersion),
			})
		}
	}

	if flagTree == "" {
		results = append(results, checkResult{
			Name: "Tree selected",
			Hint: "Set --tree, PHYLO_TREE, or tree in ~/.phylo/config.yaml",
		})
	} else if err == nil {
		results = append(results, doctorTree(ctx))
	}

	return printChecks(results)
}

func doctorConfigFile() checkResult {
	path, _ := configPath()
	if _, err := loadConfigFile(); err != nil {
		// The config file is optional; flags and env are enough.
		return checkResult{Name: "Config file", Passed: true, Detail: "not used (" + path + ")"}
	}
	return checkResult{Name: "Config file", Passed: true, Detail: "found (" + path + ")"}
}

func doctorTree(ctx context.Context) checkResult {
	list, err := apiClient.Relations.List(ctx, flagTree)
	if err != nil {
		return checkResult{
			Name: "Tree selected", Detail: flagTree,
			Hint: fmt.Sprintf("Check the tree id. Error: %v", err),
		}
	}
	return checkResult{
		Name: "Tree selected", Passed: true,
		Detail: fmt.Sprintf("%s (%d relationships)", flagTree, len(list.Relationships)),
	}
}

func printChecks(results []checkResult) error {
	fmt.Println()
	allPassed := true
	for _, r := range results {
		mark := "✅"
		if !r.Passed {
			mark = "❌"
			allPassed = false
		}
		if r.Detail != "" {
			fmt.Printf("%s %s: %s\n", mark, r.Name, r.Detail)
		} else {
			fmt.Printf("%s %s\n", mark, r.Name)
		}
		if !r.Passed && r.Hint != "" {
			fmt.Printf("   Hint: %s\n", r.Hint)
		}
	}

	fmt.Println()
	if !allPassed {
		fmt.Println("❌ Some checks failed.")
		return fmt.Errorf("doctor found issues")
	}
	fmt.Println("✅ All checks passed!")
	return nil
}
