package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phylo-app/phylo/internal/models"
	"github.com/phylo-app/phylo/internal/service"
)

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Whole-tree commands",
	}
	cmd.AddCommand(treeExportCmd())
	cmd.AddCommand(treeValidateCmd())
	return cmd
}

func treeExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the tree to a YAML snapshot for offline queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := requireTree()
			if err != nil {
				return err
			}

			out, err := apiClient.Trees.ExportYAML(cmd.Context(), tree)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if outputPath == "" {
				outputPath = fmt.Sprintf("phylo-tree-%s.yaml", time.Now().UTC().Format("20060102T150405Z"))
			}

			if outputPath == "-" {
				_, err = os.Stdout.Write(out)
				return err
			}

			if err := os.WriteFile(outputPath, out, 0o600); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Exported tree %s to %s\n", tree, outputPath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: phylo-tree-<timestamp>.yaml, use - for stdout)")

	return cmd
}

func treeValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report consistency problems in a tree snapshot file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(file)
			if err != nil {
				return err
			}
			problems := service.ValidateSnapshot(snap)
			for _, p := range problems {
				fmt.Println(p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d problem(s) in %s", len(problems), file)
			}
			fmt.Printf("%s: %d members, %d relationships, no problems\n", file, len(snap.Members), len(snap.Relationships))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Tree snapshot file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadSnapshot(path string) (*models.TreeSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var snap models.TreeSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &snap, nil
}
