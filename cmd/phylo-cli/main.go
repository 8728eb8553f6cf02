package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phylo-app/phylo/client"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

const defaultURL = "http://localhost:3040"

var (
	apiClient *client.Client
	flagURL   string
	flagTree  string
	flagFmt   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("phylo version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("phylo version %s-dev", version)
}

type configFile struct {
	URL           string                   `yaml:"url"`
	Tree          string                   `yaml:"tree"`
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

type configProfile struct {
	URL  string `yaml:"url"`
	Tree string `yaml:"tree"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "phylo",
		Short:   "phylo CLI: ask how two people in a family tree are related",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
			apiClient = client.New(flagURL)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "phylo server URL (env: PHYLO_URL)")
	rootCmd.PersistentFlags().StringVar(&flagTree, "tree", "", "Tree id for remote queries (env: PHYLO_TREE)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "table", "Output format: json|table|quiet")

	rootCmd.AddCommand(newRelationCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

// configPath returns ~/.phylo/config.yaml.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".phylo", "config.yaml"), nil
}

func loadConfigFile() (*configFile, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// resolveConfig fills unset flags from the environment, then from the config
// file. Flags take precedence over env, env over the file.
func resolveConfig() {
	if flagURL == defaultURL {
		if v := os.Getenv("PHYLO_URL"); v != "" {
			flagURL = v
		}
	}
	if flagTree == "" {
		flagTree = os.Getenv("PHYLO_TREE")
	}

	cfg, err := loadConfigFile()
	if err != nil {
		return
	}

	resolvedURL, resolvedTree := cfg.URL, cfg.Tree
	if cfg.Profiles != nil {
		profileName := os.Getenv("PHYLO_PROFILE")
		if profileName == "" {
			profileName = cfg.ActiveProfile
		}
		if profileName == "" {
			profileName = "default"
		}
		if p, ok := cfg.Profiles[profileName]; ok {
			if p.URL != "" {
				resolvedURL = p.URL
			}
			if p.Tree != "" {
				resolvedTree = p.Tree
			}
		}
	}
	if flagURL == defaultURL && resolvedURL != "" {
		flagURL = resolvedURL
	}
	if flagTree == "" && resolvedTree != "" {
		flagTree = resolvedTree
	}
}

func requireTree() (string, error) {
	if flagTree == "" {
		return "", fmt.Errorf("no tree selected: pass --tree, set PHYLO_TREE, or set tree in ~/.phylo/config.yaml")
	}
	return flagTree, nil
}
