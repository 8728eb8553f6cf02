package main

import (
	"os"
	"path/filepath"
	"testing"
)

// resetFlags restores global flag state after each test.
func resetFlags(t *testing.T) {
	t.Helper()
	orig := struct{ url, tree, fmt string }{flagURL, flagTree, flagFmt}
	t.Cleanup(func() {
		flagURL = orig.url
		flagTree = orig.tree
		flagFmt = orig.fmt
	})
}

// isolate points HOME at a temp dir and clears phylo env vars.
func isolate(t *testing.T) string {
	t.Helper()
	resetFlags(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PHYLO_URL", "")
	t.Setenv("PHYLO_TREE", "")
	t.Setenv("PHYLO_PROFILE", "")
	flagURL = defaultURL
	flagTree = ""
	return home
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, ".phylo")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	isolate(t)
	resolveConfig()

	if flagURL != defaultURL {
		t.Errorf("flagURL: got %q, want %q", flagURL, defaultURL)
	}
	if flagTree != "" {
		t.Errorf("flagTree: got %q, want empty", flagTree)
	}
	if _, err := requireTree(); err == nil {
		t.Error("requireTree: expected error with no tree")
	}
}

func TestResolveConfigEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PHYLO_URL", "http://env-server:9090")
	t.Setenv("PHYLO_TREE", "tree-from-env")
	resolveConfig()

	if flagURL != "http://env-server:9090" {
		t.Errorf("flagURL: got %q", flagURL)
	}
	if flagTree != "tree-from-env" {
		t.Errorf("flagTree: got %q", flagTree)
	}
}

func TestResolveConfigFlagWins(t *testing.T) {
	home := isolate(t)
	t.Setenv("PHYLO_URL", "http://env-server:9090")
	writeConfig(t, home, "url: http://file-server:1\ntree: file-tree\n")

	flagURL = "http://flag-server:1234"
	flagTree = "flag-tree"
	resolveConfig()

	if flagURL != "http://flag-server:1234" || flagTree != "flag-tree" {
		t.Errorf("flags overridden: %q %q", flagURL, flagTree)
	}
}

func TestResolveConfigFlatFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "url: http://file-server:1\ntree: file-tree\n")
	resolveConfig()

	if flagURL != "http://file-server:1" || flagTree != "file-tree" {
		t.Errorf("got %q %q", flagURL, flagTree)
	}
}

func TestResolveConfigProfiles(t *testing.T) {
	const cfg = `
url: http://flat:1
active_profile: home
profiles:
  home:
    url: http://home:1
    tree: home-tree
  work:
    url: http://work:1
    tree: work-tree
`
	t.Run("active profile", func(t *testing.T) {
		home := isolate(t)
		writeConfig(t, home, cfg)
		resolveConfig()

		if flagURL != "http://home:1" || flagTree != "home-tree" {
			t.Errorf("got %q %q", flagURL, flagTree)
		}
	})

	t.Run("env selects profile", func(t *testing.T) {
		home := isolate(t)
		writeConfig(t, home, cfg)
		t.Setenv("PHYLO_PROFILE", "work")
		resolveConfig()

		if flagURL != "http://work:1" || flagTree != "work-tree" {
			t.Errorf("got %q %q", flagURL, flagTree)
		}
	})

	t.Run("env tree beats profile", func(t *testing.T) {
		home := isolate(t)
		writeConfig(t, home, cfg)
		t.Setenv("PHYLO_TREE", "env-tree")
		resolveConfig()

		if flagURL != "http://home:1" || flagTree != "env-tree" {
			t.Errorf("got %q %q", flagURL, flagTree)
		}
	})
}

func TestResolveConfigBadFileIgnored(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "url: [unterminated")
	resolveConfig()

	if flagURL != defaultURL {
		t.Errorf("flagURL: got %q", flagURL)
	}
}
