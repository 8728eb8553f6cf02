package config

// Version is the phylo binary version.
// Set at build time via: -ldflags "-X github.com/phylo-app/phylo/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
