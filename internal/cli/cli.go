// Package cli implements the graphml command-line interface.
//
// The CLI converts graph files (JSON or TOML, see pkg/io) to GraphML,
// previews them as node-link diagrams, and serves the encoder over HTTP.
// It is built using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
//   - export: Convert a graph file to GraphML
//   - preview: Render a graph file as DOT or SVG
//   - serve: Run the HTTP export service
//   - cache: Manage the export cache
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Defaults for export and serve flags can be set in a TOML file at
// $XDG_CONFIG_HOME/graphml/config.toml (or --config). Flags given on the
// command line always win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphml/pkg/buildinfo"
	"github.com/matzehuels/graphml/pkg/cache"
	gio "github.com/matzehuels/graphml/pkg/io"
)

// appName is the application name used for directories and display.
const appName = "graphml"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// config is loaded from the config file before any command runs.
	config fileConfig
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "graphml converts graphs to GraphML",
		Long:          `graphml converts graph files to GraphML documents that yEd, Gephi, Cytoscape and NetworkX can open, with optional node and edge attributes.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.Logger.SetLevel(LogDebug)
				registerLogHooks(c.Logger)
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphml/config.toml)")

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache opens the CLI export cache. When the cache directory cannot be
// determined, caching is silently disabled.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/graphml/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/graphml/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// completeExporters offers the exporter names for --node-weights and
// --edge-weights.
func completeExporters(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return gio.ExporterNames, cobra.ShellCompDirectiveNoFileComp
}

// graphFileArgs restricts file completion to supported graph files.
func graphFileArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json", "toml"}, cobra.ShellCompDirectiveFilterFileExt
}
