// Package cmd contains all CLI commands for cprtcat.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oscalforge/cprtcat/internal/config"
)

var (
	// Version is the current version of cprtcat
	Version = "0.1.0"

	// Global flags
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cprtcat",
	Short: "Convert CPRT framework exports to OSCAL catalogs",
	Long: `cprtcat converts NIST CPRT framework exports into OSCAL catalog documents.

A CPRT export is a flat graph of typed elements (families, requirements,
assessment objectives, parameters, references) and typed relationships
between them. cprtcat indexes that graph, walks it along the framework's
structural relation, and emits a nested OSCAL catalog: groups, controls,
parts, parameters, and a shared back-matter resource list.

Main capabilities:
  - Fetch framework exports from the CPRT API, with local caching
  - Convert an export (remote or local file) to an OSCAL catalog
  - List the frameworks the converter understands

Examples:
  cprtcat frameworks                           # List convertible frameworks
  cprtcat fetch SP_800_171_3_0_0               # Download and cache an export
  cprtcat convert SP_800_171_3_0_0 -o out.json # Convert to OSCAL JSON
  cprtcat convert SP_800_171_3_0_0 --input export.json --pretty

See 'cprtcat <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .cprtcat/config.yaml)")
}

// loadConfig resolves configuration from --config or the working directory.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return config.Load(wd)
}

// verbosef prints a diagnostic line to stderr when --verbose is set.
func verbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
