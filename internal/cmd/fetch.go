package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <framework-version-id>",
	Short: "Download a CPRT export into the local cache",
	Long: `Fetch downloads the export for a framework version from the CPRT API and
stores it in the local cache, where convert picks it up. With --out the raw
JSON is additionally written to a file for offline use.

Examples:
  cprtcat fetch SP_800_171_3_0_0
  cprtcat fetch SP_800_171_3_0_0 --refresh
  cprtcat fetch SP_800_171_3_0_0 --out export.json`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

var (
	fetchRefresh bool
	fetchOut     string
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "Re-fetch even if the export is cached")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "Also write the raw export JSON to a file")
}

func runFetch(cmd *cobra.Command, args []string) error {
	frameworkID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	payload, err := loadExportPayload(cmd.Context(), cfg, frameworkID, fetchRefresh)
	if err != nil {
		return err
	}

	if fetchOut != "" {
		if err := os.WriteFile(fetchOut, payload, 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", fetchOut, len(payload))
		return nil
	}

	fmt.Printf("Cached export for %s (%d bytes)\n", frameworkID, len(payload))
	return nil
}
