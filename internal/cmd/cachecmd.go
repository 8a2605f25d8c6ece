package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oscalforge/cprtcat/internal/cache"
)

// cacheCmd groups cache administration subcommands
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the export cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cached exports and their sizes",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached exports",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func openCache() (*cache.Cache, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return nil, err
	}
	return cache.Open(dir)
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	c, err := openCache()
	if err != nil {
		return err
	}
	defer c.Close()

	entries, err := c.ListExports()
	if err != nil {
		return err
	}
	stats, err := c.GetStats()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Printf("%-24s fetched %s\n", entry.FrameworkVersionID, entry.FetchedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("%d exports, %d bytes (%s)\n", stats.ExportCount, stats.TotalBytes, c.Path())
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	c, err := openCache()
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Clear(); err != nil {
		return err
	}
	fmt.Println("Cache cleared")
	return nil
}
