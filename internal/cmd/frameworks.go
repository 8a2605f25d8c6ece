package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oscalforge/cprtcat/internal/convert"
)

// frameworksCmd represents the frameworks command
var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the frameworks cprtcat can convert",
	Long: `Frameworks lists the framework versions this build of cprtcat has a
converter for. With --remote it also queries the CPRT API and lists every
framework version the service publishes, marking the convertible ones.

Examples:
  cprtcat frameworks
  cprtcat frameworks --remote`,
	Args: cobra.NoArgs,
	RunE: runFrameworks,
}

var frameworksRemote bool

func init() {
	rootCmd.AddCommand(frameworksCmd)

	frameworksCmd.Flags().BoolVar(&frameworksRemote, "remote", false, "Also list framework versions published by the CPRT API")
}

func runFrameworks(cmd *cobra.Command, args []string) error {
	supported := make(map[string]bool)
	for _, id := range convert.Frameworks() {
		supported[id] = true
	}

	if !frameworksRemote {
		for _, id := range convert.Frameworks() {
			fmt.Println(id)
		}
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	meta, err := newClient(cfg).Metadata(cmd.Context())
	if err != nil {
		return err
	}

	for _, v := range meta.Versions {
		marker := " "
		if supported[v.FrameworkVersionIdentifier] {
			marker = "*"
		}
		fmt.Printf("%s %-24s %s\n", marker, v.FrameworkVersionIdentifier, v.FrameworkVersionName)
	}
	fmt.Println("\n* convertible by this build")
	return nil
}
