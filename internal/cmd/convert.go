package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oscalforge/cprtcat/internal/config"
	"github.com/oscalforge/cprtcat/internal/convert"
	"github.com/oscalforge/cprtcat/internal/cprt"
	"github.com/oscalforge/cprtcat/internal/oscal"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <framework-version-id>",
	Short: "Convert a CPRT export to an OSCAL catalog",
	Long: `Convert turns a CPRT framework export into an OSCAL catalog document.

By default the export and its metadata are fetched from the CPRT API (the
export via the local cache). With --input, a previously downloaded export
file is converted instead and no network access happens; pass --title and
--doc-version to fill the catalog metadata in that case.

Examples:
  cprtcat convert SP_800_171_3_0_0 -o catalog.json
  cprtcat convert SP_800_171_3_0_0 --refresh --pretty
  cprtcat convert SP_800_171_3_0_0 --input export.json --title "SP 800-171 rev 3"`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var (
	convertInput   string
	convertOutput  string
	convertPretty  bool
	convertRefresh bool
	convertTitle   string
	convertDocVer  string
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertInput, "input", "", "Convert a local export file instead of fetching")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "Indent the JSON output")
	convertCmd.Flags().BoolVar(&convertRefresh, "refresh", false, "Bypass the cache and re-fetch the export")
	convertCmd.Flags().StringVar(&convertTitle, "title", "", "Catalog title when converting with --input")
	convertCmd.Flags().StringVar(&convertDocVer, "doc-version", "", "Catalog version when converting with --input")
}

func runConvert(cmd *cobra.Command, args []string) error {
	frameworkID := args[0]

	desc, ok := convert.Lookup(frameworkID)
	if !ok {
		return fmt.Errorf("no converter for framework %q (available: %s)",
			frameworkID, strings.Join(convert.Frameworks(), ", "))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root, meta, err := resolveInput(cmd, cfg, frameworkID)
	if err != nil {
		return err
	}
	verbosef("export loaded: %d elements, %d relationships", len(root.Elements), len(root.Relationships))

	builder, err := convert.NewBuilder(desc, meta, root, frontMatterFromConfig(cfg))
	if err != nil {
		return err
	}
	catalog, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	data, err := marshalDocument(&oscal.Document{Catalog: catalog})
	if err != nil {
		return err
	}

	if convertOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(convertOutput, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	groups := len(catalog.Groups)
	fmt.Printf("Wrote %s (%d groups, %d bytes)\n", convertOutput, groups, len(data))
	return nil
}

// resolveInput loads the export graph and framework metadata, either from a
// local file or from the API/cache.
func resolveInput(cmd *cobra.Command, cfg *config.Config, frameworkID string) (*cprt.Root, *cprt.MetadataVersion, error) {
	if convertInput != "" {
		root, err := cprt.LoadExport(convertInput)
		if err != nil {
			return nil, nil, err
		}
		// Offline conversion: metadata comes from flags, not the API.
		meta := &cprt.MetadataVersion{
			FrameworkIdentifier:        frameworkID,
			FrameworkVersionIdentifier: frameworkID,
			FrameworkVersionName:       convertTitle,
			Version:                    convertDocVer,
		}
		if meta.FrameworkVersionName == "" {
			meta.FrameworkVersionName = frameworkID
		}
		return root, meta, nil
	}

	ctx := cmd.Context()
	meta, err := newClient(cfg).Version(ctx, frameworkID)
	if err != nil {
		return nil, nil, err
	}
	payload, err := loadExportPayload(ctx, cfg, frameworkID, convertRefresh)
	if err != nil {
		return nil, nil, err
	}
	root, err := cprt.ParseExport(payload)
	if err != nil {
		return nil, nil, err
	}
	return root, meta, nil
}

func frontMatterFromConfig(cfg *config.Config) convert.FrontMatter {
	return convert.FrontMatter{
		GeneratedBy:        cfg.Catalog.GeneratedBy,
		PublisherName:      cfg.Publisher.Name,
		PublisherShortName: cfg.Publisher.ShortName,
		PublisherEmail:     cfg.Publisher.Email,
		AddressLines:       cfg.Publisher.AddrLines,
		City:               cfg.Publisher.City,
		State:              cfg.Publisher.State,
		PostalCode:         cfg.Publisher.PostalCode,
	}
}

func marshalDocument(doc *oscal.Document) ([]byte, error) {
	if convertPretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
