package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackprobe/stackprobe-cli/internal/detect"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in signature catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		platformFilter, _ := cmd.Flags().GetString("platform")

		catalog, err := detect.LoadCatalog()
		if err != nil {
			return fmt.Errorf("load signature catalog: %w", err)
		}

		if platformFilter == "" {
			return printPlatformOverview(catalog)
		}
		return printPlatformSignatures(catalog, detect.Platform(platformFilter))
	},
}

func init() {
	catalogCmd.Flags().String("platform", "", "show signatures for one platform (e.g. wordpress, shopify, universal)")
}

func printPlatformOverview(catalog *detect.Catalog) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLATFORM\tSIGNATURES\tCATEGORIES")
	for _, p := range catalog.Platforms() {
		cats := catalog.Categories(p)
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = string(c)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", p, catalog.Count(p), strings.Join(names, ", "))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%s %d signatures across %d platforms\n",
		colorInfo("Total:"), catalog.Total(), len(catalog.Platforms()))
	return nil
}

func printPlatformSignatures(catalog *detect.Catalog, platform detect.Platform) error {
	if !platform.IsValid() {
		return fmt.Errorf("unknown platform: %s", platform)
	}

	sigs := catalog.ForPlatform(platform)
	if len(sigs) == 0 {
		fmt.Printf("%s no signatures for platform %s\n", colorWarn("!"), platform)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPLATFORM\tCATEGORY\tCONFIDENCE\tRISK\tPERF")
	for _, sig := range sigs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			sig.Name, sig.Platform, sig.Category,
			sig.ConfidenceTier, sig.RiskLevel, sig.PerformanceImpact)
	}
	return w.Flush()
}
