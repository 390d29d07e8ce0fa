package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slots/internal/assets"
)

var flagAllEntries bool

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List playable symbols",
	Long: `Loads the catalog and shows the symbols a player can pick, in selector
order. Only the first six catalog entries are playable.

Examples:
  slots symbols
  slots symbols --all             # every entry with its role`,
	RunE: runSymbols,
}

func init() {
	symbolsCmd.Flags().BoolVar(&flagAllEntries, "all", false, "List every catalog entry with its role")
}

func runSymbols(cmd *cobra.Command, _ []string) error {
	doc, src, err := assets.FetchDocument(cmd.Context(), cfg.Catalog)
	if err != nil {
		return err
	}
	gate := assets.NewGate(nil)
	if err := gate.Load(cmd.Context(), doc, assets.SourceOpener(src, cfg.Catalog)); err != nil {
		return err
	}
	cat := gate.Catalog()
	if flagAllEntries {
		printEntries(cat)
		return nil
	}

	fmt.Printf("Playable symbols (%s):\n", src.Title())
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range cat.Playable() {
		if len(s.Name) > maxIDLen {
			maxIDLen = len(s.Name)
		}
	}

	fmt.Printf("  Key  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  ---  %-*s  %s\n", maxIDLen, "--", "----")
	for i, s := range cat.Playable() {
		fmt.Printf("  %-3d  %-*s  %s\n", i+1, maxIDLen, s.Name, assets.DisplayName(s.Name))
	}

	if missing := cat.Missing(); len(missing) > 0 {
		fmt.Println()
		fmt.Printf("Missing game screen images: %v\n", missing)
	}
	return nil
}

func printEntries(cat *assets.Catalog) {
	entries := cat.Entries()

	maxLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxLen {
			maxLen = len(e.Name)
		}
	}

	fmt.Printf("  %-5s  %-*s  %s\n", "Index", maxLen, "Name", "Role")
	fmt.Printf("  %-5s  %-*s  %s\n", "-----", maxLen, "----", "----")
	for i, e := range entries {
		fmt.Printf("  %-5d  %-*s  %s\n", i, maxLen, e.Name, cat.Role(i))
	}
}
