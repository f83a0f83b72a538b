package main

import (
	"fmt"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"
	"github.com/spf13/cobra"
)

// fetchCmd downloads a catalog preset bundle into the project directory so
// world.yaml can point at it with `catalog:`. Sources use go-getter syntax,
// e.g. git::https://example.com/presets.git//earth-2100.
func fetchCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "fetch [project-path]",
		Short: "Download a biome catalog preset into the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if source == "" {
				return fmt.Errorf("--source is required")
			}
			dest := filepath.Join(args[0], "catalogs")
			if err := os.RemoveAll(dest); err != nil {
				return err
			}
			if err := get.Get(dest, source); err != nil {
				return fmt.Errorf("fetching %s: %w", source, err)
			}
			fmt.Printf("Catalog presets downloaded to %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "go-getter source URL for the preset bundle")
	return cmd
}
