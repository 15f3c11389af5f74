package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barafael/trackinator/internal/manifest"
)

func newFormatCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:         "format",
		Short:       "Rewrite the manifest in canonical pretty form",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// A round-trip with no semantic change; load then save.
			err := manifest.Update(manifestPath, func(*manifest.Manifest) error {
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Formatted %s\n", manifestPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", defaultManifestPath, "The manifest to format")
	return cmd
}
