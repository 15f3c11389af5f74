package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barafael/trackinator/internal/manifest"
	"github.com/barafael/trackinator/internal/render"
)

func newGenerateCommand() *cobra.Command {
	var manifestPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:         "generate",
		Short:       "Render the manifest to a static HTML page",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(manifestPath)
			if err != nil {
				return err
			}
			page, err := render.Page(m)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputPath, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write page %s: %w", outputPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d tracks)\n", outputPath, len(m.Songs))
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", defaultManifestPath, "The JSON manifest file")
	cmd.Flags().StringVar(&outputPath, "output", "index.html", "The file to write the page to")
	return cmd
}
