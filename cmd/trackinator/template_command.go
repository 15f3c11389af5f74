package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barafael/trackinator/internal/manifest"
)

func newTemplateCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:         "template",
		Short:       "Write a manifest with empty default values",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			empty := manifest.Default()
			if err := manifest.Write(manifestPath, &empty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote template manifest to %s\n", manifestPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", defaultManifestPath, "The manifest path")
	return cmd
}
