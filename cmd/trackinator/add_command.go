package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barafael/trackinator/internal/manifest"
)

func newAddCommand() *cobra.Command {
	var manifestPath string
	var name string
	var path string

	cmd := &cobra.Command{
		Use:         "add",
		Short:       "Append a track to the manifest",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := manifest.Update(manifestPath, func(m *manifest.Manifest) error {
				m.Songs = append(m.Songs, manifest.Track{Name: name, Path: path})
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", name, manifestPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", defaultManifestPath, "The manifest to modify")
	cmd.Flags().StringVar(&name, "name", "", "The name of the new song")
	cmd.Flags().StringVar(&path, "path", "", "The path of the new song")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
