// Package render turns a manifest into a static HTML page with one audio
// player per track.
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/barafael/trackinator/internal/manifest"
)

//go:embed page.html.tmpl
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

type pageTrack struct {
	Name string
	URL  string
}

type pageData struct {
	Title  string
	Tracks []pageTrack
}

// Page renders the manifest as a standalone HTML document. Tracks appear in
// manifest order; the renderer performs no I/O.
func Page(m *manifest.Manifest) (string, error) {
	data := pageData{
		Title:  m.Title,
		Tracks: make([]pageTrack, 0, len(m.Songs)),
	}
	for _, song := range m.Songs {
		data.Tracks = append(data.Tracks, pageTrack{Name: song.Name, URL: m.TrackURL(song)})
	}

	var buf strings.Builder
	if err := page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}
