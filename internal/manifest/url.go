package manifest

// Resolve joins a prefix and a track path by plain concatenation. The prefix
// is used verbatim: no escaping, no trailing-slash handling. Manifest authors
// own separator hygiene, matching the on-disk contract.
func Resolve(prefix, path string) string {
	return prefix + path
}

// TrackURL resolves the URL for one of the manifest's tracks.
func (m *Manifest) TrackURL(t Track) string {
	return Resolve(m.Prefix, t.Path)
}
