// Package manifest loads, saves, and edits the JSON track manifest.
//
// A manifest describes a page title, a URL prefix, and an ordered list of
// songs. The package owns the canonical on-disk form (pretty-printed JSON
// with stable field order) and guards read-modify-write cycles with a lock
// file so concurrent CLI invocations cannot interleave writes.
package manifest
