// Package main hosts the trackinator CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into manifest
// edits, page generation, reachability checks, and configuration scaffolding.
// It centralizes configuration resolution and logging setup so subcommands can
// focus on user experience instead of wiring.
package main
