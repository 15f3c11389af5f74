package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/barafael/trackinator/internal/manifest"
)

type cliTestEnv struct {
	baseDir      string
	manifestPath string
	configPath   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	return &cliTestEnv{
		baseDir:      base,
		manifestPath: filepath.Join(base, "tracks.json"),
	}
}

func (env *cliTestEnv) enableHistory(t *testing.T) {
	t.Helper()
	env.configPath = filepath.Join(env.baseDir, "config.toml")
	content := "[history]\nenabled = true\npath = " + tomlQuote(filepath.Join(env.baseDir, "history.db")) + "\n"
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func tomlQuote(value string) string {
	return "\"" + strings.ReplaceAll(value, "\\", "\\\\") + "\""
}

func (env *cliTestEnv) writeManifest(t *testing.T, m manifest.Manifest) {
	t.Helper()
	if err := manifest.Save(env.manifestPath, &m); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if env.configPath != "" {
		args = append([]string{"--config", env.configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
