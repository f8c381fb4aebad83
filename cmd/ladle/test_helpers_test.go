package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ladle/internal/testsupport"
)

type cliEnv struct {
	configPath  string
	catalogPath string
}

// setupCLIEnv writes a config file and a two-recipe catalog into a temp
// directory and returns their locations.
func setupCLIEnv(t *testing.T) cliEnv {
	t.Helper()

	base := t.TempDir()
	catalogPath := filepath.Join(base, "recipes.json")
	data, err := json.Marshal(testsupport.SampleRecipes())
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	if err := os.WriteFile(catalogPath, data, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(base, "data") + `"
catalog_path = "` + catalogPath + `"
log_dir = "` + filepath.Join(base, "logs") + `"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return cliEnv{configPath: configPath, catalogPath: catalogPath}
}

func runCLI(t *testing.T, env cliEnv, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", env.configPath))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func requireNotContains(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Fatalf("expected output to omit %q, got:\n%s", unwanted, output)
	}
}
