package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# comment
PLAYGROUND_COLLISIONS=false
export PLAYGROUND_FPS = 120
PLAYGROUND_LOG="logs/run.txt"
PLAYGROUND_TITLE='ball pit'
novalue
=orphan
`
	vars, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"PLAYGROUND_COLLISIONS": "false",
		"PLAYGROUND_FPS":        "120",
		"PLAYGROUND_LOG":        "logs/run.txt",
		"PLAYGROUND_TITLE":      "ball pit",
	}
	if len(vars) != len(want) {
		t.Errorf("Expected %d vars, got %v", len(want), vars)
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, vars[k])
		}
	}
}

func TestLoadKeepsExistingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "ENV_TEST_A=fromfile\nENV_TEST_B=fromfile\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV_TEST_A", "fromenv")
	t.Setenv("ENV_TEST_B", "")
	os.Unsetenv("ENV_TEST_B")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("ENV_TEST_A"); got != "fromenv" {
		t.Errorf("Expected real env to win, got %q", got)
	}
	if got := os.Getenv("ENV_TEST_B"); got != "fromfile" {
		t.Errorf("Expected file value, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("Expected nil for missing file, got %v", err)
	}
}
