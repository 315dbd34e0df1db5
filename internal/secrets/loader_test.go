package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key")
	if err := os.WriteFile(path, []byte("  di-key-value \n"), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	got, err := Load(Source{Name: "document intelligence key", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "di-key-value" {
		t.Fatalf("expected trimmed secret, got %q", got)
	}
}

func TestLoadFilePrecedesValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key")
	if err := os.WriteFile(path, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	got, err := Load(Source{File: path, Value: "from-value"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file to win, got %q", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RESUME_INSIGHT_TEST_KEY", "from-env")

	got, err := Load(Source{Name: "test key", Env: "RESUME_INSIGHT_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env secret, got %q", got)
	}
}

func TestLoadMissingEverywhere(t *testing.T) {
	t.Setenv("RESUME_INSIGHT_TEST_EMPTY", "")

	_, err := Load(Source{Name: "test key", Env: "RESUME_INSIGHT_TEST_EMPTY"})
	if err == nil {
		t.Fatal("expected error for unset secret")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	if _, err := Load(Source{File: path}); err == nil {
		t.Fatal("expected error for empty secret file")
	}
}
