package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("  Osmosis: water movement.\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if got != "Osmosis: water movement." {
		t.Errorf("readInput = %q, want trimmed content", got)
	}
}

func TestReadInputRejectsEmptyFile(t *testing.T) {
	for name, content := range map[string]string{
		"empty":           "",
		"whitespace only": "  \n\t\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "notes.txt")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}

			if _, err := readInput(path); err == nil {
				t.Error("expected error for empty input")
			}
		})
	}
}

func TestReadInputMissingFile(t *testing.T) {
	if _, err := readInput(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
