package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatal(err)
		}
	})

	// a missing config file is not an error
	if err := readConfigFile(); err != nil {
		t.Errorf("missing config file should not error: %v", err)
	}

	// a present but unparseable file must surface an error
	if err := os.WriteFile(filepath.Join(dir, "snapfs.yaml"), []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := readConfigFile(); err == nil {
		t.Error("malformed config file should error, not be skipped")
	}

	// a valid file loads and feeds viper
	if err := os.WriteFile(filepath.Join(dir, "snapfs.yaml"), []byte("store:\n  dir: .other\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := readConfigFile(); err != nil {
		t.Errorf("valid config file should load: %v", err)
	}
	if got := viper.GetString(storeDirKey); got != ".other" {
		t.Errorf("store.dir = %q, want .other", got)
	}
}

func TestParseSlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range cases {
		if got := parseSlogLevel(tt.in, slog.LevelInfo); got != tt.want {
			t.Errorf("parseSlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
