package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"beatinfo/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("BEATINFO_SONGS_DIR", "")
	t.Setenv("BEATINFO_WIP_SONGS_DIR", "")
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantSongs := filepath.Join(tempHome, "BeatSaber", "Beat Saber_Data", "CustomLevels")
	if cfg.Paths.CustomSongsDir != wantSongs {
		t.Fatalf("unexpected songs dir: got %q want %q", cfg.Paths.CustomSongsDir, wantSongs)
	}
	wantWIP := filepath.Join(tempHome, "BeatSaber", "Beat Saber_Data", "CustomWIPLevels")
	if cfg.WorkInProgressRoot() != wantWIP {
		t.Fatalf("unexpected wip dir: got %q want %q", cfg.WorkInProgressRoot(), wantWIP)
	}
	if cfg.ReleaseRoot() != cfg.Paths.CustomSongsDir {
		t.Fatalf("ReleaseRoot mismatch: %q", cfg.ReleaseRoot())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Info.Backup {
		t.Fatal("expected backups disabled by default")
	}
	if cfg.LogFilePath() != "" {
		t.Fatalf("expected no log file by default, got %q", cfg.LogFilePath())
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.LockDir); err != nil || !info.IsDir() {
		t.Fatalf("expected lock dir %q to exist: %v", cfg.Paths.LockDir, err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "beatinfo.toml")
	t.Setenv("BEATINFO_SONGS_DIR", "")
	t.Setenv("BEATINFO_WIP_SONGS_DIR", "")

	type payload struct {
		Paths struct {
			CustomSongsDir    string `toml:"custom_songs_dir"`
			CustomWIPSongsDir string `toml:"custom_wip_songs_dir"`
		} `toml:"paths"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		Info struct {
			Backup bool `toml:"backup"`
		} `toml:"info"`
	}
	custom := payload{}
	custom.Paths.CustomSongsDir = filepath.Join(tempDir, "songs")
	custom.Paths.CustomWIPSongsDir = filepath.Join(tempDir, "wip")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	custom.Info.Backup = true
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.ReleaseRoot() != filepath.Join(tempDir, "songs") {
		t.Fatalf("unexpected release root: %q", cfg.ReleaseRoot())
	}
	if cfg.WorkInProgressRoot() != filepath.Join(tempDir, "wip") {
		t.Fatalf("unexpected wip root: %q", cfg.WorkInProgressRoot())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if !cfg.Info.Backup {
		t.Fatal("expected backup enabled")
	}
}

func TestLoadEnvOverridesSongRoots(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("BEATINFO_SONGS_DIR", filepath.Join(tempDir, "env-songs"))
	t.Setenv("BEATINFO_WIP_SONGS_DIR", filepath.Join(tempDir, "env-wip"))

	cfg, _, _, err := config.Load(filepath.Join(tempDir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ReleaseRoot() != filepath.Join(tempDir, "env-songs") {
		t.Fatalf("env override ignored: %q", cfg.ReleaseRoot())
	}
	if cfg.WorkInProgressRoot() != filepath.Join(tempDir, "env-wip") {
		t.Fatalf("env override ignored: %q", cfg.WorkInProgressRoot())
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("BEATINFO_SONGS_DIR", "")
	t.Setenv("BEATINFO_WIP_SONGS_DIR", "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown level",
			content: "[logging]\nlevel = \"loud\"\n",
			wantErr: "logging.level",
		},
		{
			name:    "same roots",
			content: "[paths]\ncustom_songs_dir = \"/tmp/songs\"\ncustom_wip_songs_dir = \"/tmp/songs\"\n",
			wantErr: "must differ",
		},
		{
			name:    "unknown key",
			content: "[paths]\nstaging_dir = \"/tmp\"\n",
			wantErr: "parse config",
		},
	}
	for _, tt := range tests {
		path := filepath.Join(tempDir, strings.ReplaceAll(tt.name, " ", "_")+".toml")
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		_, _, _, err := config.Load(path)
		if err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("BEATINFO_SONGS_DIR", "")
	t.Setenv("BEATINFO_WIP_SONGS_DIR", "")
	path := filepath.Join(tempDir, "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.ReleaseRoot() != filepath.Join(tempDir, "BeatSaber", "Beat Saber_Data", "CustomLevels") {
		t.Fatalf("unexpected release root from sample: %q", cfg.ReleaseRoot())
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/songs")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "songs") {
		t.Fatalf("got %q", got)
	}
}
