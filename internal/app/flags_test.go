package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-seed", "7", "-tps", "30", "-w", "800", "-h", "600", "-sound=false", "-param", "gravity=0.5", "-param", "damping=0.99"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != 7 || cfg.TPS != 30 || cfg.Width != 800 || cfg.Height != 600 || cfg.Sound {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Params["gravity"] != "0.5" || cfg.Params["damping"] != "0.99" {
		t.Fatalf("unexpected params %v", cfg.Params)
	}
}

func TestBindRejectsMalformedParam(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(discard))
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-param", "gravity"}); err == nil {
		t.Fatalf("expected error for param without value")
	}
}

func TestSwingAppliesOverrides(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 99
	cfg.Width, cfg.Height = 640, 480
	cfg.Params["gravity"] = "0.4"
	sc := cfg.Swing()
	if sc.Seed != 99 {
		t.Fatalf("expected seed 99, got %d", sc.Seed)
	}
	if sc.Viewport.W != 640 || sc.Viewport.H != 480 {
		t.Fatalf("unexpected viewport %+v", sc.Viewport)
	}
	if sc.Params.Gravity != 0.4 {
		t.Fatalf("expected gravity 0.4, got %v", sc.Params.Gravity)
	}
}

func TestLoadEnvReadsDotenvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	body := "ROPESWING_SEED=42\nROPESWING_TPS=120\nROPESWING_FEED=:9000\nROPESWING_PARAM_CAMERA_SMOOTH=0.2\nOTHER=ignored\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := NewConfig()
	if err := cfg.LoadEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 42 || cfg.TPS != 120 || cfg.FeedAddr != ":9000" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Params["camera_smooth"] != "0.2" {
		t.Fatalf("expected camera_smooth override, got %v", cfg.Params)
	}
}

func TestLoadEnvProcessEnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ROPESWING_SEED=42\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("ROPESWING_SEED", "43")
	cfg := NewConfig()
	if err := cfg.LoadEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 43 {
		t.Fatalf("expected process env seed 43, got %d", cfg.Seed)
	}
}

func TestLoadEnvSkipsMissingFile(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be skipped, got %v", err)
	}
	if cfg.Seed != 1337 {
		t.Fatalf("defaults should survive, got seed %d", cfg.Seed)
	}
}

func TestApplyEnvReportsBadValues(t *testing.T) {
	cfg := NewConfig()
	err := cfg.ApplyEnv(map[string]string{"ROPESWING_TPS": "fast", "ROPESWING_WIDTH": "900"})
	if err == nil {
		t.Fatalf("expected error for non-numeric tps")
	}
	if cfg.Width != 900 {
		t.Fatalf("valid keys should still apply, width=%d", cfg.Width)
	}
	if cfg.TPS != 60 {
		t.Fatalf("bad value should keep default tps, got %d", cfg.TPS)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
