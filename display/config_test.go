package display

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/retained"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
width = 320
height = 200
verify = true
log_level = "debug"

[warmup]
blocks = 4
drawables = 64
gradients = 8
`)
	got, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	want := Config{
		Width:    320,
		Height:   200,
		Verify:   true,
		LogLevel: "debug",
		Warmup:   WarmupConfig{Blocks: 4, Drawables: 64, Gradients: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	got, err := ParseConfig([]byte(`verify = true`))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	want := DefaultConfig()
	want.Verify = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		badCfg bool
	}{
		{"syntax", `width = `, false},
		{"unknown key", `colour = "red"`, true},
		{"zero size", `width = 0`, true},
		{"negative warmup", "[warmup]\nblocks = -1", true},
		{"bad level", `log_level = "loud"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseConfig() succeeded")
			}
			if got := errors.Is(err, ErrBadConfig); got != tt.badCfg {
				t.Errorf("errors.Is(err, ErrBadConfig) = %v, want %v (err: %v)", got, tt.badCfg, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.toml")
	if err := os.WriteFile(path, []byte("width = 64\nheight = 32\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("LoadConfig() = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Cleanup(func() {
		retained.SetVerify(true)
		retained.SetLogger(nil)
	})

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 48, 24
	cfg.Warmup = WarmupConfig{Blocks: 1, Drawables: 2, Gradients: 1}
	d, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig() error: %v", err)
	}
	if d.Width() != 48 || d.Height() != 24 {
		t.Errorf("size = %dx%d, want 48x24", d.Width(), d.Height())
	}
	if retained.Verifying() {
		t.Error("verify = false in config but verification is on")
	}
	if st := d.Stats(); st.Objects.Drawables.Free != 2 {
		t.Errorf("drawable pool free = %d, want 2", st.Objects.Drawables.Free)
	}

	cfg.Height = -1
	if _, err := NewFromConfig(cfg); !errors.Is(err, ErrBadConfig) {
		t.Errorf("NewFromConfig(bad) error = %v, want ErrBadConfig", err)
	}
}
