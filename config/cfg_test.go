package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"ttc/common"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Compiler.Profile != common.ProfileSdpUs {
		t.Errorf("Profile = %s, want sdp-us", cfg.Compiler.Profile)
	}
	if cfg.Compiler.Viewport != (ViewportConfig{Width: 1920, Height: 1080}) {
		t.Errorf("Viewport = %+v", cfg.Compiler.Viewport)
	}
	if cfg.Compiler.Overflow != common.OverflowDefault {
		t.Errorf("Overflow = %s, want default", cfg.Compiler.Overflow)
	}
	if cfg.Compiler.ShowBackground != "" || cfg.Compiler.UserStyle != "" {
		t.Errorf("unexpected compiler overrides: %+v", cfg.Compiler)
	}
	if cfg.Output.Format != common.OutputFmtJson {
		t.Errorf("Format = %s, want json", cfg.Output.Format)
	}
	// name template must survive template expansion
	if cfg.Output.NameTemplate != "{{ .Name }}" {
		t.Errorf("NameTemplate = %q", cfg.Output.NameTemplate)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
compiler:
  profile: ebu-tt-d
  viewport:
    width: 1280
    height: 720
  overflow: hidden
  show_background: whenActive
  user_style: "color: yellow"
  images:
    scale: true
output:
  format: sqlite
  name_template: "{{ .Name }}-{{ .Lang }}"
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Compiler.Profile != common.ProfileEbuTtD {
		t.Errorf("Profile = %s, want ebu-tt-d", cfg.Compiler.Profile)
	}
	if cfg.Compiler.Viewport.Width != 1280 || cfg.Compiler.Viewport.Height != 720 {
		t.Errorf("Viewport = %+v", cfg.Compiler.Viewport)
	}
	if cfg.Compiler.Overflow != common.OverflowHidden {
		t.Errorf("Overflow = %s, want hidden", cfg.Compiler.Overflow)
	}
	if cfg.Compiler.ShowBackground != "whenActive" {
		t.Errorf("ShowBackground = %q", cfg.Compiler.ShowBackground)
	}
	if cfg.Compiler.UserStyle != "color: yellow" {
		t.Errorf("UserStyle = %q", cfg.Compiler.UserStyle)
	}
	if !cfg.Compiler.Images.Scale || cfg.Compiler.Images.RasterizeSVG {
		t.Errorf("Images = %+v", cfg.Compiler.Images)
	}
	if cfg.Output.Format != common.OutputFmtSqlite {
		t.Errorf("Format = %s, want sqlite", cfg.Output.Format)
	}
	if cfg.Output.NameTemplate != "{{ .Name }}-{{ .Lang }}" {
		t.Errorf("NameTemplate = %q", cfg.Output.NameTemplate)
	}
	// values not in file come from template
	if !cfg.Output.Indent {
		t.Error("Indent should keep default true")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "version: 1\ncompiler:\n  frame_rate: 25\n"},
		{"wrong version", "version: 2\n"},
		{"unknown profile", "version: 1\ncompiler:\n  profile: imsc1\n"},
		{"unknown format", "version: 1\noutput:\n  format: srt\n"},
		{"bad show background", "version: 1\ncompiler:\n  show_background: sometimes\n"},
		{"zero viewport", "version: 1\ncompiler:\n  viewport:\n    width: 0\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for absent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "{{ .Name }}") {
		t.Error("Prepare() expanded name template")
	}

	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Compiler.Profile = common.ProfileEbuTtD
	cfg.Output.Format = common.OutputFmtIon

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for _, want := range []string{"profile: ebu-tt-d", "format: ion"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Dump() does not contain %q:\n%s", want, data)
		}
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Compiler != cfg.Compiler || cfg2.Output != cfg.Output {
		t.Errorf("config changed after dump/load:\n%+v\n%+v", cfg2, cfg)
	}
}
