package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default input is mem_crash_results.csv", func(t *testing.T) {
		t.Parallel()
		if cfg.InputPath != "mem_crash_results.csv" {
			t.Errorf("expected InputPath 'mem_crash_results.csv', got %q", cfg.InputPath)
		}
	})

	t.Run("default output is mem_crash_plot.png", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputPath != "mem_crash_plot.png" {
			t.Errorf("expected OutputPath 'mem_crash_plot.png', got %q", cfg.OutputPath)
		}
	})

	t.Run("default DPI is 180", func(t *testing.T) {
		t.Parallel()
		if cfg.DPI != 180 {
			t.Errorf("expected DPI 180, got %v", cfg.DPI)
		}
	})

	t.Run("default labels", func(t *testing.T) {
		t.Parallel()
		if cfg.YLabel != "Average time to SIGSEGV (ns)" {
			t.Errorf("unexpected YLabel %q", cfg.YLabel)
		}
		if cfg.Title != "Heap‑overflow vs Kernel‑access crash latency" {
			t.Errorf("unexpected Title %q", cfg.Title)
		}
	})

	t.Run("default renderer is gonum", func(t *testing.T) {
		t.Parallel()
		if cfg.Renderer != RendererGonum {
			t.Errorf("expected renderer %q, got %q", RendererGonum, cfg.Renderer)
		}
	})

	t.Run("default canvas is 6.4x4.8 inches", func(t *testing.T) {
		t.Parallel()
		if cfg.WidthInches != 6.4 || cfg.HeightInches != 4.8 {
			t.Errorf("expected 6.4x4.8, got %vx%v", cfg.WidthInches, cfg.HeightInches)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method.
// Each test case breaks exactly one rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "empty output returns ErrNoOutput",
			mutate:  func(c *Config) { c.OutputPath = "" },
			wantErr: ErrNoOutput,
		},
		{
			name:    "zero dpi returns ErrInvalidDPI",
			mutate:  func(c *Config) { c.DPI = 0 },
			wantErr: ErrInvalidDPI,
		},
		{
			name:    "negative width returns ErrInvalidCanvasSize",
			mutate:  func(c *Config) { c.WidthInches = -1 },
			wantErr: ErrInvalidCanvasSize,
		},
		{
			name:    "zero height returns ErrInvalidCanvasSize",
			mutate:  func(c *Config) { c.HeightInches = 0 },
			wantErr: ErrInvalidCanvasSize,
		},
		{
			name:    "unknown renderer returns ErrUnknownRenderer",
			mutate:  func(c *Config) { c.Renderer = "matplotlib" },
			wantErr: ErrUnknownRenderer,
		},
		{
			name:    "unknown log format returns ErrUnknownLogFormat",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: ErrUnknownLogFormat,
		},
		{
			name: "json and markdown returns ErrConflictingReportFormats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "go-chart renderer is valid",
			mutate:  func(c *Config) { c.Renderer = RendererGoChart },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadConfigFile tests loading YAML configuration files.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile("/nonexistent/path/.crashplot.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cf != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config and applies it", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `output: out/latency.png
renderer: go-chart
chart:
  title: "Crash latency"
  y_label: "ns"
  dpi: 96
  width_inches: 8
  height_inches: 5
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.OutputPath != "out/latency.png" {
			t.Errorf("expected output override, got %q", cfg.OutputPath)
		}
		if cfg.Renderer != RendererGoChart {
			t.Errorf("expected renderer override, got %q", cfg.Renderer)
		}
		if cfg.Title != "Crash latency" || cfg.YLabel != "ns" {
			t.Errorf("expected label overrides, got %q / %q", cfg.Title, cfg.YLabel)
		}
		if cfg.DPI != 96 || cfg.WidthInches != 8 || cfg.HeightInches != 5 {
			t.Errorf("expected canvas overrides, got %v dpi %vx%v", cfg.DPI, cfg.WidthInches, cfg.HeightInches)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte("chart:\n  dpi: 300\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.DPI != 300 {
			t.Errorf("expected dpi 300, got %v", cfg.DPI)
		}
		if cfg.OutputPath != DefaultOutputPath || cfg.Title != DefaultTitle {
			t.Error("expected untouched settings to keep their defaults")
		}
	})

	t.Run("empty file is valid", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, nil, 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("returns error for unknown keys", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte("colour: red\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for unknown key")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("chart: {}"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent absolute path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("returns empty for empty path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile(""); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Fatal("expected non-empty XDG config dir")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("expected dir to end with %q, got %q", AppName, dir)
	}
}
