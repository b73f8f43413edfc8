package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}

	// 经典版的基础常量
	if cfg.Bird.Gravity != 0.6 || cfg.Bird.Lift != -10 {
		t.Errorf("bird physics: got gravity=%v lift=%v", cfg.Bird.Gravity, cfg.Bird.Lift)
	}
	if cfg.Pipes.Gap != 180 || cfg.Pipes.Width != 60 || cfg.Pipes.ScrollSpeed != 3 {
		t.Errorf("pipes: got %+v", cfg.Pipes)
	}
	if cfg.Effects.ParticleCount != 40 || cfg.Effects.ShakeIntensity != 20 || cfg.Effects.SlowMotion != 0.3 {
		t.Errorf("effects: got %+v", cfg.Effects)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		content     string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name:     "yaml overrides keep defaults",
			fileName: "flappy.yaml",
			content: `
bird:
  lift: -12
pipes:
  gap: 200
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Bird.Lift != -12 {
					t.Errorf("expected lift = -12, got %f", cfg.Bird.Lift)
				}
				if cfg.Pipes.Gap != 200 {
					t.Errorf("expected gap = 200, got %f", cfg.Pipes.Gap)
				}
				// 未出现的字段保持默认值
				if cfg.Bird.Gravity != 0.6 {
					t.Errorf("expected default gravity, got %f", cfg.Bird.Gravity)
				}
			},
		},
		{
			name:     "toml config",
			fileName: "flappy.toml",
			content: `
[effects]
enabled = false

[pipes]
spawnChance = 0.05
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Effects.Enabled {
					t.Error("expected effects disabled")
				}
				if cfg.Pipes.SpawnChance != 0.05 {
					t.Errorf("expected spawnChance = 0.05, got %f", cfg.Pipes.SpawnChance)
				}
			},
		},
		{
			name:        "positive lift rejected",
			fileName:    "bad.yaml",
			content:     "bird:\n  lift: 5\n",
			wantErr:     true,
			errContains: "lift must be negative",
		},
		{
			name:        "bad color rejected",
			fileName:    "bad_color.yaml",
			content:     "effects:\n  particleColors: [\"red\"]\n",
			wantErr:     true,
			errContains: "invalid color",
		},
		{
			name:        "unsupported extension",
			fileName:    "flappy.json",
			content:     "{}",
			wantErr:     true,
			errContains: "unsupported config format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.fileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEmbeddedFallsBackToDefault(t *testing.T) {
	cfg, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error: %v", err)
	}
	if cfg.Screen.Width != GameWindowWidth {
		t.Errorf("expected default width, got %d", cfg.Screen.Width)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#8a0303")
	if err != nil {
		t.Fatalf("ParseHexColor error: %v", err)
	}
	if c.R != 0x8a || c.G != 0x03 || c.B != 0x03 || c.A != 255 {
		t.Errorf("unexpected color %+v", c)
	}

	if _, err := ParseHexColor("#12345"); err == nil {
		t.Error("expected error for short color")
	}
	if _, err := ParseHexColor("#zzzzzz"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestResolve(t *testing.T) {
	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\") error: %v", err)
	}
	if cfg.Pipes.Gap != 180 {
		t.Errorf("expected default gap, got %v", cfg.Pipes.Gap)
	}

	path := filepath.Join(t.TempDir(), "custom.yml")
	if err := os.WriteFile(path, []byte("pipes:\n  gap: 150\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err = Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(path) error: %v", err)
	}
	if cfg.Pipes.Gap != 150 {
		t.Errorf("expected gap 150, got %v", cfg.Pipes.Gap)
	}
}
