package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_flappy_settings")

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	sm.SetSoundVolume(0.25)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	settings := reloaded.GetSettings()
	if settings.SoundVolume != 0.25 {
		t.Errorf("SoundVolume: got %v, want 0.25", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("SoundEnabled should be false after reload")
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen should be true after reload")
	}
}

func TestSettingsPartialDataKeepsDefaults(t *testing.T) {
	gdataManager := openTestGdata(t, "test_flappy_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()
	if !settings.Fullscreen {
		t.Error("Fullscreen should be loaded")
	}
	if settings.SoundVolume != 0.8 || !settings.SoundEnabled {
		t.Errorf("missing fields should keep defaults, got %+v", settings)
	}
}

func TestSettingsCorruptDataFallsBack(t *testing.T) {
	gdataManager := openTestGdata(t, "test_flappy_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() should not fail on corrupt data: %v", err)
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("expected defaults, got %+v", sm.GetSettings())
	}
}

func TestSettingsNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail: %v", err)
	}
	if !sm.ToggleFullscreen() {
		t.Error("ToggleFullscreen should return true after first toggle")
	}
	if sm.ToggleFullscreen() {
		t.Error("ToggleFullscreen should return false after second toggle")
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
