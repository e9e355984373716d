package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return m
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.SoundVolume != 0.8 || !s.SoundEnabled || s.Fullscreen {
		t.Errorf("DefaultSettings() = %+v", s)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.Settings().SoundVolume != 0.8 {
		t.Errorf("SoundVolume = %v, want 0.8", sm.Settings().SoundVolume)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	sm.SetSoundVolume(0.3)
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.Settings().SoundVolume != 0.8 {
		t.Errorf("After Load() in degraded mode, SoundVolume = %v, want 0.8", sm.Settings().SoundVolume)
	}
}

// TestSettingsLoadSave 测试保存后重新加载
func TestSettingsLoadSave(t *testing.T) {
	storage := openTestStorage(t, "ringmenu_test_settings")

	sm1 := NewSettingsManager(storage)
	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(storage)
	got := sm2.Settings()
	if got.SoundVolume != 0.6 || got.SoundEnabled || !got.Fullscreen {
		t.Errorf("reloaded settings = %+v", got)
	}
}

// TestSetSoundVolumeClamp 测试音量范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"正常值", 0.5, 0.5},
		{"下限", 0.0, 0.0},
		{"上限", 1.0, 1.0},
		{"低于下限", -0.5, 0.0},
		{"高于上限", 1.5, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetSoundVolume(tt.input)
			if sm.Settings().SoundVolume != tt.expected {
				t.Errorf("SetSoundVolume(%v) = %v, want %v", tt.input, sm.Settings().SoundVolume, tt.expected)
			}
		})
	}
}

// TestEffectiveVolume 测试音效开关对实际音量的影响
func TestEffectiveVolume(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundVolume(0.4)
	if v := sm.EffectiveVolume(); v != 0.4 {
		t.Errorf("EffectiveVolume() = %v, want 0.4", v)
	}
	sm.SetSoundEnabled(false)
	if v := sm.EffectiveVolume(); v != 0 {
		t.Errorf("EffectiveVolume() with sound disabled = %v, want 0", v)
	}
}
