package config

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/ringmenu/pkg/ringmenu"
)

func TestParseRingMenuConfig(t *testing.T) {
	t.Run("解析完整配置", func(t *testing.T) {
		data := []byte(`
anchor: {x: 120, y: 80}
radius: 64
angleOffsetDegrees: 0
openCloseTime: 0.4
openCloseSpins: 3
selectTime: 0.2
slotSize: 20
selectorSize: 30
icons:
  - name: sword
    color: "#d04040"
  - name: potion
    color: "#40d040"
`)
		cfg, err := ParseRingMenuConfig(data)
		if err != nil {
			t.Fatalf("ParseRingMenuConfig failed: %v", err)
		}
		if cfg.Anchor.X != 120 || cfg.Anchor.Y != 80 {
			t.Errorf("anchor = %+v, want (120, 80)", cfg.Anchor)
		}
		if len(cfg.Icons) != 2 || cfg.Icons[1].Name != "potion" {
			t.Errorf("icons = %+v", cfg.Icons)
		}

		g := cfg.ToGeometry()
		if g.Radius != 64 || g.Spins != 3 || g.OpenCloseDuration != 0.4 || g.SelectDuration != 0.2 {
			t.Errorf("geometry = %+v", g)
		}
		if g.AngleOffset != 0 {
			t.Errorf("AngleOffset = %v, want 0", g.AngleOffset)
		}
	})

	t.Run("缺省字段使用默认值", func(t *testing.T) {
		cfg, err := ParseRingMenuConfig([]byte("icons:\n  - name: a\n    color: \"#ffffff\"\n"))
		if err != nil {
			t.Fatalf("ParseRingMenuConfig failed: %v", err)
		}
		g := cfg.ToGeometry()
		if g.Radius != ringmenu.DefaultRadius || g.Spins != ringmenu.DefaultSpins ||
			g.OpenCloseDuration != ringmenu.DefaultOpenCloseDuration || g.SelectDuration != ringmenu.DefaultSelectDuration {
			t.Errorf("geometry = %+v, want defaults", g)
		}
		if math.Abs(g.AngleOffset-ringmenu.DefaultAngleOffset) > 1e-12 {
			t.Errorf("AngleOffset = %v, want %v", g.AngleOffset, ringmenu.DefaultAngleOffset)
		}
	})

	t.Run("语法错误", func(t *testing.T) {
		if _, err := ParseRingMenuConfig([]byte("icons: [")); err == nil {
			t.Error("expected YAML error")
		}
	})
}

func TestRingMenuConfig_Validate(t *testing.T) {
	base := func() *RingMenuConfig {
		cfg := DefaultRingMenuConfig()
		cfg.Icons = []IconConfig{{Name: "a", Color: "#112233"}}
		return cfg
	}

	tests := []struct {
		name   string
		modify func(*RingMenuConfig)
	}{
		{"没有图标", func(c *RingMenuConfig) { c.Icons = nil }},
		{"半径为0", func(c *RingMenuConfig) { c.Radius = 0 }},
		{"开合时长为负", func(c *RingMenuConfig) { c.OpenCloseTime = -0.5 }},
		{"选择时长为0", func(c *RingMenuConfig) { c.SelectTime = 0 }},
		{"圈数为负", func(c *RingMenuConfig) { c.OpenCloseSpins = -1 }},
		{"槽位尺寸为0", func(c *RingMenuConfig) { c.SlotSize = 0 }},
		{"槽位尺寸为NaN", func(c *RingMenuConfig) { c.SlotSize = math.NaN() }},
		{"选择框尺寸为+Inf", func(c *RingMenuConfig) { c.SelectorSize = math.Inf(1) }},
		{"半径为NaN", func(c *RingMenuConfig) { c.Radius = math.NaN() }},
		{"开合时长为+Inf", func(c *RingMenuConfig) { c.OpenCloseTime = math.Inf(1) }},
		{"颜色格式错误", func(c *RingMenuConfig) { c.Icons[0].Color = "red" }},
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("base config invalid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ringmenu.ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, want ErrInvalidConfiguration", err)
			}
		})
	}

	t.Run("YAML中的.nan和.inf被拒绝", func(t *testing.T) {
		for _, doc := range []string{
			"openCloseTime: .nan\nicons: [{name: a, color: \"#112233\"}]\n",
			"selectTime: .inf\nicons: [{name: a, color: \"#112233\"}]\n",
			"radius: .nan\nicons: [{name: a, color: \"#112233\"}]\n",
		} {
			if _, err := ParseRingMenuConfig([]byte(doc)); !errors.Is(err, ringmenu.ErrInvalidConfiguration) {
				t.Errorf("ParseRingMenuConfig(%q) = %v, want ErrInvalidConfiguration", doc, err)
			}
		}
	})

	t.Run("图片图标不校验颜色", func(t *testing.T) {
		cfg := base()
		cfg.Icons[0] = IconConfig{Name: "img", Image: "icon.png"}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestLoadRingMenuConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("加载文件", func(t *testing.T) {
		path := filepath.Join(tempDir, "ring.yaml")
		content := "radius: 80\nicons:\n  - name: a\n    color: \"#ff0000\"\n  - name: b\n    color: \"#00ff00\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		cfg, err := LoadRingMenuConfig(path)
		if err != nil {
			t.Fatalf("LoadRingMenuConfig failed: %v", err)
		}
		if cfg.Radius != 80 || len(cfg.Icons) != 2 {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := LoadRingMenuConfig(filepath.Join(tempDir, "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("内容非法", func(t *testing.T) {
		path := filepath.Join(tempDir, "empty.yaml")
		if err := os.WriteFile(path, []byte("radius: 10\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		_, err := LoadRingMenuConfig(path)
		if !errors.Is(err, ringmenu.ErrInvalidConfiguration) {
			t.Errorf("error = %v, want ErrInvalidConfiguration", err)
		}
	})
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff8000", color.NRGBA{R: 255, G: 128, B: 0, A: 255}, false},
		{"#10203040", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"00ff00", color.NRGBA{G: 255, A: 255}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
