package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/ringmenu/pkg/ringmenu"
	"gopkg.in/yaml.v3"
)

// DefaultRingMenuConfigPath 内嵌默认配置的路径
const DefaultRingMenuConfigPath = "data/ring_menu.yaml"

// AnchorConfig 环形菜单锚点（屏幕坐标）
type AnchorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// IconConfig 单个槽位图标的配置
//
// Image 为空时使用 Color 生成纯色圆形图标。
type IconConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // "#RRGGBB" 或 "#RRGGBBAA"
	Image string `yaml:"image"` // 可选：图标图片文件路径
}

// RingMenuConfig 环形菜单配置
// 字段默认值与原始组件保持一致（距离 50、开合 0.5 秒、2 圈、选择 0.25 秒）
type RingMenuConfig struct {
	Anchor             AnchorConfig `yaml:"anchor"`
	Radius             float64      `yaml:"radius"`
	AngleOffsetDegrees float64      `yaml:"angleOffsetDegrees"`
	OpenCloseTime      float64      `yaml:"openCloseTime"`
	OpenCloseSpins     int          `yaml:"openCloseSpins"`
	SelectTime         float64      `yaml:"selectTime"`
	SlotSize           float64      `yaml:"slotSize"`     // 槽位图标边长（像素）
	SelectorSize       float64      `yaml:"selectorSize"` // 选择框边长（像素）
	Icons              []IconConfig `yaml:"icons"`
}

// DefaultRingMenuConfig 返回默认配置（不含图标）
func DefaultRingMenuConfig() *RingMenuConfig {
	return &RingMenuConfig{
		Anchor:             AnchorConfig{X: 400, Y: 300},
		Radius:             ringmenu.DefaultRadius,
		AngleOffsetDegrees: 90,
		OpenCloseTime:      ringmenu.DefaultOpenCloseDuration,
		OpenCloseSpins:     ringmenu.DefaultSpins,
		SelectTime:         ringmenu.DefaultSelectDuration,
		SlotSize:           28,
		SelectorSize:       36,
	}
}

// ParseRingMenuConfig 解析 YAML 数据
// 未出现在 YAML 中的字段保留默认值
func ParseRingMenuConfig(data []byte) (*RingMenuConfig, error) {
	cfg := DefaultRingMenuConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ring menu YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadRingMenuConfig 从文件系统加载配置
func LoadRingMenuConfig(path string) (*RingMenuConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ring menu config %s: %w", path, err)
	}
	cfg, err := ParseRingMenuConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid ring menu config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置
//
// 几何参数的校验委托给 ringmenu.Geometry.Validate，
// 错误均包装 ringmenu.ErrInvalidConfiguration。
func (c *RingMenuConfig) Validate() error {
	if len(c.Icons) == 0 {
		return fmt.Errorf("no icons configured: %w", ringmenu.ErrInvalidConfiguration)
	}
	if err := c.ToGeometry().Validate(); err != nil {
		return err
	}
	if !validSize(c.SlotSize) || !validSize(c.SelectorSize) {
		return fmt.Errorf("slot size %v / selector size %v must be positive and finite: %w",
			c.SlotSize, c.SelectorSize, ringmenu.ErrInvalidConfiguration)
	}
	for i, icon := range c.Icons {
		if icon.Image != "" {
			continue
		}
		if _, err := ParseHexColor(icon.Color); err != nil {
			return fmt.Errorf("icon %d (%s): %w", i, icon.Name, err)
		}
	}
	return nil
}

func validSize(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// ToGeometry 转换为控制器使用的几何配置
func (c *RingMenuConfig) ToGeometry() ringmenu.Geometry {
	return ringmenu.Geometry{
		AngleOffset:       c.AngleOffsetDegrees * math.Pi / 180,
		Radius:            c.Radius,
		OpenCloseDuration: c.OpenCloseTime,
		Spins:             c.OpenCloseSpins,
		SelectDuration:    c.SelectTime,
	}
}

// ParseHexColor 解析 "#RRGGBB" / "#RRGGBBAA" 颜色
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA: %w", s, ringmenu.ErrInvalidConfiguration)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %v: %w", s, err, ringmenu.ErrInvalidConfiguration)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
