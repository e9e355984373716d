package ringmenu

import (
	"fmt"
	"math"
)

// 默认参数，与原始环形菜单组件一致
const (
	DefaultRadius            = 50.0
	DefaultOpenCloseDuration = 0.5
	DefaultSpins             = 2
	DefaultSelectDuration    = 0.25
)

// Geometry 环形菜单的不可变配置
// 槽位数量 N 由图标列表长度决定，不在此处配置
type Geometry struct {
	AngleOffset       float64 // 槽位 0 的角度（弧度）
	Radius            float64 // 展开后的半径
	OpenCloseDuration float64 // 开合动画时长（秒）
	Spins             int     // 开合过程中旋转的整圈数
	SelectDuration    float64 // 选择框移动时长（秒）
}

// DefaultGeometry 返回默认几何配置
func DefaultGeometry() Geometry {
	return Geometry{
		AngleOffset:       DefaultAngleOffset,
		Radius:            DefaultRadius,
		OpenCloseDuration: DefaultOpenCloseDuration,
		Spins:             DefaultSpins,
		SelectDuration:    DefaultSelectDuration,
	}
}

// Validate 检查半径和时长为有限正数、圈数非负
func (g Geometry) Validate() error {
	if !positiveFinite(g.Radius) {
		return fmt.Errorf("radius %v must be positive and finite: %w", g.Radius, ErrInvalidConfiguration)
	}
	if !positiveFinite(g.OpenCloseDuration) {
		return fmt.Errorf("open/close duration %v must be positive and finite: %w", g.OpenCloseDuration, ErrInvalidConfiguration)
	}
	if !positiveFinite(g.SelectDuration) {
		return fmt.Errorf("select duration %v must be positive and finite: %w", g.SelectDuration, ErrInvalidConfiguration)
	}
	if g.Spins < 0 {
		return fmt.Errorf("spin count %d must not be negative: %w", g.Spins, ErrInvalidConfiguration)
	}
	return nil
}

// positiveFinite NaN 和 ±Inf 返回 false
func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
