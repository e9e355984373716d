package ringmenu

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/ringmenu/pkg/utils"
)

// DefaultAngleOffset 槽位 0 的默认朝向（弧度），即正上方
const DefaultAngleOffset = math.Pi / 2

// Layout 环形菜单的纯几何计算
//
// 坐标系为标准数学坐标（逆时针为正）：
//   - 槽位 0 位于 AngleOffset 方向
//   - 索引递增时角度递减，AngleOffset = 90° 时从顶部开始顺时针排列
//
// Layout 是值类型，不持有任何可变状态。
type Layout struct {
	Count       int     // 槽位数量 N
	AngleOffset float64 // 槽位 0 的角度（弧度）
	AngleStep   float64 // 相邻槽位的角度差 2π/N
}

// NewLayout 创建环形布局
//
// count 必须 >= 1，否则返回 ErrInvalidConfiguration。
func NewLayout(count int, angleOffset float64) (Layout, error) {
	if count < 1 {
		return Layout{}, fmt.Errorf("slot count %d: %w", count, ErrInvalidConfiguration)
	}
	return Layout{
		Count:       count,
		AngleOffset: angleOffset,
		AngleStep:   2 * math.Pi / float64(count),
	}, nil
}

// Angle 返回（可为小数的）索引对应的角度
func (l Layout) Angle(index, rotationOffset float64) float64 {
	return l.AngleOffset - l.AngleStep*index + rotationOffset
}

// PositionAt 计算小数索引在给定旋转偏移和半径下的位置
// 选择框移动动画使用小数索引沿圆弧插值
func (l Layout) PositionAt(index, rotationOffset, radius float64) (x, y float64) {
	angle := l.Angle(index, rotationOffset)
	return math.Cos(angle) * radius, math.Sin(angle) * radius
}

// SlotPosition 计算槽位相对锚点的位置
func (l Layout) SlotPosition(index int, rotationOffset, radius float64) (x, y float64) {
	return l.PositionAt(float64(index), rotationOffset, radius)
}

// SelectorPosition 计算选择框相对锚点的位置
func (l Layout) SelectorPosition(selectedIndex int, rotationOffset, radius float64) (x, y float64) {
	return l.PositionAt(float64(selectedIndex), rotationOffset, radius)
}

// SlotAlpha 将淡入淡出进度限制到 [0, 1]
func (l Layout) SlotAlpha(fade float64) float64 {
	return utils.Clamp01(fade)
}

// SlotColor 返回带透明度的白色，统一作用于所有槽位和选择框
func (l Layout) SlotColor(fade float64) color.Color {
	a := l.SlotAlpha(fade)
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(a * 255))}
}
