package components

import "github.com/hajimehoshi/ebiten/v2"

// HeldItemFlashDuration 使用物品后边框闪烁时长（秒）
const HeldItemFlashDuration = 0.3

// HeldItemComponent 当前手持物品的显示状态
// 只在环形菜单提交选中项时更新
type HeldItemComponent struct {
	Index    int
	Name     string
	Icon     *ebiten.Image
	UseCount int     // 已使用次数
	UseFlash float64 // 使用后的闪烁剩余时间（秒）
}
