package components

// VisibilityComponent 实体的可见性和透明度
// 由环形菜单控制器通过视觉句柄写入，渲染系统只读
type VisibilityComponent struct {
	Visible bool
	Alpha   float64 // 0.0 ~ 1.0
}

// RingSlotComponent 标记环形菜单的槽位实体
type RingSlotComponent struct {
	Index int    // 槽位索引 [0, N)
	Name  string // 图标名称（来自配置）
}

// RingSelectorComponent 标记环形菜单的选择框实体
type RingSelectorComponent struct{}

// RingAnchorComponent 环形菜单锚点
// 槽位和选择框的位置都相对于锚点计算
type RingAnchorComponent struct {
	X float64
	Y float64
}
