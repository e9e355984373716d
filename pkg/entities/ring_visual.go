package entities

import (
	"github.com/decker502/ringmenu/pkg/components"
	"github.com/decker502/ringmenu/pkg/ecs"
	"github.com/decker502/ringmenu/pkg/ringmenu"
)

// RingVisual 基于 ECS 实体的视觉句柄，实现 ringmenu.Visual
//
// 控制器给出的坐标是以锚点为原点、Y 轴向上的数学坐标，
// 这里转换为 Y 轴向下的屏幕坐标写入 PositionComponent。
type RingVisual struct {
	em     *ecs.EntityManager
	entity ecs.EntityID
	anchor ecs.EntityID
}

var _ ringmenu.Visual = (*RingVisual)(nil)

// NewRingVisual 为实体创建视觉句柄
func NewRingVisual(em *ecs.EntityManager, entity, anchor ecs.EntityID) *RingVisual {
	return &RingVisual{em: em, entity: entity, anchor: anchor}
}

// Entity 返回句柄绑定的实体
func (v *RingVisual) Entity() ecs.EntityID {
	return v.entity
}

// SetPosition 设置相对锚点的位置
func (v *RingVisual) SetPosition(x, y float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](v.em, v.entity)
	if !ok {
		return
	}
	var ax, ay float64
	if anchor, ok := ecs.GetComponent[*components.RingAnchorComponent](v.em, v.anchor); ok {
		ax, ay = anchor.X, anchor.Y
	}
	pos.X = ax + x
	pos.Y = ay - y
}

// SetAlpha 设置透明度
func (v *RingVisual) SetAlpha(alpha float64) {
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](v.em, v.entity); ok {
		vis.Alpha = alpha
	}
}

// SetVisible 设置可见性
func (v *RingVisual) SetVisible(visible bool) {
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](v.em, v.entity); ok {
		vis.Visible = visible
	}
}
