package entities

import (
	"fmt"

	"github.com/decker502/ringmenu/pkg/components"
	"github.com/decker502/ringmenu/pkg/config"
	"github.com/decker502/ringmenu/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RingResourceLoader 环形菜单实体需要的图像资源
// game.ResourceManager 实现此接口，测试中可替换为简单实现
type RingResourceLoader interface {
	IconImage(icon config.IconConfig, size float64) (*ebiten.Image, error)
	SlotFrameImage(size float64) *ebiten.Image
	SelectorImage(size float64) *ebiten.Image
}

// NewRingAnchorEntity 创建环形菜单锚点实体
func NewRingAnchorEntity(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RingAnchorComponent{X: x, Y: y})
	return id
}

// NewRingSlotEntity 创建槽位实体
//
// 槽位由底框和物品图标两层组成，初始位于锚点且不可见。
//
// 返回:
//   - ecs.EntityID: 槽位实体ID
//   - *ebiten.Image: 槽位的图标（作为控制器的图标句柄）
//   - error: 图标加载失败时返回
func NewRingSlotEntity(em *ecs.EntityManager, rl RingResourceLoader, anchor ecs.EntityID, index int, icon config.IconConfig, size float64) (ecs.EntityID, *ebiten.Image, error) {
	iconImage, err := rl.IconImage(icon, size)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to load icon for slot %d: %w", index, err)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RingSlotComponent{Index: index, Name: icon.Name})
	ecs.AddComponent(em, id, newCollapsedPosition(em, anchor))
	ecs.AddComponent(em, id, &components.VisibilityComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Layers: []*ebiten.Image{rl.SlotFrameImage(size), iconImage},
	})
	return id, iconImage, nil
}

// NewRingSelectorEntity 创建选择框实体
// 应在所有槽位之后创建，使其绘制在最上层
func NewRingSelectorEntity(em *ecs.EntityManager, rl RingResourceLoader, anchor ecs.EntityID, size float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RingSelectorComponent{})
	ecs.AddComponent(em, id, newCollapsedPosition(em, anchor))
	ecs.AddComponent(em, id, &components.VisibilityComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Layers: []*ebiten.Image{rl.SelectorImage(size)},
	})
	return id
}

// NewHeldItemEntity 创建手持物品显示实体
func NewHeldItemEntity(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.HeldItemComponent{Index: -1})
	return id
}

func newCollapsedPosition(em *ecs.EntityManager, anchor ecs.EntityID) *components.PositionComponent {
	pos := &components.PositionComponent{}
	if a, ok := ecs.GetComponent[*components.RingAnchorComponent](em, anchor); ok {
		pos.X, pos.Y = a.X, a.Y
	}
	return pos
}
