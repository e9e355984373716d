package systems

import (
	"github.com/decker502/ringmenu/pkg/components"
	"github.com/decker502/ringmenu/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RingMenuRenderSystem 环形菜单渲染系统
// 绘制所有带 SpriteComponent 的可见槽位和选择框
//
// 绘制顺序按实体 ID，选择框最后创建，因此总在槽位之上。
type RingMenuRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRingMenuRenderSystem 创建渲染系统
func NewRingMenuRenderSystem(em *ecs.EntityManager) *RingMenuRenderSystem {
	return &RingMenuRenderSystem{entityManager: em}
}

// Draw 渲染所有可见的环形菜单实体
func (s *RingMenuRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[*components.PositionComponent, *components.SpriteComponent, *components.VisibilityComponent](s.entityManager)
	for _, id := range entities {
		vis, _ := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id)
		if !vis.Visible || vis.Alpha <= 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		for _, layer := range sprite.Layers {
			if layer == nil {
				continue
			}
			screen.DrawImage(layer, centeredDrawOptions(layer, pos.X, pos.Y, vis.Alpha))
		}
	}
}

// centeredDrawOptions 以 (x, y) 为中心绘制图像，并应用透明度
func centeredDrawOptions(img *ebiten.Image, x, y, alpha float64) *ebiten.DrawImageOptions {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	return op
}
