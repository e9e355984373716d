package systems

import (
	"github.com/decker502/ringmenu/pkg/components"
	"github.com/decker502/ringmenu/pkg/ecs"
)

// HeldItemSystem 推进手持物品的使用闪烁计时
type HeldItemSystem struct {
	entityManager *ecs.EntityManager
}

// NewHeldItemSystem 创建手持物品系统
func NewHeldItemSystem(em *ecs.EntityManager) *HeldItemSystem {
	return &HeldItemSystem{entityManager: em}
}

// Update 每帧递减闪烁剩余时间
func (s *HeldItemSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.HeldItemComponent](s.entityManager) {
		held, _ := ecs.GetComponent[*components.HeldItemComponent](s.entityManager, id)
		if held.UseFlash > 0 {
			held.UseFlash -= deltaTime
			if held.UseFlash < 0 {
				held.UseFlash = 0
			}
		}
	}
}
