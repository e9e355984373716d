package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/ringmenu/pkg/config"
	"github.com/decker502/ringmenu/pkg/ecs"
	"github.com/decker502/ringmenu/pkg/game"
	"github.com/decker502/ringmenu/pkg/modules"
	"github.com/decker502/ringmenu/pkg/ringmenu"
	"github.com/decker502/ringmenu/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

var backgroundColor = color.RGBA{R: 40, G: 44, B: 52, A: 255}

// RingMenuScene 环形菜单演示场景
// Tab 开合菜单，Q/E 切换选中，菜单收起后 F 使用手持物品
type RingMenuScene struct {
	entityManager *ecs.EntityManager

	ringMenu       *modules.RingMenuModule
	heldItem       *modules.HeldItem
	inputSystem    *systems.RingMenuInputSystem
	heldItemSystem *systems.HeldItemSystem
	hudSystem      *systems.HUDRenderSystem

	showDebug bool
}

// NewRingMenuScene 创建演示场景
//
// 参数:
//   - rm: 资源管理器
//   - am: 音频管理器，可为 nil（静音）
//   - cfg: 环形菜单配置
//   - showDebug: 是否显示调试信息
func NewRingMenuScene(rm *game.ResourceManager, am *game.AudioManager, cfg *config.RingMenuConfig, showDebug bool) (*RingMenuScene, error) {
	em := ecs.NewEntityManager()

	var sounds modules.SoundPlayer
	if am != nil {
		sounds = am
	}

	ringMenu, err := modules.NewRingMenuModule(em, rm, cfg, sounds, modules.RingMenuCallbacks{
		OnSelectionChanged: func(index int) {
			log.Printf("[RingMenuScene] Selection committed: %d", index)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ring menu scene: %w", err)
	}

	s := &RingMenuScene{
		entityManager:  em,
		ringMenu:       ringMenu,
		inputSystem:    systems.NewRingMenuInputSystem(systems.DefaultKeyBindings),
		heldItemSystem: systems.NewHeldItemSystem(em),
		hudSystem:      systems.NewHUDRenderSystem(em, rm.DebugFace()),
		showDebug:      showDebug,
	}
	heldX, heldY := config.HeldItemPosition()
	s.heldItem = modules.NewHeldItem(em, heldX, heldY, ringMenu.Controller(), ringMenu, sounds)

	log.Printf("[RingMenuScene] Created with %d items", len(cfg.Icons))
	return s, nil
}

// Update 更新场景
// 手持物品先于菜单处理输入，看到的是本帧开始时的菜单状态
func (s *RingMenuScene) Update(deltaTime float64) error {
	return s.step(s.inputSystem.Poll(), deltaTime)
}

func (s *RingMenuScene) step(events []ringmenu.InputEvent, deltaTime float64) error {
	s.heldItem.HandleInput(events)
	if err := s.ringMenu.Update(events, deltaTime); err != nil {
		return err
	}
	s.heldItemSystem.Update(deltaTime)
	return nil
}

// Draw 渲染场景
func (s *RingMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.ringMenu.Draw(screen)
	s.hudSystem.DrawHeldItems(screen)
	s.hudSystem.DrawText(screen, config.HUDMarginX, config.HUDMarginY, s.hudLines())
}

// hudLines HUD 文字：按键说明和（可选）调试信息
func (s *RingMenuScene) hudLines() []string {
	lines := []string{"[Tab] open/close  [Q]/[E] previous/next  [F] use item"}
	if !s.showDebug {
		return lines
	}
	c := s.ringMenu.Controller()
	f := c.Frame()
	return append(lines,
		fmt.Sprintf("state=%s moving=%v selection=%d", c.State(), c.IsSelectorMoving(), c.CurrentSelection()),
		fmt.Sprintf("radius=%.1f rotation=%.2f alpha=%.2f selector=%.2f", f.Radius, f.Rotation, f.Alpha, f.SelectorIndex),
	)
}

// Controller 返回环形菜单控制器
func (s *RingMenuScene) Controller() *ringmenu.Controller {
	return s.ringMenu.Controller()
}

// HeldItem 返回手持物品
func (s *RingMenuScene) HeldItem() *modules.HeldItem {
	return s.heldItem
}
