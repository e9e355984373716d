package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/ringmenu/pkg/components"
	"github.com/decker502/ringmenu/pkg/ecs"
	"github.com/decker502/ringmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudLineHeight  = 16.0
	heldItemBoxLen = 48.0
)

// HUDRenderSystem 绘制手持物品和调试文字
type HUDRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(em *ecs.EntityManager, face text.Face) *HUDRenderSystem {
	return &HUDRenderSystem{entityManager: em, face: face}
}

// DrawText 从 (x, y) 开始逐行绘制文字
func (s *HUDRenderSystem) DrawText(screen *ebiten.Image, x, y float64, lines []string) {
	if s.face == nil {
		return
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*hudLineHeight)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, s.face, op)
	}
}

// DrawHeldItems 绘制所有手持物品框
// 使用物品后边框短暂闪烁
func (s *HUDRenderSystem) DrawHeldItems(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.HeldItemComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		held, _ := ecs.GetComponent[*components.HeldItemComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := float32(pos.X-heldItemBoxLen/2), float32(pos.Y-heldItemBoxLen/2)
		vector.DrawFilledRect(screen, x, y, heldItemBoxLen, heldItemBoxLen, color.NRGBA{R: 30, G: 30, B: 40, A: 220}, false)
		border := flashBorderColor(held.UseFlash)
		vector.StrokeRect(screen, x, y, heldItemBoxLen, heldItemBoxLen, 2, border, false)

		if held.Icon != nil {
			screen.DrawImage(held.Icon, centeredDrawOptions(held.Icon, pos.X, pos.Y, 1))
		}
		s.DrawText(screen, pos.X-heldItemBoxLen/2, pos.Y+heldItemBoxLen/2+4, []string{heldItemLabel(held)})
	}
}

var (
	borderColor      = color.NRGBA{R: 160, G: 160, B: 170, A: 255}
	borderFlashColor = color.NRGBA{R: 255, G: 230, B: 90, A: 255}
)

// flashBorderColor 闪烁剩余时间越多越接近高亮色
func flashBorderColor(remaining float64) color.NRGBA {
	t := utils.EaseOutQuad(utils.Clamp01(remaining / components.HeldItemFlashDuration))
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(utils.Lerp(float64(a), float64(b), t)))
	}
	return color.NRGBA{
		R: mix(borderColor.R, borderFlashColor.R),
		G: mix(borderColor.G, borderFlashColor.G),
		B: mix(borderColor.B, borderFlashColor.B),
		A: 255,
	}
}

// heldItemLabel 手持物品的文字说明
func heldItemLabel(held *components.HeldItemComponent) string {
	if held.Index < 0 {
		return "Held: -"
	}
	return fmt.Sprintf("Held: %s #%d (used %d)", held.Name, held.Index, held.UseCount)
}
