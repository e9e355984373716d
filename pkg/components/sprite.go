package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
// Layers 按顺序叠加绘制，所有图层以中心对齐到实体位置
// 例如槽位由底框和物品图标两层组成
type SpriteComponent struct {
	Layers []*ebiten.Image
}
