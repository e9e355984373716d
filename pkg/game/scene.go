package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个游戏场景（例如环形菜单演示场景）
// 每个场景拥有自己的更新和渲染逻辑
type Scene interface {
	// Update 按经过的时间（秒）更新场景逻辑
	// 返回非 nil 错误时游戏循环终止
	Update(deltaTime float64) error

	// Draw 将场景渲染到 screen
	Draw(screen *ebiten.Image)
}
