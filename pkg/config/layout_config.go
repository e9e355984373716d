package config

// 布局配置常量
// 本文件定义了演示窗口和 HUD 的布局参数

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Ring Menu"

	// GameTPS 逻辑帧率，每帧的 deltaTime 为 1/GameTPS
	GameTPS = 60
)

// HUD Configuration (HUD 布局)
const (
	// HUDMarginX HUD 文字左边距
	HUDMarginX = 16.0

	// HUDMarginY HUD 文字上边距
	HUDMarginY = 16.0

	// HeldItemMargin 手持物品框中心到屏幕左下角的距离
	HeldItemMargin = 60.0
)

// HeldItemPosition 手持物品框中心的屏幕坐标（左下角）
func HeldItemPosition() (x, y float64) {
	return HeldItemMargin, float64(GameWindowHeight) - HeldItemMargin
}
