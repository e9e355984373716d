// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/ringmenu/pkg/config"
	"github.com/decker502/ringmenu/pkg/embedded"
	"github.com/decker502/ringmenu/pkg/game"
	"github.com/decker502/ringmenu/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// settingsAppName gdata 存储使用的应用名
const settingsAppName = "ringmenu"

// volumeStep 每次按键调整的音量
const volumeStep = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 环形菜单配置文件路径，为空则使用内嵌的默认配置
	ConfigPath string
	// Mute 不创建音频上下文
	Mute bool
	// Debug 在 HUD 中显示控制器状态
	Debug bool
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// ConfigPath 为空时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	menuConfig, err := loadRingMenuConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	settingsManager := game.NewSettingsManager(game.OpenSettingsStorage(settingsAppName))

	var audioContext *audio.Context
	if !cfg.Mute {
		audioContext = audio.NewContext(game.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settingsManager.EffectiveVolume())
	log.Printf("[App] AudioManager initialized (mute=%v, volume=%.2f)", cfg.Mute, audioManager.Volume())

	resourceManager := game.NewResourceManager()
	scene, err := scenes.NewRingMenuScene(resourceManager, audioManager, menuConfig, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager:    sceneManager,
		audioManager:    audioManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadRingMenuConfig 从文件或内嵌资源加载环形菜单配置
func loadRingMenuConfig(path string) (*config.RingMenuConfig, error) {
	if path != "" {
		cfg, err := config.LoadRingMenuConfig(path)
		if err != nil {
			return nil, fmt.Errorf("环形菜单配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载环形菜单配置: %s", path)
		return cfg, nil
	}

	data, err := embedded.ReadFile(config.DefaultRingMenuConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内嵌环形菜单配置读取失败: %w", err)
	}
	cfg, err := config.ParseRingMenuConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内嵌环形菜单配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载内嵌环形菜单配置: %s (%d icons)", config.DefaultRingMenuConfigPath, len(cfg.Icons))
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settingsManager.SetSoundEnabled(!a.settingsManager.Settings().SoundEnabled)
		a.applySoundSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.settingsManager.SetSoundVolume(a.settingsManager.Settings().SoundVolume - volumeStep)
		a.applySoundSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.settingsManager.SetSoundVolume(a.settingsManager.Settings().SoundVolume + volumeStep)
		a.applySoundSettings()
	}

	return a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	a.saveSettings()
}

// applySoundSettings 同步音量到 AudioManager 并保存
func (a *App) applySoundSettings() {
	a.audioManager.SetVolume(a.settingsManager.EffectiveVolume())
	log.Printf("[App] Sound volume: %.2f", a.audioManager.Volume())
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// StartFullscreen 返回上次保存的全屏设置
func (a *App) StartFullscreen() bool {
	return a.settingsManager.Settings().Fullscreen
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
