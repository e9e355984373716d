package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/ringmenu/pkg/app"
	"github.com/decker502/ringmenu/pkg/config"
	"github.com/decker502/ringmenu/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试日志")
	configPath = flag.String("config", "", "环形菜单配置文件路径（默认使用内嵌的 "+config.DefaultRingMenuConfigPath+"）")
	mute       = flag.Bool("mute", false, "禁用音效")
	debug      = flag.Bool("debug", false, "在 HUD 中显示菜单状态")
	pickConfig = flag.Bool("pick-config", false, "启动时弹出文件对话框选择配置文件")
)

// selectConfigFile 弹出文件对话框选择环形菜单配置
// 用户取消时返回空字符串，使用内嵌配置
func selectConfigFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Ring Menu Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func main() {
	flag.Parse()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	path := *configPath
	if *pickConfig && path == "" {
		picked, err := selectConfigFile()
		if err != nil {
			log.Fatalf("配置文件选择失败: %v", err)
		}
		path = picked
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: path,
		Mute:       *mute,
		Debug:      *debug,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetTPS(config.GameTPS)
	ebiten.SetFullscreen(gameApp.StartFullscreen())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
