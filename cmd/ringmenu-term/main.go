// ringmenu-term 在终端中运行环形菜单
//
// 与桌面版共用同一个控制器，只把视觉句柄换成字符格：
// Tab 开合，Q/E 切换选中，F 使用手持物品，Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/ringmenu/pkg/config"
	"github.com/decker502/ringmenu/pkg/ringmenu"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "", "环形菜单配置文件路径（为空使用内置图标）")
	radius     = flag.Float64("radius", 6, "环的半径（字符行数）")
	logPath    = flag.String("log", "", "日志输出文件（终端模式下不输出到屏幕）")
)

var defaultIcons = []config.IconConfig{
	{Name: "sword", Color: "#d04848"},
	{Name: "shield", Color: "#4878d0"},
	{Name: "potion", Color: "#48c060"},
	{Name: "bomb", Color: "#a0a0a0"},
	{Name: "key", Color: "#e0c040"},
	{Name: "lamp", Color: "#c08850"},
}

// frameInterval 约 60 FPS
const frameInterval = 16 * time.Millisecond

// termMenu 终端版环形菜单和手持物品
type termMenu struct {
	screen     tcell.Screen
	controller *ringmenu.Controller
	icons      []config.IconConfig
	slots      []*cellVisual
	selector   *cellVisual

	held     int
	useCount int
	status   string
}

func newTermMenu(screen tcell.Screen, cfg *config.RingMenuConfig) (*termMenu, error) {
	m := &termMenu{screen: screen, icons: cfg.Icons, selector: &cellVisual{}, held: -1}

	bindings := ringmenu.Bindings{Selector: m.selector}
	for _, icon := range cfg.Icons {
		v := &cellVisual{}
		m.slots = append(m.slots, v)
		bindings.Slots = append(bindings.Slots, v)
		bindings.Icons = append(bindings.Icons, iconRune(icon.Name))
	}

	controller, err := ringmenu.New(cfg.ToGeometry(), bindings, m.onSelected)
	if err != nil {
		return nil, fmt.Errorf("failed to create ring menu: %w", err)
	}
	m.controller = controller
	return m, nil
}

// onSelected 选中项提交时更新手持物品
func (m *termMenu) onSelected(index int) {
	m.held = index
	m.status = fmt.Sprintf("Selected %s", m.icons[index].Name)
	log.Printf("[RingMenuTerm] Selected Item: %d (%s)", index, m.icons[index].Name)
}

// update 手持物品先处理 UseItem，再驱动控制器
func (m *termMenu) update(events []ringmenu.InputEvent, dt float64) error {
	for _, ev := range events {
		if ev != ringmenu.InputUseItem {
			continue
		}
		if m.controller.IsClosed() && m.held >= 0 {
			m.useCount++
			m.status = fmt.Sprintf("Used %s", m.icons[m.held].Name)
			log.Printf("[RingMenuTerm] Using Item: %d", m.held)
		}
		break
	}
	return m.controller.Tick(events, dt)
}

func (m *termMenu) draw() {
	m.screen.Clear()
	w, h := m.screen.Size()
	cx, cy := w/2, h/2

	for i, v := range m.slots {
		if !v.visible {
			continue
		}
		x, y := v.cell(cx, cy)
		m.screen.SetContent(x, y, iconRune(m.icons[i].Name), nil, alphaStyle(iconStyle(m.icons[i]), v.alpha))
	}
	if m.selector.visible {
		x, y := m.selector.cell(cx, cy)
		style := alphaStyle(tcell.StyleDefault.Foreground(tcell.ColorYellow), m.selector.alpha)
		m.screen.SetContent(x-1, y, '[', nil, style)
		m.screen.SetContent(x+1, y, ']', nil, style)
	}

	heldName := "-"
	if m.held >= 0 {
		heldName = m.icons[m.held].Name
	}
	drawText(m.screen, 1, 0, "[Tab] open/close  [Q]/[E] previous/next  [F] use  [Esc] quit", tcell.StyleDefault)
	drawText(m.screen, 1, h-2, fmt.Sprintf("Held: %s (used %d)  state=%s", heldName, m.useCount, m.controller.State()), tcell.StyleDefault)
	drawText(m.screen, 1, h-1, m.status, tcell.StyleDefault.Dim(true))
	m.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// run 主循环：输入在 goroutine 中读取，逐帧汇总后交给控制器
func (m *termMenu) run() error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := m.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var pending []ringmenu.InputEvent
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if input, ok := keyEvent(ev); ok {
					pending = append(pending, input)
				}
			case *tcell.EventResize:
				m.screen.Sync()
			}

		case now := <-ticker.C:
			if err := m.update(pending, now.Sub(last).Seconds()); err != nil {
				return err
			}
			pending = pending[:0]
			last = now
			m.draw()
		}
	}
}

func loadConfig() (*config.RingMenuConfig, error) {
	cfg := config.DefaultRingMenuConfig()
	if *configPath != "" {
		loaded, err := config.LoadRingMenuConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg.Icons = defaultIcons
	}
	cfg.Radius = *radius
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}

	menu, err := newTermMenu(screen, cfg)
	if err == nil {
		err = menu.run()
	}
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ring menu: %v\n", err)
		os.Exit(1)
	}
}
