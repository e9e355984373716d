package main

import (
	"math"
	"strings"
	"unicode"

	"github.com/decker502/ringmenu/pkg/config"
	"github.com/decker502/ringmenu/pkg/ringmenu"
	"github.com/gdamore/tcell/v2"
)

// cellAspect 终端字符格的高宽比，横向坐标乘以它让圆看起来是圆的
const cellAspect = 2.0

// cellVisual 字符格上的视觉句柄，实现 ringmenu.Visual
type cellVisual struct {
	x, y    float64
	alpha   float64
	visible bool
}

func (v *cellVisual) SetPosition(x, y float64) { v.x, v.y = x, y }
func (v *cellVisual) SetAlpha(alpha float64)   { v.alpha = alpha }
func (v *cellVisual) SetVisible(visible bool)  { v.visible = visible }

// cell 以 (cx, cy) 为锚点，把 Y 轴向上的数学坐标转换为字符格坐标
func (v *cellVisual) cell(cx, cy int) (int, int) {
	return cx + int(math.Round(v.x*cellAspect)), cy - int(math.Round(v.y))
}

// alphaStyle 终端没有透明度，用暗淡/正常/加粗三档近似
func alphaStyle(base tcell.Style, alpha float64) tcell.Style {
	switch {
	case alpha < 1.0/3:
		return base.Dim(true)
	case alpha < 2.0/3:
		return base
	}
	return base.Bold(true)
}

// iconRune 图标名的首字母（大写），名称为空时用 '*'
func iconRune(name string) rune {
	for _, r := range strings.TrimSpace(name) {
		return unicode.ToUpper(r)
	}
	return '*'
}

// iconStyle 按配置颜色设置前景色，颜色非法时使用默认样式
func iconStyle(icon config.IconConfig) tcell.Style {
	clr, err := config.ParseHexColor(icon.Color)
	if err != nil {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
}

// keyEvent 把按键映射为环形菜单输入，与桌面版的 Tab/Q/E/F 保持一致
func keyEvent(ev *tcell.EventKey) (ringmenu.InputEvent, bool) {
	if ev.Key() == tcell.KeyTab {
		return ringmenu.InputToggle, true
	}
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	switch unicode.ToLower(ev.Rune()) {
	case 'q':
		return ringmenu.InputPrevious, true
	case 'e':
		return ringmenu.InputNext, true
	case 'f':
		return ringmenu.InputUseItem, true
	}
	return 0, false
}

// isQuit Esc 或 Ctrl-C 退出
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
