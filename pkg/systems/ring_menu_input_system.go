package systems

import (
	"github.com/decker502/ringmenu/pkg/ringmenu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBinding 按键到环形菜单输入事件的映射
type KeyBinding struct {
	Key   ebiten.Key
	Event ringmenu.InputEvent
}

// DefaultKeyBindings 固定按键：Tab 开合，Q/E 上一个/下一个，F 使用物品
var DefaultKeyBindings = []KeyBinding{
	{Key: ebiten.KeyTab, Event: ringmenu.InputToggle},
	{Key: ebiten.KeyQ, Event: ringmenu.InputPrevious},
	{Key: ebiten.KeyE, Event: ringmenu.InputNext},
	{Key: ebiten.KeyF, Event: ringmenu.InputUseItem},
}

// RingMenuInputSystem 每帧采集边沿触发的按键，转换为输入事件
// 按住不放不会重复产生事件
type RingMenuInputSystem struct {
	bindings      []KeyBinding
	isJustPressed func(ebiten.Key) bool
	events        []ringmenu.InputEvent
}

// NewRingMenuInputSystem 创建输入系统，使用 inpututil 检测按键按下
func NewRingMenuInputSystem(bindings []KeyBinding) *RingMenuInputSystem {
	return &RingMenuInputSystem{
		bindings:      bindings,
		isJustPressed: inpututil.IsKeyJustPressed,
	}
}

// Poll 返回本帧的输入事件，顺序与绑定顺序一致
// 返回的切片在下次 Poll 前有效
func (s *RingMenuInputSystem) Poll() []ringmenu.InputEvent {
	s.events = s.events[:0]
	for _, b := range s.bindings {
		if s.isJustPressed(b.Key) {
			s.events = append(s.events, b.Event)
		}
	}
	return s.events
}
