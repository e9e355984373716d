package systems

import (
	"testing"

	"github.com/decker502/ringmenu/pkg/ringmenu"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestRingMenuInputSystem_Poll(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    []ringmenu.InputEvent
	}{
		{"无按键", nil, nil},
		{"Tab切换", []ebiten.Key{ebiten.KeyTab}, []ringmenu.InputEvent{ringmenu.InputToggle}},
		{"Q上一个", []ebiten.Key{ebiten.KeyQ}, []ringmenu.InputEvent{ringmenu.InputPrevious}},
		{"E下一个", []ebiten.Key{ebiten.KeyE}, []ringmenu.InputEvent{ringmenu.InputNext}},
		{"F使用物品", []ebiten.Key{ebiten.KeyF}, []ringmenu.InputEvent{ringmenu.InputUseItem}},
		{"同时按下按绑定顺序", []ebiten.Key{ebiten.KeyE, ebiten.KeyTab}, []ringmenu.InputEvent{ringmenu.InputToggle, ringmenu.InputNext}},
		{"未绑定按键被忽略", []ebiten.Key{ebiten.KeySpace}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRingMenuInputSystem(DefaultKeyBindings)
			pressed := make(map[ebiten.Key]bool)
			for _, k := range tt.pressed {
				pressed[k] = true
			}
			s.isJustPressed = func(k ebiten.Key) bool { return pressed[k] }

			got := s.Poll()
			if len(got) != len(tt.want) {
				t.Fatalf("Poll() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}
