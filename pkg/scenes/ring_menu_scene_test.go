package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/ringmenu/pkg/config"
	"github.com/decker502/ringmenu/pkg/game"
	"github.com/decker502/ringmenu/pkg/ringmenu"
)

func newTestScene(t *testing.T, showDebug bool) *RingMenuScene {
	t.Helper()
	cfg := config.DefaultRingMenuConfig()
	for _, name := range []string{"sword", "shield", "potion"} {
		cfg.Icons = append(cfg.Icons, config.IconConfig{Name: name, Color: "#808080"})
	}
	s, err := NewRingMenuScene(game.NewResourceManager(), nil, cfg, showDebug)
	if err != nil {
		t.Fatalf("NewRingMenuScene failed: %v", err)
	}
	return s
}

func stepUntilIdle(t *testing.T, s *RingMenuScene, events ...ringmenu.InputEvent) {
	t.Helper()
	if err := s.step(events, 1.0/60); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	for i := 0; s.Controller().IsAnimating(); i++ {
		if i > 1000 {
			t.Fatal("animation did not terminate")
		}
		if err := s.step(nil, 1.0/60); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
}

// TestRingMenuScene_HUDLinesWithoutDebug 关闭调试时只显示按键说明
func TestRingMenuScene_HUDLinesWithoutDebug(t *testing.T) {
	s := &RingMenuScene{}
	lines := s.hudLines()
	if len(lines) != 1 {
		t.Fatalf("hudLines() = %v, want a single help line", lines)
	}
	for _, key := range []string{"[Tab]", "[Q]", "[E]", "[F]"} {
		if !strings.Contains(lines[0], key) {
			t.Errorf("help line %q missing %s", lines[0], key)
		}
	}
}

func TestRingMenuScene_HUDLinesWithDebug(t *testing.T) {
	s := newTestScene(t, true)
	lines := s.hudLines()
	if len(lines) != 3 || !strings.Contains(lines[1], "state=Closed") {
		t.Errorf("hudLines() = %v", lines)
	}
}

// TestRingMenuScene_SelectAndUse 展开、选择、收起后使用新物品
func TestRingMenuScene_SelectAndUse(t *testing.T) {
	s := newTestScene(t, false)

	stepUntilIdle(t, s, ringmenu.InputToggle)
	if s.Controller().State() != ringmenu.StateOpen {
		t.Fatalf("state = %s, want Open", s.Controller().State())
	}

	// 展开状态下 UseItem 被忽略
	stepUntilIdle(t, s, ringmenu.InputUseItem)
	if s.HeldItem().Component().UseCount != 0 {
		t.Error("UseItem should be ignored while the menu is open")
	}

	stepUntilIdle(t, s, ringmenu.InputPrevious)
	stepUntilIdle(t, s, ringmenu.InputToggle)

	held := s.HeldItem().Component()
	if held.Index != 2 || held.Name != "potion" {
		t.Errorf("held = %+v, want potion #2 after wrapping backwards", held)
	}

	stepUntilIdle(t, s, ringmenu.InputUseItem)
	if s.HeldItem().Component().UseCount != 1 {
		t.Errorf("UseCount = %d, want 1", s.HeldItem().Component().UseCount)
	}
}
