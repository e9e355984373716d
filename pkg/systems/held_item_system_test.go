package systems

import (
	"testing"

	"github.com/decker502/ringmenu/pkg/components"
	"github.com/decker502/ringmenu/pkg/ecs"
)

func TestHeldItemSystem_FlashDecay(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	held := &components.HeldItemComponent{UseFlash: 0.1}
	ecs.AddComponent(em, id, held)

	s := NewHeldItemSystem(em)
	s.Update(0.04)
	if held.UseFlash <= 0.05 || held.UseFlash >= 0.07 {
		t.Errorf("UseFlash = %f, want ~0.06", held.UseFlash)
	}
	s.Update(1)
	if held.UseFlash != 0 {
		t.Errorf("UseFlash = %f, want 0", held.UseFlash)
	}
}

func TestHeldItemLabel(t *testing.T) {
	tests := []struct {
		name string
		held components.HeldItemComponent
		want string
	}{
		{"尚未选择", components.HeldItemComponent{Index: -1}, "Held: -"},
		{"已选择", components.HeldItemComponent{Index: 2, Name: "potion", UseCount: 3}, "Held: potion #2 (used 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := heldItemLabel(&tt.held); got != tt.want {
				t.Errorf("heldItemLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
