package systems

import (
	"testing"

	"github.com/decker502/ringmenu/pkg/components"
)

func TestFlashBorderColor(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		want      uint8 // 蓝色通道
	}{
		{"无闪烁", 0, borderColor.B},
		{"刚使用", components.HeldItemFlashDuration, borderFlashColor.B},
		{"超出时长", 1, borderFlashColor.B},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flashBorderColor(tt.remaining); got.B != tt.want || got.A != 255 {
				t.Errorf("flashBorderColor(%v) = %+v, want B=%d", tt.remaining, got, tt.want)
			}
		})
	}

	mid := flashBorderColor(components.HeldItemFlashDuration / 2)
	if mid.R <= borderColor.R || mid.R >= borderFlashColor.R {
		t.Errorf("halfway color R = %d, want between %d and %d", mid.R, borderColor.R, borderFlashColor.R)
	}
}
