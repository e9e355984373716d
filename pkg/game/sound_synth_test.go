package game

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(1000)

func TestRenderPCM_Note(t *testing.T) {
	pcm := renderPCM(note(440, 440, 100*time.Millisecond, testRate))
	if len(pcm) != 100*4 {
		t.Fatalf("len(pcm) = %d, want 400", len(pcm))
	}
	// 起音从 0 开始，左右声道相同
	if v := int16(binary.LittleEndian.Uint16(pcm[0:])); v != 0 {
		t.Errorf("first sample = %d, want 0", v)
	}
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("sample %d: left and right channels differ", i/4)
		}
	}
}

func TestRenderPCM_Seq(t *testing.T) {
	pcm := renderPCM(soundStreams[SoundUseItem](testRate))
	// 60ms + 90ms
	if len(pcm) != 150*4 {
		t.Errorf("len(pcm) = %d, want 600", len(pcm))
	}
}

func TestSoundStreams_AllTerminate(t *testing.T) {
	for id, gen := range soundStreams {
		pcm := renderPCM(gen(testRate))
		if len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Errorf("sound %d rendered %d bytes", id, len(pcm))
		}
	}
}

func TestToInt16_Clips(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"静音", 0, 0},
		{"正向削顶", 10, 32767},
		{"负向削顶", -10, -32767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toInt16(tt.in); got != tt.want {
				t.Errorf("toInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
