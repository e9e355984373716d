package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/decker502/ringmenu/pkg/utils"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep 正弦振荡器，频率在时长内从 from 线性滑到 to
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := utils.Lerp(s.from, s.to, float64(s.position)/float64(s.total))
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope 线性起音/释音包络，避免首尾爆音
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Min(vol, utils.Clamp01(float64(remaining)/float64(e.release)))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note 一个带包络的滑音
func note(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	edge := duration / 10
	return newEnvelope(newSweep(from, to, duration, rate), duration, edge, edge, rate)
}

// withVolume 线性音量转换为 effects.Volume 的对数音量
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// soundStreams 各音效的生成器
var soundStreams = map[SoundID]func(rate beep.SampleRate) beep.Streamer{
	SoundRingOpen: func(rate beep.SampleRate) beep.Streamer {
		return note(440, 880, 120*time.Millisecond, rate)
	},
	SoundRingClose: func(rate beep.SampleRate) beep.Streamer {
		return note(880, 440, 120*time.Millisecond, rate)
	},
	SoundSelect: func(rate beep.SampleRate) beep.Streamer {
		return beep.Mix(
			withVolume(note(660, 660, 50*time.Millisecond, rate), 0.7),
			withVolume(note(1320, 1320, 50*time.Millisecond, rate), 0.3),
		)
	},
	SoundUseItem: func(rate beep.SampleRate) beep.Streamer {
		return beep.Seq(
			note(330, 330, 60*time.Millisecond, rate),
			note(220, 220, 90*time.Millisecond, rate),
		)
	},
}

// synthGain 渲染成 PCM 时的整体增益
const synthGain = 0.3

// renderPCM 把流渲染为 16 位小端立体声 PCM（ebiten/audio 的格式）
func renderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			var frame [4]byte
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame[:]...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v*synthGain))
	return int16(math.Round(v * math.MaxInt16))
}
