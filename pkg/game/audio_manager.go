package game

import (
	"log"

	"github.com/decker502/ringmenu/pkg/utils"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// SoundID 环形菜单音效
type SoundID int

const (
	SoundRingOpen SoundID = iota
	SoundRingClose
	SoundSelect
	SoundUseItem
)

// AudioManager 音频管理器
// 音效在首次播放时用 beep 合成为 PCM 并缓存
//
// audioContext 为 nil 时进入静音模式（测试或 -mute 启动参数）。
type AudioManager struct {
	audioContext *audio.Context
	volume       float64
	pcmCache     map[SoundID][]byte
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil（静音）
//   - volume: 音量 0.0 ~ 1.0
func NewAudioManager(ctx *audio.Context, volume float64) *AudioManager {
	return &AudioManager{
		audioContext: ctx,
		volume:       utils.Clamp01(volume),
		pcmCache:     make(map[SoundID][]byte),
	}
}

// PlaySound 播放音效，返回是否实际播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || am.audioContext == nil || am.volume == 0 {
		return false
	}
	pcm := am.pcm(id)
	if pcm == nil {
		log.Printf("[AudioManager] Unknown sound %d", id)
		return false
	}
	player := am.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(am.volume)
	player.Play()
	return true
}

// SetVolume 设置音量，限制在 0.0 ~ 1.0
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = utils.Clamp01(volume)
}

// Volume 返回当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}

func (am *AudioManager) pcm(id SoundID) []byte {
	if data, ok := am.pcmCache[id]; ok {
		return data
	}
	gen, ok := soundStreams[id]
	if !ok {
		return nil
	}
	data := renderPCM(gen(beep.SampleRate(SampleRate)))
	am.pcmCache[id] = data
	return data
}
