package game

import "testing"

func TestAudioManager_Mute(t *testing.T) {
	var nilManager *AudioManager
	if nilManager.PlaySound(SoundSelect) {
		t.Error("nil AudioManager should not play")
	}

	muted := NewAudioManager(nil, 1)
	if muted.PlaySound(SoundSelect) {
		t.Error("AudioManager without context should not play")
	}

	am := NewAudioManager(testAudioContext, 0)
	if am.PlaySound(SoundSelect) {
		t.Error("zero volume should not play")
	}
}

func TestAudioManager_PlaySound(t *testing.T) {
	am := NewAudioManager(testAudioContext, 0.5)

	for _, id := range []SoundID{SoundRingOpen, SoundRingClose, SoundSelect, SoundUseItem} {
		if !am.PlaySound(id) {
			t.Errorf("PlaySound(%d) = false, want true", id)
		}
	}
	if am.PlaySound(SoundID(99)) {
		t.Error("unknown sound should not play")
	}
	if len(am.pcmCache) != 4 {
		t.Errorf("pcmCache size = %d, want 4", len(am.pcmCache))
	}
}

func TestAudioManager_SetVolume(t *testing.T) {
	am := NewAudioManager(nil, 2)
	if am.Volume() != 1 {
		t.Errorf("Volume() = %v, want clamped 1", am.Volume())
	}
	am.SetVolume(-1)
	if am.Volume() != 0 {
		t.Errorf("Volume() = %v, want clamped 0", am.Volume())
	}
}
