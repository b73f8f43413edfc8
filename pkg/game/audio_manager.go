package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/flappy/internal/synth"
)

// AudioSampleRate Ebitengine 音频上下文采样率
const AudioSampleRate = int(synth.SampleRate)

// AudioManager 音频管理器
// 职责：
//   - 持有合成好的提示音 PCM 数据
//   - 根据 SettingsManager 中的开关和音量播放
//
// 每次播放都创建新的 Player，同一音效可以重叠播放（快速连跳）。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager // 可为 nil（始终以默认音量播放）
	cues            map[Cue][]byte
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文，可为 nil（静音，用于测试和无音频设备的环境）
//   - sm: SettingsManager 实例，可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		cues:            SynthesizeCues(),
	}
}

// SynthesizeCues 合成全部提示音，返回 16 位立体声 PCM
func SynthesizeCues() map[Cue][]byte {
	return map[Cue][]byte{
		CueJump:  synth.Render(synth.Jump(synth.SampleRate)),
		CuePoint: synth.Render(synth.Point(synth.SampleRate)),
		CueHit:   synth.Render(synth.Hit(synth.SampleRate)),
	}
}

// PlayCue 播放提示音
//
// 音效被禁用、没有音频上下文或音效不存在时静默返回。
func (am *AudioManager) PlayCue(cue Cue) {
	am.play(cue)
}

// play 返回是否真正开始播放
func (am *AudioManager) play(cue Cue) bool {
	volume := 1.0
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	if am.context == nil {
		return false
	}

	pcm, ok := am.cues[cue]
	if !ok || len(pcm) == 0 {
		log.Printf("[AudioManager] Warning: No data for cue %s", cue)
		return false
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
	return true
}

// VolumeStep 音量键每次调整的幅度
const VolumeStep = 0.1

// SetSoundVolume 设置音效音量（0.0 ~ 1.0）并保存，影响后续播放
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager == nil {
		return
	}
	am.settingsManager.SetSoundVolume(volume)
	am.save()
}

// SetSoundEnabled 设置音效开关并保存
func (am *AudioManager) SetSoundEnabled(enabled bool) {
	if am.settingsManager == nil {
		return
	}
	am.settingsManager.SetSoundEnabled(enabled)
	am.save()
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
}

// IsSoundEnabled 音效是否开启，没有设置管理器时视为开启
func (am *AudioManager) IsSoundEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().SoundEnabled
}

// ToggleMute 切换静音，返回切换后音效是否开启
func (am *AudioManager) ToggleMute() bool {
	am.SetSoundEnabled(!am.IsSoundEnabled())
	return am.IsSoundEnabled()
}

// AdjustVolume 按 steps 个 VolumeStep 调整音量，返回调整后的音量
func (am *AudioManager) AdjustVolume(steps int) float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	current := am.settingsManager.GetSettings().SoundVolume
	// 四舍五入到一位小数，避免 0.1 累加出 0.30000000000000004
	am.SetSoundVolume(math.Round((current+float64(steps)*VolumeStep)*10) / 10)
	return am.settingsManager.GetSettings().SoundVolume
}

func (am *AudioManager) save() {
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save sound settings: %v", err)
	}
}
