package scenes

import (
	"github.com/gonewx/flappy/pkg/game"
	"github.com/gonewx/flappy/pkg/utils"
)

// handleAudioKeys 开始界面和游戏界面共用：M 静音，-/= 调音量
func handleAudioKeys(am *game.AudioManager) {
	applyAudioKeys(am, utils.IsMuteJustPressed(), utils.VolumeStepsJustPressed())
}

// applyAudioKeys 修改并保存音效设置，返回是否有改动
func applyAudioKeys(am *game.AudioManager, mute bool, steps int) bool {
	if am == nil || (!mute && steps == 0) {
		return false
	}
	if mute {
		am.ToggleMute()
	}
	if steps != 0 {
		am.AdjustVolume(steps)
	}
	return true
}

// audioHint 开始界面底部的按键说明
func audioHint(am *game.AudioManager) string {
	if am != nil && !am.IsSoundEnabled() {
		return "F11: fullscreen   M: unmute   -/+: volume"
	}
	return "F11: fullscreen   M: mute   -/+: volume"
}
