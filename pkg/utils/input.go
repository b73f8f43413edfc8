// Package utils 提供输入、平台检测等与 Ebitengine 相关的小工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// JumpKeys 触发跳跃的按键
var JumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// ConfirmKeys 在开始/结束界面上开局的按键（跳跃键也可以）
var ConfirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}

// MuteKey 静音开关
var MuteKey = ebiten.KeyM

// 音量加减键，主键盘和小键盘都可以
var (
	VolumeUpKeys   = []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}
	VolumeDownKeys = []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}
)

// IsJumpJustPressed 本帧是否有跳跃输入：跳跃键、鼠标左键或新的触摸
// 不做任何去抖，连续按下每次都算
func IsJumpJustPressed() bool {
	if anyKeyJustPressed(JumpKeys, inpututil.IsKeyJustPressed) {
		return true
	}
	pressed, _, _ := IsJustTouchedOrClicked()
	return pressed
}

// IsConfirmJustPressed 本帧是否有开局/重开输入
func IsConfirmJustPressed() bool {
	return anyKeyJustPressed(ConfirmKeys, inpututil.IsKeyJustPressed) || IsJumpJustPressed()
}

// IsMuteJustPressed 本帧是否按下静音键
func IsMuteJustPressed() bool {
	return inpututil.IsKeyJustPressed(MuteKey)
}

// VolumeStepsJustPressed 本帧音量键的净调整步数：+1、-1 或 0
func VolumeStepsJustPressed() int {
	return volumeSteps(inpututil.IsKeyJustPressed)
}

func volumeSteps(justPressed func(ebiten.Key) bool) int {
	steps := 0
	if anyKeyJustPressed(VolumeUpKeys, justPressed) {
		steps++
	}
	if anyKeyJustPressed(VolumeDownKeys, justPressed) {
		steps--
	}
	return steps
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置，触摸优先
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// anyKeyJustPressed 按键列表中是否有任意一个刚被按下
func anyKeyJustPressed(keys []ebiten.Key, justPressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if justPressed(k) {
			return true
		}
	}
	return false
}
