package systems

import (
	"github.com/gonewx/flappy/pkg/game"
)

// ShakeSystem 屏幕抖动
//
// 强度大于 0 时，每帧在两个轴上取 (rand-0.5)*强度 的随机偏移，然后强度乘以衰减系数。
// 强度只会在新的撞击时被重新设置，这里不会增加它。
type ShakeSystem struct {
	session *game.Session
}

// NewShakeSystem 创建抖动系统
func NewShakeSystem(session *game.Session) *ShakeSystem {
	return &ShakeSystem{session: session}
}

// Update 计算本帧的抖动偏移
func (s *ShakeSystem) Update(deltaTime float64) {
	session := s.session
	if session.ShakeIntensity <= 0 {
		session.ShakeX, session.ShakeY = 0, 0
		return
	}

	session.ShakeX = (session.Rand.Float64() - 0.5) * session.ShakeIntensity
	session.ShakeY = (session.Rand.Float64() - 0.5) * session.ShakeIntensity
	session.ShakeIntensity *= session.Config.Effects.ShakeDecay
}
