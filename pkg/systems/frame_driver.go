package systems

import (
	"github.com/gonewx/flappy/pkg/game"
)

// System 每帧推进的系统
type System interface {
	Update(deltaTime float64)
}

// FrameDriver 帧循环驱动
//
// 在 Running 和 DeathSequence 状态下按固定顺序推进所有系统：
// 小鸟物理 → 管道 → 闪白 → 死亡计时 → 碰撞计分 → 粒子 → 抖动 → 清理。
// 闪白和死亡计时排在碰撞之前：撞击帧新建的闪白以满强度画出，
// 计时器从下一帧开始累计。
// 渲染不在这里，由各前端（Ebitengine 场景、终端）在 Step 之后读取会话状态绘制。
type FrameDriver struct {
	session *game.Session
	systems []System
}

// NewFrameDriver 为会话创建帧驱动
func NewFrameDriver(session *game.Session) *FrameDriver {
	return &FrameDriver{
		session: session,
		systems: []System{
			NewBirdPhysicsSystem(session),
			NewPipeSystem(session),
			NewFlashEffectSystem(session),
			NewDeathSequenceSystem(session),
			NewCollisionSystem(session),
			NewParticleSystem(session),
			NewShakeSystem(session),
			NewCleanupSystem(session),
		},
	}
}

// Step 推进一帧，会话不在活动状态时什么都不做
//
// 返回本帧开始时会话是否处于活动状态。
func (d *FrameDriver) Step(deltaTime float64) bool {
	if !d.session.IsActive() {
		return false
	}
	for _, system := range d.systems {
		system.Update(deltaTime)
	}
	return true
}
