package systems

import (
	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
)

// BirdPhysicsSystem 小鸟重力积分
//
// 每帧先更新速度再更新位置，两者都乘以会话的速度倍率：
//
//	vy += gravity * speed
//	y  += vy * speed
//
// X 坐标在整局中保持不变。
type BirdPhysicsSystem struct {
	session *game.Session
}

// NewBirdPhysicsSystem 创建小鸟物理系统
func NewBirdPhysicsSystem(session *game.Session) *BirdPhysicsSystem {
	return &BirdPhysicsSystem{session: session}
}

// Update 推进一帧（按帧计，不使用 deltaTime）
func (s *BirdPhysicsSystem) Update(deltaTime float64) {
	if !s.session.IsActive() {
		return
	}

	em := s.session.EntityManager
	speed := s.session.Speed

	for _, id := range ecs.GetEntitiesWith3[*components.BirdComponent, *components.PositionComponent, *components.VelocityComponent](em) {
		bird, _ := ecs.GetComponent[*components.BirdComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		vel.VY += bird.Gravity * speed
		pos.Y += vel.VY * speed
	}
}
