package systems

import (
	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
)

// ParticleSystem 血液粒子
//
// 粒子不受慢动作影响，按帧推进：
//
//	vy += gravity
//	x += vx; y += vy
//	alpha -= fade
//
// alpha <= 0 或落到屏幕下方的粒子在同一帧被标记删除，渲染端永远看不到负透明度。
type ParticleSystem struct {
	session *game.Session
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(session *game.Session) *ParticleSystem {
	return &ParticleSystem{session: session}
}

// Update 推进所有粒子一帧
func (s *ParticleSystem) Update(deltaTime float64) {
	em := s.session.EntityManager
	screenHeight := float64(s.session.Config.Screen.Height)

	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		p.VelocityY += p.Gravity
		pos.X += p.VelocityX
		pos.Y += p.VelocityY
		p.Alpha -= p.Fade

		if p.Alpha <= 0 || pos.Y-p.Radius > screenHeight {
			p.Alpha = 0
			em.DestroyEntity(id)
		}
	}
}
