package systems

import (
	"log"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
)

// timerEpsilon 吸收逐帧累加 dt 的浮点误差（48 帧 × 1/60 秒应当恰好到达 0.8 秒）
const timerEpsilon = 1e-9

// DeathSequenceSystem 死亡演出计时
//
// 计时器按真实 dt 推进（不受慢动作影响），到期后调用 Session.Finish。
// 演出开始后不能取消；重新开局会连同实体管理器一起丢弃计时器。
type DeathSequenceSystem struct {
	session *game.Session
}

// NewDeathSequenceSystem 创建死亡演出系统
func NewDeathSequenceSystem(session *game.Session) *DeathSequenceSystem {
	return &DeathSequenceSystem{session: session}
}

// Update 推进死亡计时器
func (s *DeathSequenceSystem) Update(deltaTime float64) {
	if s.session.State != game.StateDeathSequence {
		return
	}

	em := s.session.EntityManager
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](em) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](em, id)
		if timer.Name != components.TimerDeathSequence || timer.IsReady {
			continue
		}

		timer.CurrentTime += deltaTime
		if timer.CurrentTime+timerEpsilon < timer.TargetTime {
			continue
		}

		timer.IsReady = true
		em.DestroyEntity(id)
		log.Printf("[DeathSequenceSystem] Death sequence finished after %.2fs", timer.CurrentTime)
		s.session.Finish()
	}
}
