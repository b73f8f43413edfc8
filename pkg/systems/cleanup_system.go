package systems

import (
	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
)

// CleanupSystem 回收离开屏幕的管道，并统一删除本帧被标记的实体
// 必须在每帧所有系统之后运行
type CleanupSystem struct {
	session *game.Session
}

// NewCleanupSystem 创建清理系统
func NewCleanupSystem(session *game.Session) *CleanupSystem {
	return &CleanupSystem{session: session}
}

// Update 执行清理
func (s *CleanupSystem) Update(deltaTime float64) {
	em := s.session.EntityManager

	for _, id := range ecs.GetEntitiesWith2[*components.PipeComponent, *components.PositionComponent](em) {
		pipe, _ := ecs.GetComponent[*components.PipeComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X+pipe.Width < 0 {
			em.DestroyEntity(id)
		}
	}

	em.RemoveMarkedEntities()
}
