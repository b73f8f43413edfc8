package systems

import (
	"log"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/entities"
	"github.com/gonewx/flappy/pkg/game"
)

// PipeSystem 管道生成与滚动
//
// 每帧以 spawnChance*speed 的概率在屏幕右边缘生成一对管道，
// 上管道高度取 [0, 屏幕高度/2) 的均匀随机数，不检查是否超出屏幕。
// 随后所有管道（包括本帧新生成的）向左移动 scrollSpeed*speed。
// 移出屏幕的管道由 CleanupSystem 回收。
type PipeSystem struct {
	session *game.Session
}

// NewPipeSystem 创建管道系统
func NewPipeSystem(session *game.Session) *PipeSystem {
	return &PipeSystem{session: session}
}

// Update 推进一帧
func (s *PipeSystem) Update(deltaTime float64) {
	if !s.session.IsActive() {
		return
	}

	cfg := s.session.Config
	em := s.session.EntityManager
	speed := s.session.Speed

	if s.session.Rand.Float64() < cfg.Pipes.SpawnChance*speed {
		top := s.session.Rand.Float64() * (float64(cfg.Screen.Height) / 2)
		if _, err := entities.NewPipe(em, cfg.Pipes, float64(cfg.Screen.Width), top); err != nil {
			log.Printf("[PipeSystem] Warning: Failed to spawn pipe: %v", err)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PipeComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		pos.X -= cfg.Pipes.ScrollSpeed * speed
	}
}
