package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/entities"
	"github.com/gonewx/flappy/pkg/game"
)

// newRunningSession 创建已开局的会话；管道不会自动生成
func newRunningSession(t *testing.T, effects bool) *game.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Effects.Enabled = effects
	cfg.Pipes.SpawnChance = 0

	s := game.NewSession(cfg, nil, nil, rand.New(rand.NewSource(42)))
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return s
}

func birdState(t *testing.T, s *game.Session) (*components.PositionComponent, *components.VelocityComponent) {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, s.BirdID)
	if !ok {
		t.Fatal("bird has no position")
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.EntityManager, s.BirdID)
	if !ok {
		t.Fatal("bird has no velocity")
	}
	return pos, vel
}

func addPipe(t *testing.T, s *game.Session, x, top float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPipe(s.EntityManager, s.Config.Pipes, x, top)
	if err != nil {
		t.Fatalf("NewPipe error: %v", err)
	}
	return id
}

func countWith[T any](s *game.Session) int {
	return len(ecs.GetEntitiesWith1[T](s.EntityManager))
}
