package systems

import (
	"testing"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
)

func TestPipeSystemSpawn(t *testing.T) {
	s := newRunningSession(t, true)
	s.Config.Pipes.SpawnChance = 1

	NewPipeSystem(s).Update(frame)

	pipes := ecs.GetEntitiesWith1[*components.PipeComponent](s.EntityManager)
	if len(pipes) != 1 {
		t.Fatalf("expected 1 pipe, got %d", len(pipes))
	}
	pipe, _ := ecs.GetComponent[*components.PipeComponent](s.EntityManager, pipes[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.EntityManager, pipes[0])

	// 生成在右边缘，并在同一帧滚动一次
	if pos.X != 800-3 {
		t.Errorf("X: got %v, want 797", pos.X)
	}
	if pipe.Top < 0 || pipe.Top >= 300 {
		t.Errorf("Top %v out of [0, 300)", pipe.Top)
	}
	if pipe.Bottom != pipe.Top+180 {
		t.Errorf("Bottom: got %v, want %v", pipe.Bottom, pipe.Top+180)
	}
	if pipe.Passed {
		t.Error("new pipe should not be passed")
	}
}

func TestPipeSystemNoSpawn(t *testing.T) {
	s := newRunningSession(t, true)
	system := NewPipeSystem(s)
	for i := 0; i < 100; i++ {
		system.Update(frame)
	}
	if n := countWith[*components.PipeComponent](s); n != 0 {
		t.Errorf("spawnChance 0 should spawn nothing, got %d", n)
	}
}

func TestPipeSystemScroll(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  float64
	}{
		{"normal", 1.0, 497},
		{"slow motion", 0.3, 499.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunningSession(t, true)
			s.Speed = tt.speed
			id := addPipe(t, s, 500, 100)

			NewPipeSystem(s).Update(frame)

			pos, _ := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
			if diff := pos.X - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("X: got %v, want %v", pos.X, tt.want)
			}
		})
	}
}
