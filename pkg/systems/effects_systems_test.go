package systems

import (
	"math"
	"testing"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/entities"
	"github.com/gonewx/flappy/pkg/game"
)

func addParticle(s *game.Session, y, alpha float64) (ecs.EntityID, *components.ParticleComponent) {
	em := s.EntityManager
	id := em.CreateEntity()
	p := &components.ParticleComponent{
		VelocityX: 2,
		VelocityY: -4,
		Gravity:   0.3,
		Radius:    3,
		Alpha:     alpha,
		Fade:      0.02,
	}
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: y})
	ecs.AddComponent(em, id, p)
	return id, p
}

func TestParticleIntegration(t *testing.T) {
	s := newRunningSession(t, true)
	id, p := addParticle(s, 100, 1)

	NewParticleSystem(s).Update(frame)

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
	if math.Abs(p.VelocityY-(-3.7)) > 1e-9 {
		t.Errorf("VelocityY: got %v, want -3.7", p.VelocityY)
	}
	if pos.X != 102 || math.Abs(pos.Y-96.3) > 1e-9 {
		t.Errorf("position: got (%v, %v), want (102, 96.3)", pos.X, pos.Y)
	}
	if math.Abs(p.Alpha-0.98) > 1e-9 {
		t.Errorf("Alpha: got %v, want 0.98", p.Alpha)
	}
}

func TestParticleRemovedWhenFaded(t *testing.T) {
	s := newRunningSession(t, true)
	_, p := addParticle(s, 100, 0.05)
	system := NewParticleSystem(s)
	cleanup := NewCleanupSystem(s)

	prev := p.Alpha
	for frameNo := 1; frameNo <= 2; frameNo++ {
		system.Update(frame)
		cleanup.Update(frame)
		if p.Alpha >= prev || p.Alpha <= 0 {
			t.Fatalf("frame %d: alpha %v should decrease and stay positive", frameNo, p.Alpha)
		}
		prev = p.Alpha
		if countWith[*components.ParticleComponent](s) != 1 {
			t.Fatalf("frame %d: particle removed too early", frameNo)
		}
	}

	system.Update(frame)
	if p.Alpha != 0 {
		t.Errorf("faded particle alpha should be clamped to 0, got %v", p.Alpha)
	}
	cleanup.Update(frame)
	if n := countWith[*components.ParticleComponent](s); n != 0 {
		t.Errorf("faded particle should be removed in the same frame, %d left", n)
	}
}

func TestParticleRemovedBelowScreen(t *testing.T) {
	s := newRunningSession(t, true)
	addParticle(s, 700, 1)

	NewParticleSystem(s).Update(frame)
	NewCleanupSystem(s).Update(frame)

	if n := countWith[*components.ParticleComponent](s); n != 0 {
		t.Errorf("particle below screen should be removed, %d left", n)
	}
}

func TestShakeDecaysGeometrically(t *testing.T) {
	s := newRunningSession(t, true)
	s.ShakeIntensity = 20
	system := NewShakeSystem(s)

	want := 20.0
	for i := 0; i < 30; i++ {
		before := s.ShakeIntensity
		system.Update(frame)

		if math.Abs(s.ShakeX) > before/2 || math.Abs(s.ShakeY) > before/2 {
			t.Fatalf("frame %d: offset (%v, %v) exceeds intensity %v", i, s.ShakeX, s.ShakeY, before)
		}
		want *= 0.9
		if math.Abs(s.ShakeIntensity-want) > 1e-9 {
			t.Fatalf("frame %d: intensity %v, want %v", i, s.ShakeIntensity, want)
		}
		if s.ShakeIntensity > before || s.ShakeIntensity <= 0 {
			t.Fatalf("frame %d: intensity must decrease toward 0, got %v", i, s.ShakeIntensity)
		}
	}
}

func TestShakeIdleHasNoOffset(t *testing.T) {
	s := newRunningSession(t, true)
	s.ShakeX, s.ShakeY = 3, 4

	NewShakeSystem(s).Update(frame)

	if s.ShakeX != 0 || s.ShakeY != 0 || s.ShakeIntensity != 0 {
		t.Errorf("expected no shake, got offset (%v, %v) intensity %v", s.ShakeX, s.ShakeY, s.ShakeIntensity)
	}
}

func TestFlashEffectFadesOut(t *testing.T) {
	s := newRunningSession(t, true)
	id, err := entities.NewFlashOverlay(s.EntityManager, 0.15)
	if err != nil {
		t.Fatalf("NewFlashOverlay error: %v", err)
	}
	flash, _ := ecs.GetComponent[*components.FlashEffectComponent](s.EntityManager, id)
	system := NewFlashEffectSystem(s)

	if flash.CurrentAlpha() != 1 {
		t.Errorf("initial alpha: got %v, want 1", flash.CurrentAlpha())
	}

	system.Update(0.075)
	if math.Abs(flash.CurrentAlpha()-0.5) > 1e-9 {
		t.Errorf("half-way alpha: got %v, want 0.5", flash.CurrentAlpha())
	}

	system.Update(0.075)
	if flash.IsActive || flash.CurrentAlpha() != 0 {
		t.Error("flash should be finished")
	}
	NewCleanupSystem(s).Update(0)
	if n := countWith[*components.FlashEffectComponent](s); n != 0 {
		t.Errorf("flash entity should be removed, %d left", n)
	}
}

func TestDeathSequenceFinishesAfterDelay(t *testing.T) {
	s := newRunningSession(t, true)
	s.TriggerDeath()
	system := NewDeathSequenceSystem(s)

	system.Update(0.5)
	if s.State != game.StateDeathSequence {
		t.Fatalf("expected DeathSequence after 0.5s, got %s", s.State)
	}

	system.Update(0.3)
	if s.State != game.StateEnded {
		t.Fatalf("expected Ended after 0.8s, got %s", s.State)
	}
	if s.Speed != 1.0 {
		t.Errorf("Speed: got %v, want 1.0", s.Speed)
	}

	// 已结束的会话不再推进计时器
	system.Update(1)
	if s.State != game.StateEnded {
		t.Errorf("expected Ended, got %s", s.State)
	}
}

func TestDeathSequenceIgnoresRunningSession(t *testing.T) {
	s := newRunningSession(t, true)
	if _, err := entities.NewDeathTimer(s.EntityManager, 0.1); err != nil {
		t.Fatalf("NewDeathTimer error: %v", err)
	}

	NewDeathSequenceSystem(s).Update(1)

	if s.State != game.StateRunning {
		t.Errorf("timer should only run during the death sequence, got %s", s.State)
	}
}

func TestCleanupEvictsOffscreenPipes(t *testing.T) {
	s := newRunningSession(t, true)
	gone := addPipe(t, s, -61, 100)
	edge := addPipe(t, s, -60, 100)
	visible := addPipe(t, s, 300, 100)

	NewCleanupSystem(s).Update(frame)

	em := s.EntityManager
	if ecs.HasComponent[*components.PipeComponent](em, gone) {
		t.Error("pipe fully left of the screen should be evicted")
	}
	if !ecs.HasComponent[*components.PipeComponent](em, edge) {
		t.Error("pipe whose right edge is at 0 should be kept")
	}
	if !ecs.HasComponent[*components.PipeComponent](em, visible) {
		t.Error("visible pipe should be kept")
	}
}
