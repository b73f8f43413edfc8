package systems

import (
	"math"
	"testing"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
)

func TestFrameDriverIdleDoesNothing(t *testing.T) {
	s := game.NewSession(nil, nil, nil, nil)
	d := NewFrameDriver(s)

	if d.Step(frame) {
		t.Error("Step on an idle session should report false")
	}
}

// 增强版撞击：40 个粒子、0.3 倍速、抖动 20，0.8 秒后结束并恢复速度
func TestFrameDriverDeathSequence(t *testing.T) {
	s := newRunningSession(t, true)
	d := NewFrameDriver(s)
	cx, cy := s.BirdCenter()

	s.TriggerDeath()

	particles := ecs.GetEntitiesWith1[*components.ParticleComponent](s.EntityManager)
	if len(particles) != 40 {
		t.Fatalf("expected 40 particles, got %d", len(particles))
	}
	for _, id := range particles {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if pos.X != cx || pos.Y != cy {
			t.Fatalf("particle at (%v, %v), want (%v, %v)", pos.X, pos.Y, cx, cy)
		}
	}
	if s.Speed != 0.3 || s.ShakeIntensity != 20 {
		t.Fatalf("got speed=%v shake=%v, want 0.3 and 20", s.Speed, s.ShakeIntensity)
	}

	// 47 帧 ≈ 0.783 秒，演出仍在进行
	for i := 0; i < 47; i++ {
		if !d.Step(frame) {
			t.Fatalf("frame %d: driver stopped early", i)
		}
	}
	if s.State != game.StateDeathSequence {
		t.Fatalf("expected DeathSequence after 47 frames, got %s", s.State)
	}
	if s.Speed != 0.3 {
		t.Errorf("slow motion should last the whole sequence, speed=%v", s.Speed)
	}

	d.Step(frame)
	if s.State != game.StateEnded {
		t.Fatalf("expected Ended after 48 frames, got %s", s.State)
	}
	if s.Speed != 1.0 {
		t.Errorf("Speed: got %v, want 1.0", s.Speed)
	}

	if d.Step(frame) {
		t.Error("driver should stop once the session ended")
	}
}

// 撞击发生在 Step 内部：闪白第一次绘制时满强度，结束恰好在撞击后 48 帧
func TestFrameDriverImpactInsideStep(t *testing.T) {
	s := newRunningSession(t, true)
	d := NewFrameDriver(s)
	pos, vel := birdState(t, s)
	pos.Y, vel.VY = -1, 0

	d.Step(frame)
	if s.State != game.StateDeathSequence {
		t.Fatalf("expected DeathSequence after hitting the ceiling, got %s", s.State)
	}

	flashes := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.EntityManager)
	if len(flashes) != 1 {
		t.Fatalf("expected one flash, got %d", len(flashes))
	}
	flash, _ := ecs.GetComponent[*components.FlashEffectComponent](s.EntityManager, flashes[0])
	if alpha := flash.CurrentAlpha(); alpha != 1 {
		t.Errorf("flash alpha on the impact frame: got %v, want 1", alpha)
	}

	for i := 0; i < 47; i++ {
		d.Step(frame)
		if s.State != game.StateDeathSequence {
			t.Fatalf("frame %d after impact: expected DeathSequence, got %s", i+1, s.State)
		}
	}
	d.Step(frame)
	if s.State != game.StateEnded {
		t.Fatalf("expected Ended 48 frames after impact, got %s", s.State)
	}
}

func TestFrameDriverSlowMotionKeepsWorldMoving(t *testing.T) {
	s := newRunningSession(t, true)
	d := NewFrameDriver(s)
	pipe := addPipe(t, s, 400, 100)

	s.TriggerDeath()
	pos, vel := birdState(t, s)
	y, vy := pos.Y, vel.VY

	d.Step(frame)

	if math.Abs(vel.VY-(vy+0.6*0.3)) > 1e-9 {
		t.Errorf("bird velocity should use slow motion, got %v", vel.VY)
	}
	if pos.Y <= y {
		t.Errorf("bird should keep falling, y=%v", pos.Y)
	}
	pipePos, _ := ecs.GetComponent[*components.PositionComponent](s.EntityManager, pipe)
	if math.Abs(pipePos.X-(400-3*0.3)) > 1e-9 {
		t.Errorf("pipe X: got %v, want %v", pipePos.X, 400-3*0.3)
	}
	if s.ShakeIntensity != 18 {
		t.Errorf("shake should decay once, got %v", s.ShakeIntensity)
	}
}

func TestFrameDriverClassicFallEndsSession(t *testing.T) {
	s := newRunningSession(t, false)
	d := NewFrameDriver(s)

	var results []game.Result
	s.SetOnEnded(func(r game.Result) { results = append(results, r) })

	frames := 0
	for d.Step(frame) {
		frames++
		if frames > 600 {
			t.Fatal("bird never hit the floor")
		}
	}

	if s.State != game.StateEnded {
		t.Fatalf("expected Ended, got %s", s.State)
	}
	if len(results) != 1 {
		t.Errorf("OnEnded should fire once, got %d", len(results))
	}
	if n := countWith[*components.ParticleComponent](s); n != 0 {
		t.Errorf("classic variant should have no particles, got %d", n)
	}
}

func TestFrameDriverJumpKeepsBirdAlive(t *testing.T) {
	s := newRunningSession(t, true)
	d := NewFrameDriver(s)

	for i := 0; i < 300; i++ {
		_, vel := birdState(t, s)
		pos, _ := birdState(t, s)
		if pos.Y > 250 && vel.VY > 0 {
			s.Jump()
		}
		d.Step(frame)
	}

	if s.State != game.StateRunning {
		t.Errorf("bird should survive with periodic jumps, state=%s", s.State)
	}
}
