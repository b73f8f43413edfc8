package systems

import (
	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
)

// Rect 轴对齐矩形，左上角为原点
type Rect struct {
	X, Y, Width, Height float64
}

// Overlaps 判断小鸟是否撞上一对管道
//
// 水平方向与管道 [x, x+width) 相交，并且竖直方向有一部分在上管道底边之上
// 或下管道顶边之下（即不完全位于空隙内）。
func Overlaps(bird Rect, pipeX float64, pipe *components.PipeComponent) bool {
	horizontal := bird.X < pipeX+pipe.Width && bird.X+bird.Width > pipeX
	outsideGap := bird.Y < pipe.Top || bird.Y+bird.Height > pipe.Bottom
	return horizontal && outsideGap
}

// OutOfBounds 判断小鸟是否飞出屏幕上下边界
func OutOfBounds(bird Rect, screenHeight float64) bool {
	return bird.Y+bird.Height > screenHeight || bird.Y < 0
}

// CollisionSystem 碰撞检测与计分
//
// 只在 StateRunning 下工作。按管道创建顺序逐个检查：
// 先检查碰撞（触发死亡），再检查是否越过（计分）。
// 一旦触发死亡，会话离开 Running，同一帧后续的碰撞和计分都不再生效。
type CollisionSystem struct {
	session *game.Session
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(session *game.Session) *CollisionSystem {
	return &CollisionSystem{session: session}
}

// Update 检查本帧的碰撞与计分
func (s *CollisionSystem) Update(deltaTime float64) {
	if s.session.State != game.StateRunning {
		return
	}

	em := s.session.EntityManager
	bird, ok := s.birdRect()
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PipeComponent, *components.PositionComponent](em) {
		if s.session.State != game.StateRunning {
			return
		}

		pipe, _ := ecs.GetComponent[*components.PipeComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		if Overlaps(bird, pos.X, pipe) {
			s.session.TriggerDeath()
			continue
		}

		if !pipe.Passed && pos.X < bird.X {
			pipe.Passed = true
			s.session.AddPoint()
		}
	}

	if OutOfBounds(bird, float64(s.session.Config.Screen.Height)) {
		s.session.TriggerDeath()
	}
}

// birdRect 返回小鸟当前的碰撞矩形
func (s *CollisionSystem) birdRect() (Rect, bool) {
	em := s.session.EntityManager
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.session.BirdID)
	if !ok {
		return Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, s.session.BirdID)
	if !ok {
		return Rect{}, false
	}
	return Rect{X: pos.X, Y: pos.Y, Width: col.Width, Height: col.Height}, true
}
