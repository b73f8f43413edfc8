package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/entities"
)

// State 一局游戏的状态
type State int

const (
	// StateIdle 尚未开局（开始界面）
	StateIdle State = iota
	// StateRunning 正常游戏中
	StateRunning
	// StateDeathSequence 死亡演出中（仅增强版）：继续渲染，但不再响应跳跃和计分
	StateDeathSequence
	// StateEnded 本局结束（结束界面）
	StateEnded
)

// String 返回状态名称，用于日志
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateDeathSequence:
		return "DeathSequence"
	case StateEnded:
		return "Ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// HighScoreStore 最高分的持久化接口
// 开局时读取一次，结束时最多写入一次
type HighScoreStore interface {
	HighScore() int
	SaveHighScore(score int) error
}

// Result 一局结束时交给界面层的结算信息
type Result struct {
	Score     int
	HighScore int
	NewRecord bool // 本局刷新了最高分
}

// ScoreText 结束界面的得分文本
func (r Result) ScoreText() string {
	return fmt.Sprintf("Score: %d", r.Score)
}

// HighScoreText 结束界面的最高分文本
func (r Result) HighScoreText() string {
	return fmt.Sprintf("High Score: %d", r.HighScore)
}

// Session 一局游戏的全部可变状态
//
// 由 NewSession 创建，Start 重置。实体（小鸟、管道、粒子、血迹、计时器）保存在
// 独立的 EntityManager 中，每次 Start 都会整体替换，旧局的实体和未触发的计时器随之丢弃。
//
// 非线程安全：只能在帧循环 goroutine 上访问。
type Session struct {
	Config        *config.GameConfig
	EntityManager *ecs.EntityManager
	Rand          *rand.Rand

	State     State
	Score     int
	HighScore int

	// Speed 全局速度倍率：作用于重力、滚动速度和生成概率
	Speed float64

	// ShakeIntensity 屏幕抖动强度，每帧按 ShakeDecay 衰减
	ShakeIntensity float64
	// ShakeX, ShakeY 本帧的抖动偏移量，由 ShakeSystem 计算，渲染端读取
	ShakeX, ShakeY float64

	BirdID ecs.EntityID

	store   HighScoreStore
	cues    CuePlayer
	onEnded func(Result)
	result  Result
}

// NewSession 创建会话，初始状态为 StateIdle
//
// 参数：
//   - cfg: 玩法配置，nil 时使用 config.Default()
//   - store: 最高分存储，可为 nil（不持久化）
//   - cues: 音效播放器，可为 nil（静音）
//   - rng: 随机数源，nil 时使用当前时间作为种子
func NewSession(cfg *config.GameConfig, store HighScoreStore, cues CuePlayer, rng *rand.Rand) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if cues == nil {
		cues = NopCuePlayer{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{
		Config:        cfg,
		EntityManager: ecs.NewEntityManager(),
		Rand:          rng,
		State:         StateIdle,
		Speed:         1.0,
		store:         store,
		cues:          cues,
	}
	// 开始界面需要显示最高分
	if store != nil {
		s.HighScore = store.HighScore()
	}
	return s
}

// SetOnEnded 设置本局结束回调（界面层用来切换到结束界面）
func (s *Session) SetOnEnded(callback func(Result)) {
	s.onEnded = callback
}

// Start 开始新的一局
//
// 可以从任意状态调用：重置实体、分数、速度和抖动，重新读取最高分，进入 StateRunning。
func (s *Session) Start() error {
	s.EntityManager = ecs.NewEntityManager()
	s.Score = 0
	s.Speed = 1.0
	s.ShakeIntensity = 0
	s.ShakeX, s.ShakeY = 0, 0
	s.result = Result{}

	if s.store != nil {
		s.HighScore = s.store.HighScore()
	} else {
		s.HighScore = 0
	}

	birdID, err := entities.NewBird(s.EntityManager, s.Config.Bird)
	if err != nil {
		return fmt.Errorf("failed to create bird: %w", err)
	}
	s.BirdID = birdID

	s.State = StateRunning
	log.Printf("[Session] Started (highScore=%d, effects=%v)", s.HighScore, s.Config.Effects.Enabled)
	return nil
}

// IsActive 帧循环是否需要推进模拟（Running 或 DeathSequence）
func (s *Session) IsActive() bool {
	return s.State == StateRunning || s.State == StateDeathSequence
}

// Jump 玩家跳跃
//
// 仅在 StateRunning 时生效：把垂直速度直接设为 Lift，不限频率。
// 其他状态下静默忽略。返回是否生效。
func (s *Session) Jump() bool {
	if s.State != StateRunning {
		return false
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.EntityManager, s.BirdID)
	if !ok {
		return false
	}
	bird, ok := ecs.GetComponent[*components.BirdComponent](s.EntityManager, s.BirdID)
	if !ok {
		return false
	}

	vel.VY = bird.Lift
	s.cues.PlayCue(CueJump)
	return true
}

// AddPoint 小鸟越过一根管道，得分 +1
// 仅在 StateRunning 时生效
func (s *Session) AddPoint() bool {
	if s.State != StateRunning {
		return false
	}
	s.Score++
	s.cues.PlayCue(CuePoint)
	return true
}

// TriggerDeath 处理撞击
//
// 只在 StateRunning 时生效，每局最多进入一次；之后同一帧或后续帧的碰撞都被忽略。
// 经典版直接结束本局；增强版进入死亡演出：慢动作、屏幕抖动、血液粒子、血迹、闪白，
// 并启动 DeathDelay 秒的计时器，到期后由 DeathSequenceSystem 调用 Finish。
//
// 返回：是否触发了状态切换
func (s *Session) TriggerDeath() bool {
	if s.State != StateRunning {
		return false
	}

	s.cues.PlayCue(CueHit)

	effects := s.Config.Effects
	if !effects.Enabled {
		s.State = StateDeathSequence
		s.Finish()
		return true
	}

	s.State = StateDeathSequence
	s.Speed = effects.SlowMotion
	s.ShakeIntensity = effects.ShakeIntensity

	cx, cy := s.BirdCenter()
	if _, err := entities.NewBloodBurst(s.EntityManager, s.Rand, effects, cx, cy); err != nil {
		log.Printf("[Session] Warning: Failed to spawn blood burst: %v", err)
	}
	if _, err := entities.NewSplatter(s.EntityManager, s.Rand, effects, cx, cy); err != nil {
		log.Printf("[Session] Warning: Failed to spawn splatter: %v", err)
	}
	if _, err := entities.NewFlashOverlay(s.EntityManager, effects.FlashDuration); err != nil {
		log.Printf("[Session] Warning: Failed to spawn flash overlay: %v", err)
	}
	if _, err := entities.NewDeathTimer(s.EntityManager, effects.DeathDelay); err != nil {
		// 没有计时器就无法自动结束，直接结算
		log.Printf("[Session] Warning: Failed to start death timer: %v", err)
		s.Finish()
		return true
	}

	log.Printf("[Session] Running -> DeathSequence (score=%d)", s.Score)
	return true
}

// Finish 结束死亡演出并结算
//
// 恢复速度为 1.0，进入 StateEnded。只有本局分数严格大于已保存的最高分时才写入存储。
func (s *Session) Finish() {
	if s.State != StateDeathSequence {
		return
	}

	s.Speed = 1.0
	s.State = StateEnded

	newRecord := false
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		newRecord = true
		if s.store != nil {
			if err := s.store.SaveHighScore(s.Score); err != nil {
				log.Printf("[Session] Warning: Failed to save high score: %v", err)
			}
		}
	}

	s.result = Result{Score: s.Score, HighScore: s.HighScore, NewRecord: newRecord}
	log.Printf("[Session] -> Ended (score=%d, highScore=%d, newRecord=%v)", s.Score, s.HighScore, newRecord)

	if s.onEnded != nil {
		s.onEnded(s.result)
	}
}

// Result 返回最近一次结算信息（StateEnded 之前为零值）
func (s *Session) Result() Result {
	return s.result
}

// BirdCenter 返回小鸟中心坐标
func (s *Session) BirdCenter() (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, s.BirdID)
	if !ok {
		return 0, 0
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.EntityManager, s.BirdID)
	if !ok {
		return pos.X, pos.Y
	}
	return pos.X + col.Width/2, pos.Y + col.Height/2
}
