package entities

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
)

// NewBloodBurst 在撞击点喷出一组血液粒子
//
// 每个粒子的半径、颜色、水平速度和向上的初速度都是随机的，透明度从 1 开始。
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源
//   - cfg: 演出配置（粒子数量、重力、衰减、半径与速度范围、颜色）
//   - x, y: 喷射中心（小鸟中心）
//
// 返回:
//   - []ecs.EntityID: 创建的粒子实体ID
//   - error: 参数无效或颜色解析失败时返回错误
func NewBloodBurst(em *ecs.EntityManager, rng *rand.Rand, cfg config.EffectsConfig, x, y float64) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	palette := make([]color.RGBA, 0, len(cfg.ParticleColors))
	for _, hex := range cfg.ParticleColors {
		c, err := config.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse particle color: %w", err)
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("particle palette is empty")
	}

	ids := make([]ecs.EntityID, 0, cfg.ParticleCount)
	for i := 0; i < cfg.ParticleCount; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, id, &components.ParticleComponent{
			VelocityX: randRange(rng, -cfg.ParticleSpeedX, cfg.ParticleSpeedX),
			VelocityY: -randRange(rng, cfg.ParticleMinLift, cfg.ParticleMaxLift),
			Gravity:   cfg.ParticleGravity,
			Radius:    randRange(rng, cfg.ParticleMinRadius, cfg.ParticleMaxRadius),
			Color:     palette[rng.Intn(len(palette))],
			Alpha:     1,
			Fade:      cfg.ParticleFade,
		})
		ids = append(ids, id)
	}
	return ids, nil
}

// NewSplatter 在撞击点创建一块血迹贴花
func NewSplatter(em *ecs.EntityManager, rng *rand.Rand, cfg config.EffectsConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	var seed int64
	if rng != nil {
		seed = rng.Int63()
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SplatterComponent{
		Size:  cfg.SplatterSize,
		Alpha: cfg.SplatterAlpha,
		Seed:  seed,
	})
	return id, nil
}

// NewFlashOverlay 创建全屏闪白实体
func NewFlashOverlay(em *ecs.EntityManager, duration float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.FlashEffectComponent{
		Duration:  duration,
		Intensity: 1.0,
		IsActive:  true,
	})
	return id, nil
}

// NewDeathTimer 创建死亡演出计时器实体
// 计时器到期后由 DeathSequenceSystem 结束本局
func NewDeathTimer(em *ecs.EntityManager, delay float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TimerComponent{
		Name:       components.TimerDeathSequence,
		TargetTime: delay,
	})
	return id, nil
}

// randRange 返回 [min, max) 区间内的随机数
func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
