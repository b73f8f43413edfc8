package entities

import (
	"fmt"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
)

// NewBird 创建小鸟实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 小鸟配置（初始位置、尺寸、重力、跳跃速度）
//
// 返回:
//   - ecs.EntityID: 小鸟实体ID
//   - error: em 为 nil 时返回错误
func NewBird(em *ecs.EntityManager, cfg config.BirdConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.X, Y: cfg.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: cfg.Width, Height: cfg.Height})
	ecs.AddComponent(em, id, &components.BirdComponent{Gravity: cfg.Gravity, Lift: cfg.Lift})
	return id, nil
}
