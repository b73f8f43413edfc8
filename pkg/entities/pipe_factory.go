package entities

import (
	"fmt"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
)

// NewPipe 在指定X坐标创建一对管道
//
// 参数:
//   - em: 实体管理器
//   - cfg: 管道配置（宽度、空隙高度）
//   - x: 管道左边缘X坐标（通常为屏幕宽度）
//   - top: 空隙顶部Y坐标，不做范围校验
//
// 返回:
//   - ecs.EntityID: 管道实体ID
//   - error: em 为 nil 时返回错误
func NewPipe(em *ecs.EntityManager, cfg config.PipeConfig, x, top float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x})
	ecs.AddComponent(em, id, &components.PipeComponent{
		Top:    top,
		Bottom: top + cfg.Gap,
		Width:  cfg.Width,
	})
	return id, nil
}
