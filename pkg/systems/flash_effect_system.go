package systems

import (
	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
)

// FlashEffectSystem 撞击闪白
// 按真实时间推进，到期后销毁遮罩实体
type FlashEffectSystem struct {
	session *game.Session
}

// NewFlashEffectSystem 创建闪白系统
func NewFlashEffectSystem(session *game.Session) *FlashEffectSystem {
	return &FlashEffectSystem{session: session}
}

// Update 更新所有闪白效果
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	em := s.session.EntityManager

	for _, entity := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](em) {
		flashComp, ok := ecs.GetComponent[*components.FlashEffectComponent](em, entity)
		if !ok || !flashComp.IsActive {
			continue
		}

		flashComp.Elapsed += dt

		if flashComp.Elapsed >= flashComp.Duration {
			flashComp.IsActive = false
			em.DestroyEntity(entity)
		}
	}
}
