package scenes

import (
	"github.com/gonewx/flappy/pkg/game"
)

// Scene 场景接口，所有场景都实现 game.Scene
type Scene = game.Scene

// NewFactory 返回 SceneManager 使用的场景工厂
//
// 两个场景共享同一个会话、音频管理器和绘制资源；开始界面负责第一次 Start，
// 之后的重开都在游戏场景内完成。
func NewFactory(session *game.Session, sm *game.SceneManager, am *game.AudioManager, res *Resources) game.SceneFactory {
	return func(id game.SceneID) Scene {
		switch id {
		case game.SceneStart:
			return NewStartScene(session, sm, am, res)
		case game.SceneGame:
			return NewGameScene(session, am, res)
		default:
			return nil
		}
	}
}
