package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID string

const (
	SceneStart SceneID = "start"
	SceneGame  SceneID = "game"
)

// SceneFactory 场景工厂函数类型
// 场景包依赖 game 包，由 app 注入工厂避免循环依赖
type SceneFactory func(id SceneID) Scene

// SceneManager manages which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// Goto 通过工厂创建并切换到指定场景
func (sm *SceneManager) Goto(id SceneID) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(id)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", id)
		return
	}

	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 切换到场景: %s", id)
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
