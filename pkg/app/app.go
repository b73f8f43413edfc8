// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/game"
	"github.com/gonewx/flappy/pkg/scenes"
	"github.com/gonewx/flappy/pkg/utils"
)

// AppName 本地存储使用的应用名（最高分、设置）
const AppName = "flappy"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 玩法配置文件路径（.yaml/.yml/.toml），为空则使用内置配置
	ConfigPath string
	// Classic 关闭死亡演出，碰撞后直接结束（经典版）
	Classic bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	gameConfig      *config.GameConfig

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入配置；
// 未初始化时使用 config.Default()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.Resolve(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	if cfg.Classic {
		gameConfig.Effects.Enabled = false
	}
	log.Printf("[Config] Loaded game config (effects=%v, gap=%.0f)", gameConfig.Effects.Enabled, gameConfig.Pipes.Gap)

	// 本地存储，失败时降级为仅内存
	gdataManager := openStorage()

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: Failed to load settings, using defaults: %v", err)
	}
	highScores := game.NewHighScoreManager(gdataManager)

	// 初始化音频上下文
	audioContext := audio.NewContext(game.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	session := game.NewSession(gameConfig, highScores, audioManager, nil)

	res, err := scenes.NewResources(gameConfig)
	if err != nil {
		return nil, fmt.Errorf("绘制资源初始化失败: %w", err)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewFactory(session, sceneManager, audioManager, res))
	sceneManager.Goto(game.SceneStart)

	if settingsManager != nil && settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		gameConfig:      gameConfig,
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] Warning: Failed to prepare storage dir: %v", err)
	}
	gm, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage, high score will not persist: %v", err)
		return nil
	}
	return gm
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存到设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	if a.settingsManager != nil {
		a.settingsManager.ToggleFullscreen()
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// ScreenSize 返回逻辑屏幕尺寸，用于设置初始窗口大小
func (a *App) ScreenSize() (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}
