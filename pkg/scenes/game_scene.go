package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
	"github.com/gonewx/flappy/pkg/systems"
	"github.com/gonewx/flappy/pkg/utils"
)

// gameOverSlideTime 结束面板滑入时长（秒）
const gameOverSlideTime = 0.35

// GameScene 游戏主场景
//
// 进行中：每帧先处理跳跃输入，再由 FrameDriver 推进模拟，Draw 只读取会话状态。
// 结束后：在最后一帧画面上叠加结束面板，跳跃/确认键重开。
type GameScene struct {
	session      *game.Session
	driver       *systems.FrameDriver
	audioManager *game.AudioManager
	resources    *Resources

	// world 世界层离屏画布，整体按抖动偏移绘制到屏幕
	world *ebiten.Image

	// 结束面板
	ended        bool
	result       game.Result
	panelElapsed float64
}

// NewGameScene 创建游戏场景，session 需要已经 Start
func NewGameScene(session *game.Session, am *game.AudioManager, res *Resources) *GameScene {
	s := &GameScene{
		session:      session,
		driver:       systems.NewFrameDriver(session),
		audioManager: am,
		resources:    res,
		world:        ebiten.NewImage(session.Config.Screen.Width, session.Config.Screen.Height),
	}
	session.SetOnEnded(s.onEnded)
	return s
}

// onEnded 会话结算回调：显示结束面板
func (s *GameScene) onEnded(result game.Result) {
	s.ended = true
	s.result = result
	s.panelElapsed = 0
	log.Printf("[GameScene] Game over: %s, %s", result.ScoreText(), result.HighScoreText())
}

// Update 处理输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	handleAudioKeys(s.audioManager)

	switch s.session.State {
	case game.StateRunning:
		if utils.IsJumpJustPressed() {
			s.session.Jump()
		}
	case game.StateEnded:
		s.panelElapsed += deltaTime
		if utils.IsConfirmJustPressed() {
			s.restart()
			return
		}
	case game.StateIdle:
		// 从结束界面以外的路径进入（理论上不会发生）时直接开局
		s.restart()
		return
	}

	s.driver.Step(deltaTime)
}

// restart 开始新的一局，丢弃旧局的实体和血迹缓存
func (s *GameScene) restart() {
	if err := s.session.Start(); err != nil {
		log.Printf("[GameScene] Failed to restart session: %v", err)
		return
	}
	s.ended = false
	s.result = game.Result{}
	s.resources.ResetSplatters()
}

// Draw 绘制顺序：背景 → 世界层（小鸟、管道、血迹、粒子，整体抖动）→ 闪白 → 计分 → 结束面板
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.resources.Sky, &ebiten.DrawImageOptions{})

	s.world.Clear()
	s.drawBird(s.world)
	s.drawPipes(s.world)
	s.drawSplatters(s.world)
	s.drawParticles(s.world)

	worldOp := &ebiten.DrawImageOptions{}
	worldOp.GeoM.Translate(s.session.ShakeX, s.session.ShakeY)
	screen.DrawImage(s.world, worldOp)

	s.drawFlash(screen)
	s.drawHUD(screen)

	if s.ended {
		s.drawGameOver(screen)
	}
}

func (s *GameScene) drawPipes(dst *ebiten.Image) {
	em := s.session.EntityManager
	height := float32(s.session.Config.Screen.Height)

	for _, id := range ecs.GetEntitiesWith2[*components.PipeComponent, *components.PositionComponent](em) {
		pipe, _ := ecs.GetComponent[*components.PipeComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		x, w := float32(pos.X), float32(pipe.Width)
		top, bottom := float32(pipe.Top), float32(pipe.Bottom)

		vector.DrawFilledRect(dst, x, 0, w, top, config.PipeColor, false)
		vector.DrawFilledRect(dst, x, bottom, w, height-bottom, config.PipeColor, false)

		// 管口
		const lip = 4
		vector.DrawFilledRect(dst, x-lip, top-12, w+2*lip, 12, config.PipeEdgeColor, false)
		vector.DrawFilledRect(dst, x-lip, bottom, w+2*lip, 12, config.PipeEdgeColor, false)
	}
}

func (s *GameScene) drawSplatters(dst *ebiten.Image) {
	em := s.session.EntityManager
	for _, id := range ecs.GetEntitiesWith2[*components.SplatterComponent, *components.PositionComponent](em) {
		splat, _ := ecs.GetComponent[*components.SplatterComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		img := s.resources.Splatter(splat.Seed, splat.Size)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X-splat.Size/2, pos.Y-splat.Size/2)
		op.ColorScale.ScaleAlpha(float32(splat.Alpha))
		dst.DrawImage(img, op)
	}
}

func (s *GameScene) drawBird(dst *ebiten.Image) {
	em := s.session.EntityManager
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.session.BirdID)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	dst.DrawImage(s.resources.Bird, op)
}

func (s *GameScene) drawParticles(dst *ebiten.Image) {
	em := s.session.EntityManager
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if p.Alpha <= 0 {
			continue
		}
		vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y), float32(p.Radius), withAlpha(p.Color, p.Alpha), true)
	}
}

func (s *GameScene) drawFlash(screen *ebiten.Image) {
	em := s.session.EntityManager
	w := float32(s.session.Config.Screen.Width)
	h := float32(s.session.Config.Screen.Height)
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](em) {
		flash, _ := ecs.GetComponent[*components.FlashEffectComponent](em, id)
		alpha := flash.CurrentAlpha()
		if alpha <= 0 {
			continue
		}
		vector.DrawFilledRect(screen, 0, 0, w, h, withAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, alpha), false)
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	msg := fmt.Sprintf("Score: %d", s.session.Score)

	shadowOp := &text.DrawOptions{}
	shadowOp.GeoM.Translate(config.HUDScoreX+2, config.HUDScoreY+2)
	shadowOp.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, msg, s.resources.HUDFace, shadowOp)

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.HUDScoreX, config.HUDScoreY)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, s.resources.HUDFace, op)
}

// drawGameOver 结束面板从上方滑入
func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	w := float64(s.session.Config.Screen.Width)
	h := float64(s.session.Config.Screen.Height)

	const panelW, panelH = 460.0, 240.0
	progress := utils.EaseOutCubic(s.panelElapsed / gameOverSlideTime)
	x := (w - panelW) / 2
	y := utils.Lerp(-panelH, (h-panelH)/2, progress)

	vector.DrawFilledRect(screen, float32(x), float32(y), panelW, panelH, config.PanelColor, false)

	cx := w / 2
	drawCenteredText(screen, "GAME OVER", s.resources.TitleFace, cx, y+30, color.White)
	drawCenteredText(screen, s.result.ScoreText(), s.resources.HintFace, cx, y+100, color.White)

	highColor := color.Color(color.White)
	if s.result.NewRecord {
		highColor = config.BirdColor
	}
	drawCenteredText(screen, s.result.HighScoreText(), s.resources.HintFace, cx, y+135, highColor)
	drawCenteredText(screen, restartHint(), s.resources.HintFace, cx, y+195, color.RGBA{R: 200, G: 200, B: 200, A: 255})
}

// restartHint 移动端显示"轻触"提示
func restartHint() string {
	if utils.IsMobile() {
		return "Tap to restart"
	}
	return "Press SPACE to restart"
}

// withAlpha 返回按 alpha 缩放后的预乘颜色
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
