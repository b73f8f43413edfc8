package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/flappy/pkg/game"
	"github.com/gonewx/flappy/pkg/utils"
)

// StartScene 开始界面：标题、操作提示、历史最高分
type StartScene struct {
	session      *game.Session
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	resources    *Resources

	// 标题上下浮动的计时
	elapsed float64
}

// NewStartScene 创建开始界面
func NewStartScene(session *game.Session, sm *game.SceneManager, am *game.AudioManager, res *Resources) *StartScene {
	return &StartScene{
		session:      session,
		sceneManager: sm,
		audioManager: am,
		resources:    res,
	}
}

// Update 等待开局输入
func (s *StartScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	handleAudioKeys(s.audioManager)

	if !utils.IsConfirmJustPressed() {
		return
	}
	if err := s.session.Start(); err != nil {
		log.Printf("[StartScene] Failed to start session: %v", err)
		return
	}
	s.sceneManager.Goto(game.SceneGame)
}

// Draw 绘制开始界面
func (s *StartScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.resources.Sky, &ebiten.DrawImageOptions{})

	w := float64(s.session.Config.Screen.Width)
	h := float64(s.session.Config.Screen.Height)

	// 小鸟在标题下方轻轻上下浮动
	bob := utils.Lerp(-6, 6, utils.EaseInOutSine(utils.PingPong(s.elapsed, 1.6)))
	birdOp := &ebiten.DrawImageOptions{}
	birdOp.GeoM.Translate(w/2-s.session.Config.Bird.Width/2, h/2-90+bob)
	screen.DrawImage(s.resources.Bird, birdOp)

	drawCenteredText(screen, "FLAPPY", s.resources.TitleFace, w/2, h/2-170, color.White)
	drawCenteredText(screen, startHint(), s.resources.HintFace, w/2, h/2, color.White)
	drawCenteredText(screen, fmt.Sprintf("High Score: %d", s.session.HighScore), s.resources.HintFace, w/2, h/2+50, color.White)
	drawCenteredText(screen, audioHint(s.audioManager), s.resources.HintFace, w/2, h-40, color.RGBA{R: 60, G: 60, B: 60, A: 255})
}

// startHint 移动端显示"轻触"提示
func startHint() string {
	if utils.IsMobile() {
		return "Tap to start"
	}
	return "Press SPACE to start"
}

// drawCenteredText 以 (x, y) 为顶部中点绘制带阴影的文字
func drawCenteredText(screen *ebiten.Image, msg string, face *text.GoTextFace, x, y float64, clr color.Color) {
	shadowOp := &text.DrawOptions{}
	shadowOp.GeoM.Translate(x+2, y+2)
	shadowOp.ColorScale.ScaleWithColor(color.Black)
	shadowOp.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, shadowOp)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}
