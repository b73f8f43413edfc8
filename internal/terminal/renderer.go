// Package terminal 用 tcell 在终端里绘制游戏
//
// 逻辑世界仍是 800x600 像素，绘制时按比例映射到终端字符格。
// 只读取会话状态，不修改任何东西。
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
)

// 绘制用字符
const (
	birdRune     = '@'
	pipeRune     = '█'
	splatterRune = '░'
	particleRune = '*'
	dropRune     = '.'
)

// Renderer 终端渲染器
type Renderer struct {
	screen tcell.Screen

	skyStyle      tcell.Style
	pipeStyle     tcell.Style
	birdStyle     tcell.Style
	splatterStyle tcell.Style
	flashStyle    tcell.Style
	hudStyle      tcell.Style
}

// NewRenderer 创建渲染器，screen 需要已经 Init
func NewRenderer(screen tcell.Screen) *Renderer {
	sky := tcell.StyleDefault.Background(toTcell(config.SkyTopColor))
	return &Renderer{
		screen:        screen,
		skyStyle:      sky,
		pipeStyle:     sky.Foreground(toTcell(config.PipeColor)),
		birdStyle:     sky.Foreground(toTcell(config.BirdColor)).Bold(true),
		splatterStyle: sky.Foreground(tcell.NewRGBColor(138, 3, 3)),
		flashStyle:    tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorWhite),
		hudStyle:      sky.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// DrawSession 绘制一帧游戏画面
func (r *Renderer) DrawSession(s *game.Session) {
	r.drawWorld(s)
	r.screen.Show()
}

// drawWorld 画到后台缓冲，不刷新屏幕
// 顺序：背景 → 小鸟 → 管道 → 血迹 → 粒子 → 闪白 → 计分
func (r *Renderer) drawWorld(s *game.Session) {
	r.fill(r.skyStyle)

	em := s.EntityManager
	world := s.Config.Screen
	ox, oy := s.ShakeX, s.ShakeY

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.BirdID); ok {
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, s.BirdID); ok {
			r.fillRect(world, pos.X+ox, pos.Y+oy, col.Width, col.Height, birdRune, r.birdStyle)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PipeComponent, *components.PositionComponent](em) {
		pipe, _ := ecs.GetComponent[*components.PipeComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		r.fillRect(world, pos.X+ox, oy, pipe.Width, pipe.Top, pipeRune, r.pipeStyle)
		r.fillRect(world, pos.X+ox, pipe.Bottom+oy, pipe.Width, float64(world.Height)-pipe.Bottom, pipeRune, r.pipeStyle)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SplatterComponent, *components.PositionComponent](em) {
		splat, _ := ecs.GetComponent[*components.SplatterComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		half := splat.Size / 2
		r.fillRect(world, pos.X-half+ox, pos.Y-half+oy, splat.Size, splat.Size, splatterRune, r.splatterStyle)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if p.Alpha <= 0 {
			continue
		}
		ch := particleRune
		if p.Alpha < 0.5 {
			ch = dropRune
		}
		x, y := r.toCell(world, pos.X+ox, pos.Y+oy)
		r.screen.SetContent(x, y, ch, nil, r.skyStyle.Foreground(toTcell(p.Color)))
	}

	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](em) {
		flash, _ := ecs.GetComponent[*components.FlashEffectComponent](em, id)
		// 终端没有透明度，前半段整屏发白
		if flash.CurrentAlpha() > 0.5 {
			r.fill(r.flashStyle)
		}
	}

	r.drawText(1, 0, fmt.Sprintf("Score: %d", s.Score), r.hudStyle)
}

// DrawStart 开始界面
func (r *Renderer) DrawStart(highScore int) {
	r.fill(r.skyStyle)
	r.drawCentered(-2, "FLAPPY", r.hudStyle)
	r.drawCentered(0, "Press SPACE to start", r.hudStyle)
	r.drawCentered(2, fmt.Sprintf("High Score: %d", highScore), r.hudStyle)
	r.drawCentered(4, "ESC to quit", r.skyStyle.Foreground(tcell.ColorGray))
	r.screen.Show()
}

// DrawGameOver 在最后一帧之上叠加结束面板
func (r *Renderer) DrawGameOver(s *game.Session, result game.Result) {
	r.drawWorld(s)
	panel := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	r.drawCentered(-2, "  GAME OVER  ", panel.Bold(true))
	r.drawCentered(0, " "+result.ScoreText()+" ", panel)
	r.drawCentered(1, " "+result.HighScoreText()+" ", panel)
	r.drawCentered(3, " SPACE to restart ", panel)
	r.screen.Show()
}

// toCell 把世界坐标映射到字符格
func (r *Renderer) toCell(world config.ScreenConfig, x, y float64) (int, int) {
	cols, rows := r.screen.Size()
	cx := int(math.Floor(x * float64(cols) / float64(world.Width)))
	cy := int(math.Floor(y * float64(rows) / float64(world.Height)))
	return cx, cy
}

// fillRect 填充世界坐标中的矩形，至少覆盖一个字符格
func (r *Renderer) fillRect(world config.ScreenConfig, x, y, w, h float64, ch rune, style tcell.Style) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := r.toCell(world, x, y)
	x1, y1 := r.toCell(world, x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	cols, rows := r.screen.Size()
	for cy := max(y0, 0); cy < min(y1, rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, cols); cx++ {
			r.screen.SetContent(cx, cy, ch, nil, style)
		}
	}
}

func (r *Renderer) fill(style tcell.Style) {
	cols, rows := r.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawCentered 以屏幕中心为基准，dy 为行偏移
func (r *Renderer) drawCentered(dy int, text string, style tcell.Style) {
	cols, rows := r.screen.Size()
	x := (cols - len([]rune(text))) / 2
	r.drawText(x, rows/2+dy, text, style)
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
