package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/flappy/pkg/game"
	"github.com/gonewx/flappy/pkg/systems"
)

// FPS 终端版帧率，与桌面版的 TPS 一致，保证每帧速率相同
const (
	FPS           = 60
	FrameDuration = time.Second / FPS
)

// Game 终端版主循环
//
// tcell 事件在单独的 goroutine 中读取，通过 channel 交给循环 goroutine；
// 会话只在循环 goroutine 上修改。
type Game struct {
	screen   tcell.Screen
	renderer *Renderer
	session  *game.Session
	driver   *systems.FrameDriver
}

// NewGame 创建终端游戏，session 应处于 StateIdle
func NewGame(screen tcell.Screen, session *game.Session) *Game {
	return &Game{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
		driver:   systems.NewFrameDriver(session),
	}
}

// HandleEvent 处理一个 tcell 事件，返回 false 表示退出
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter, tcell.KeyUp:
			g.action()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ', 'w', 'k':
				g.action()
			case 'q':
				return false
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// action 空格键：开始界面和结束界面上开局，游戏中跳跃
func (g *Game) action() {
	switch g.session.State {
	case game.StateIdle, game.StateEnded:
		if err := g.session.Start(); err != nil {
			log.Printf("[Terminal] Failed to start session: %v", err)
		}
	case game.StateRunning:
		g.session.Jump()
	}
}

// Tick 推进一帧并重绘
func (g *Game) Tick() {
	g.driver.Step(1.0 / FPS)
	g.Draw()
}

// Draw 按会话状态绘制当前界面
func (g *Game) Draw() {
	switch g.session.State {
	case game.StateIdle:
		g.renderer.DrawStart(g.session.HighScore)
	case game.StateEnded:
		g.renderer.DrawGameOver(g.session, g.session.Result())
	default:
		g.renderer.DrawSession(g.session)
	}
}

// Run 运行主循环，直到玩家退出或 ctx 被取消
func (g *Game) Run(ctx context.Context) {
	inputChan := make(chan tcell.Event, 10)
	go g.pumpEvents(ctx, inputChan)

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		// 把本帧之前到达的事件全部处理掉，连续跳跃不会被延后
	drain:
		for {
			select {
			case ev := <-inputChan:
				if !g.HandleEvent(ev) {
					return
				}
			default:
				break drain
			}
		}

		g.Tick()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// pumpEvents 把终端事件转发到 out，屏幕 Fini 或 ctx 取消后返回
func (g *Game) pumpEvents(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			// 屏幕已经 Fini
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
