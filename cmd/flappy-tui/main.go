// flappy-tui 终端版，用 tcell 绘制，玩法与桌面版共用同一套会话和系统
//
// 用法:
//
//	go run ./cmd/flappy-tui [--classic] [--mute] [--config flappy.yaml] [--log flappy.log]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/flappy/internal/terminal"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/game"
)

var (
	verbose    = flag.Bool("verbose", false, "记录详细日志（需要配合 --log）")
	logPath    = flag.String("log", "", "日志文件路径，终端被游戏占用，日志不能写到 stderr")
	configPath = flag.String("config", "", "玩法配置文件路径（.yaml/.toml），默认使用内置配置")
	classic    = flag.Bool("classic", false, "经典模式：关闭死亡演出")
	mute       = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	closeLog, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flappy-tui: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging 只有同时指定 --verbose 和 --log 时才输出日志
func setupLogging() (func(), error) {
	if !*verbose || *logPath == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

func run() error {
	gameConfig, err := config.Resolve(*configPath)
	if err != nil {
		return fmt.Errorf("玩法配置加载失败: %w", err)
	}
	if *classic {
		gameConfig.Effects.Enabled = false
	}

	var cues game.CuePlayer
	if !*mute {
		player, err := terminal.NewSpeakerCuePlayer()
		if err != nil {
			log.Printf("[TUI] Warning: Audio unavailable, running muted: %v", err)
		} else {
			defer player.Close()
			cues = player
		}
	}

	var gm *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "flappy"}); err != nil {
		log.Printf("[TUI] Warning: Failed to open storage, high score will not persist: %v", err)
	} else {
		gm = m
	}
	session := game.NewSession(gameConfig, game.NewHighScoreManager(gm), cues, nil)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	terminal.NewGame(screen, session).Run(ctx)
	return nil
}
