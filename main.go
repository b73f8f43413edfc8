package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/flappy/pkg/app"
	"github.com/gonewx/flappy/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "玩法配置文件路径（.yaml/.toml），默认使用内置配置")
	classic    = flag.Bool("classic", false, "经典模式：关闭死亡演出")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Classic:    *classic,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	width, height := gameApp.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", err)
		os.Exit(1)
	}
}
