package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// 窗口与绘制相关的常量
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// HUDFontSize 计分文字大小
	HUDFontSize = 20.0
	// HUDScoreX, HUDScoreY 计分文字位置（左上角）
	HUDScoreX = 20.0
	HUDScoreY = 20.0

	// TitleFontSize 开始/结束界面标题文字大小
	TitleFontSize = 30.0
	// HintFontSize 提示文字大小
	HintFontSize = 14.0
)

// 颜色配置
var (
	SkyTopColor    = color.RGBA{R: 78, G: 192, B: 202, A: 255}
	SkyBottomColor = color.RGBA{R: 222, G: 246, B: 232, A: 255}
	PipeColor      = color.RGBA{R: 84, G: 184, B: 42, A: 255}
	PipeEdgeColor  = color.RGBA{R: 46, G: 112, B: 20, A: 255}
	BirdColor      = color.RGBA{R: 250, G: 200, B: 40, A: 255}
	BirdEyeColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BirdBeakColor  = color.RGBA{R: 240, G: 110, B: 30, A: 255}
	PanelColor     = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// ParseHexColor 解析 "#RRGGBB" 格式颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
