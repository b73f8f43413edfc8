package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/flappy/pkg/config"
)

// splatterBlobs 每块血迹由多少个随机圆点组成
const splatterBlobs = 14

// Resources 场景共享的绘制资源
//
// 没有图片素材，全部在启动时用 vector 程序化生成，之后只读。
type Resources struct {
	Sky  *ebiten.Image // 整屏渐变天空
	Bird *ebiten.Image // 小鸟精灵，尺寸等于碰撞盒

	TitleFace *text.GoTextFace
	HUDFace   *text.GoTextFace
	HintFace  *text.GoTextFace

	splatterColor color.RGBA
	splatters     map[int64]*ebiten.Image // 按种子缓存的血迹贴花
}

// NewResources 根据玩法配置生成绘制资源
func NewResources(cfg *config.GameConfig) (*Resources, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	splatterColor := color.RGBA{R: 138, G: 3, B: 3, A: 255}
	if len(cfg.Effects.ParticleColors) > 0 {
		if c, err := config.ParseHexColor(cfg.Effects.ParticleColors[0]); err == nil {
			splatterColor = c
		}
	}

	res := &Resources{
		Sky:           newSkyImage(cfg.Screen.Width, cfg.Screen.Height),
		Bird:          newBirdImage(cfg.Bird.Width, cfg.Bird.Height),
		TitleFace:     &text.GoTextFace{Source: source, Size: config.TitleFontSize},
		HUDFace:       &text.GoTextFace{Source: source, Size: config.HUDFontSize},
		HintFace:      &text.GoTextFace{Source: source, Size: config.HintFontSize},
		splatterColor: splatterColor,
		splatters:     make(map[int64]*ebiten.Image),
	}
	log.Printf("[Resources] Generated sky %dx%d, bird %.0fx%.0f", cfg.Screen.Width, cfg.Screen.Height, cfg.Bird.Width, cfg.Bird.Height)
	return res, nil
}

// Splatter 返回指定种子和尺寸的血迹贴花，同一种子只生成一次
func (r *Resources) Splatter(seed int64, size float64) *ebiten.Image {
	if img, ok := r.splatters[seed]; ok {
		return img
	}
	img := newSplatterImage(seed, size, r.splatterColor)
	r.splatters[seed] = img
	return img
}

// ResetSplatters 丢弃上一局的血迹缓存
func (r *Resources) ResetSplatters() {
	for seed, img := range r.splatters {
		img.Deallocate()
		delete(r.splatters, seed)
	}
}

// newSkyImage 自上而下的线性渐变
func newSkyImage(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		vector.DrawFilledRect(img, 0, float32(y), float32(width), 1, lerpColor(config.SkyTopColor, config.SkyBottomColor, t), false)
	}
	return img
}

// newBirdImage 圆形身体 + 眼睛 + 嘴
func newBirdImage(width, height float64) *ebiten.Image {
	w, h := int(width), int(height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(w, h)

	fw, fh := float32(w), float32(h)
	r := min(fw, fh) / 2
	vector.DrawFilledCircle(img, fw/2, fh/2, r, config.BirdColor, true)
	vector.DrawFilledCircle(img, fw*0.68, fh*0.35, r*0.28, config.BirdEyeColor, true)
	vector.DrawFilledCircle(img, fw*0.72, fh*0.35, r*0.12, color.Black, true)
	vector.DrawFilledRect(img, fw*0.75, fh*0.5, fw*0.25, fh*0.16, config.BirdBeakColor, true)
	return img
}

// newSplatterImage 以中心为圆心随机散布的圆点，同一种子结果相同
func newSplatterImage(seed int64, size float64, clr color.RGBA) *ebiten.Image {
	s := int(size)
	if s < 1 {
		s = 1
	}
	img := ebiten.NewImage(s, s)
	rng := rand.New(rand.NewSource(seed))

	half := float32(s) / 2
	vector.DrawFilledCircle(img, half, half, half*0.35, clr, true)
	for i := 0; i < splatterBlobs; i++ {
		dx := (rng.Float32()*2 - 1) * half * 0.75
		dy := (rng.Float32()*2 - 1) * half * 0.75
		radius := half * (0.06 + rng.Float32()*0.16)
		vector.DrawFilledCircle(img, half+dx, half+dy, radius, clr, true)
	}
	return img
}

// lerpColor 两个不透明颜色之间线性插值
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
