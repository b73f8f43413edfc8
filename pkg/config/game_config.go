package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/flappy/pkg/embedded"
)

// DefaultConfigPath 内置默认配置在 embed.FS 中的路径
const DefaultConfigPath = "data/flappy.yaml"

// GameConfig 游戏玩法配置
//
// 所有速率都以"每帧"为单位（Ebitengine 固定 60 TPS），
// 时长类字段以秒为单位，由帧循环按真实时间推进。
//
// 配置文件位置: data/flappy.yaml（也支持 .toml）
type GameConfig struct {
	Screen  ScreenConfig  `yaml:"screen" toml:"screen"`
	Bird    BirdConfig    `yaml:"bird" toml:"bird"`
	Pipes   PipeConfig    `yaml:"pipes" toml:"pipes"`
	Effects EffectsConfig `yaml:"effects" toml:"effects"`
}

// ScreenConfig 视口尺寸（逻辑像素）
type ScreenConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// BirdConfig 小鸟初始状态和物理参数
type BirdConfig struct {
	X       float64 `yaml:"x" toml:"x"`             // 固定X坐标
	Y       float64 `yaml:"y" toml:"y"`             // 开局Y坐标
	Width   float64 `yaml:"width" toml:"width"`     // 碰撞盒宽度
	Height  float64 `yaml:"height" toml:"height"`   // 碰撞盒高度
	Gravity float64 `yaml:"gravity" toml:"gravity"` // 每帧重力加速度
	Lift    float64 `yaml:"lift" toml:"lift"`       // 跳跃时直接设置的速度（负值向上）
}

// PipeConfig 管道生成与滚动参数
type PipeConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Gap         float64 `yaml:"gap" toml:"gap"`                 // 上下管道之间的空隙高度
	ScrollSpeed float64 `yaml:"scrollSpeed" toml:"scrollSpeed"` // 每帧向左移动的像素
	SpawnChance float64 `yaml:"spawnChance" toml:"spawnChance"` // 每帧生成概率
}

// EffectsConfig 死亡演出参数（增强版）
type EffectsConfig struct {
	// Enabled 为 false 时是经典版：碰撞后直接结束，没有任何演出
	Enabled bool `yaml:"enabled" toml:"enabled"`

	ParticleCount     int      `yaml:"particleCount" toml:"particleCount"`
	ParticleGravity   float64  `yaml:"particleGravity" toml:"particleGravity"`
	ParticleFade      float64  `yaml:"particleFade" toml:"particleFade"` // 每帧透明度衰减
	ParticleMinRadius float64  `yaml:"particleMinRadius" toml:"particleMinRadius"`
	ParticleMaxRadius float64  `yaml:"particleMaxRadius" toml:"particleMaxRadius"`
	ParticleSpeedX    float64  `yaml:"particleSpeedX" toml:"particleSpeedX"` // 水平速度范围 [-v, v)
	ParticleMinLift   float64  `yaml:"particleMinLift" toml:"particleMinLift"`
	ParticleMaxLift   float64  `yaml:"particleMaxLift" toml:"particleMaxLift"`
	ParticleColors    []string `yaml:"particleColors" toml:"particleColors"` // 两种颜色，#RRGGBB

	SplatterSize  float64 `yaml:"splatterSize" toml:"splatterSize"`
	SplatterAlpha float64 `yaml:"splatterAlpha" toml:"splatterAlpha"`

	ShakeIntensity float64 `yaml:"shakeIntensity" toml:"shakeIntensity"`
	ShakeDecay     float64 `yaml:"shakeDecay" toml:"shakeDecay"`

	SlowMotion    float64 `yaml:"slowMotion" toml:"slowMotion"`       // 死亡演出期间的速度倍率
	FlashDuration float64 `yaml:"flashDuration" toml:"flashDuration"` // 秒
	DeathDelay    float64 `yaml:"deathDelay" toml:"deathDelay"`       // 秒
}

// Default 返回内置默认配置
//
// 数值与 data/flappy.yaml 保持一致，在嵌入资源不可用时（单元测试、移动端未复制数据）兜底。
func Default() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{Width: GameWindowWidth, Height: GameWindowHeight},
		Bird: BirdConfig{
			X:       80,
			Y:       200,
			Width:   40,
			Height:  40,
			Gravity: 0.6,
			Lift:    -10,
		},
		Pipes: PipeConfig{
			Width:       60,
			Gap:         180,
			ScrollSpeed: 3,
			SpawnChance: 0.02,
		},
		Effects: EffectsConfig{
			Enabled:           true,
			ParticleCount:     40,
			ParticleGravity:   0.3,
			ParticleFade:      0.02,
			ParticleMinRadius: 2,
			ParticleMaxRadius: 6,
			ParticleSpeedX:    5,
			ParticleMinLift:   3,
			ParticleMaxLift:   9,
			ParticleColors:    []string{"#8a0303", "#c40000"},
			SplatterSize:      120,
			SplatterAlpha:     0.8,
			ShakeIntensity:    20,
			ShakeDecay:        0.9,
			SlowMotion:        0.3,
			FlashDuration:     0.15,
			DeathDelay:        0.8,
		},
	}
}

// Load 从磁盘加载配置文件
//
// 根据扩展名选择解析器：.yaml/.yml 使用 yaml.v3，.toml 使用 BurntSushi/toml。
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// LoadEmbedded 从嵌入资源加载默认配置
//
// embedded 包未初始化时直接返回 Default()。
func LoadEmbedded() (*GameConfig, error) {
	if !embedded.IsInitialized() {
		return Default(), nil
	}
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return Parse(data, filepath.Ext(DefaultConfigPath))
}

// Resolve 按命令行参数加载配置：path 为空时使用嵌入的默认配置
func Resolve(path string) (*GameConfig, error) {
	if path == "" {
		return LoadEmbedded()
	}
	return Load(path)
}

// Parse 解析配置内容，ext 为文件扩展名（含点号）
func Parse(data []byte, ext string) (*GameConfig, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s (supported: .yaml, .yml, .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 只拒绝会让游戏无法运行的值；随机生成的管道超出屏幕等情况不在这里处理。
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		return fmt.Errorf("bird size must be positive, got %.1fx%.1f", c.Bird.Width, c.Bird.Height)
	}
	if c.Bird.Lift >= 0 {
		return fmt.Errorf("bird lift must be negative (upward), got %.2f", c.Bird.Lift)
	}
	if c.Pipes.Width <= 0 || c.Pipes.Gap <= 0 {
		return fmt.Errorf("pipe width and gap must be positive, got width=%.1f gap=%.1f", c.Pipes.Width, c.Pipes.Gap)
	}
	if c.Pipes.SpawnChance < 0 || c.Pipes.SpawnChance > 1 {
		return fmt.Errorf("pipe spawnChance must be in [0, 1], got %.3f", c.Pipes.SpawnChance)
	}

	if !c.Effects.Enabled {
		return nil
	}
	e := c.Effects
	if e.ParticleCount < 0 {
		return fmt.Errorf("particleCount must not be negative, got %d", e.ParticleCount)
	}
	if e.ParticleFade <= 0 {
		return fmt.Errorf("particleFade must be positive, got %.3f", e.ParticleFade)
	}
	if e.ParticleMinRadius > e.ParticleMaxRadius {
		return fmt.Errorf("particle radius range invalid: min(%.1f) > max(%.1f)", e.ParticleMinRadius, e.ParticleMaxRadius)
	}
	if e.ParticleMinLift > e.ParticleMaxLift {
		return fmt.Errorf("particle lift range invalid: min(%.1f) > max(%.1f)", e.ParticleMinLift, e.ParticleMaxLift)
	}
	if len(e.ParticleColors) == 0 {
		return fmt.Errorf("particleColors must not be empty")
	}
	for _, hex := range e.ParticleColors {
		if _, err := ParseHexColor(hex); err != nil {
			return err
		}
	}
	if e.ShakeDecay < 0 || e.ShakeDecay >= 1 {
		return fmt.Errorf("shakeDecay must be in [0, 1), got %.2f", e.ShakeDecay)
	}
	if e.SlowMotion <= 0 {
		return fmt.Errorf("slowMotion must be positive, got %.2f", e.SlowMotion)
	}
	if e.DeathDelay < 0 || e.FlashDuration < 0 {
		return fmt.Errorf("durations must not be negative (deathDelay=%.2f, flashDuration=%.2f)", e.DeathDelay, e.FlashDuration)
	}
	return nil
}
