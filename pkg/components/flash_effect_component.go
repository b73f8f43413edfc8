package components

// FlashEffectComponent 全屏闪白效果
// 撞击瞬间完全不透明，在 Duration 内线性淡出
type FlashEffectComponent struct {
	// Duration 闪白持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒），按真实时间推进，不受慢动作影响
	Elapsed float64

	// Intensity 初始强度（0.0 - 1.0）
	Intensity float64

	// IsActive 是否激活
	IsActive bool
}

// CurrentAlpha 返回当前帧的遮罩透明度
func (f *FlashEffectComponent) CurrentAlpha() float64 {
	if !f.IsActive || f.Duration <= 0 || f.Elapsed >= f.Duration {
		return 0
	}
	return f.Intensity * (1 - f.Elapsed/f.Duration)
}
