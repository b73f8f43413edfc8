package utils

import "math"

// 界面动画用的缓动函数
//
// 输入进度 t 会先被限制在 [0, 1]，返回值同样在 [0, 1]。

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutCubic 三次方缓出：f(t) = 1 - (1-t)³
// 结束界面面板滑入使用
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出：f(t) = (1 - cos(πt)) / 2
func EaseInOutSine(t float64) float64 {
	t = Clamp01(t)
	return (1 - math.Cos(math.Pi*t)) / 2
}

// PingPong 把不断增长的时间映射为 0 → 1 → 0 往返的进度
// period 为一次往返的时长（秒），<= 0 时返回 0
func PingPong(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(elapsed, period) / period
	if phase < 0 {
		phase += 1
	}
	if phase < 0.5 {
		return phase * 2
	}
	return 2 - phase*2
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
