package components

import "image/color"

// ParticleComponent 死亡时喷出的单个血液粒子
//
// 位置保存在 PositionComponent 中（圆心）。
// 每帧：VelocityY += Gravity，位置按速度积分，Alpha 减少 Fade；
// Alpha <= 0 时在同一帧被销毁，不会以负透明度渲染。
type ParticleComponent struct {
	VelocityX float64
	VelocityY float64
	Gravity   float64

	Radius float64
	Color  color.RGBA

	Alpha float64 // 0 = 完全透明, 1 = 完全不透明
	Fade  float64 // 每帧透明度衰减量
}
