package components

// BirdComponent 标记玩家控制的小鸟，并保存其物理常量
//
// 速度保存在 VelocityComponent.VY 中，X 坐标在整局游戏中保持不变。
type BirdComponent struct {
	Gravity float64 // 每帧重力加速度
	Lift    float64 // 跳跃时直接设置的垂直速度（负值向上）
}
