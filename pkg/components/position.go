package components

// PositionComponent 存储实体的屏幕坐标（像素）
//
// 小鸟和管道使用左上角坐标，粒子和血迹使用中心坐标。
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的速度（像素/帧）
type VelocityComponent struct {
	VX float64
	VY float64
}
