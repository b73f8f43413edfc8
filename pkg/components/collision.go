package components

// CollisionComponent 定义实体的碰撞检测边界框
// 以 PositionComponent 为左上角，向右下方延伸
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
