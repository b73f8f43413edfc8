package components

// SplatterComponent 撞击点的血迹贴花
//
// Alpha 只在创建时设置一次，不会衰减：血迹一直保留到本局结束。
type SplatterComponent struct {
	Size  float64 // 贴花边长（像素），以 PositionComponent 为中心
	Alpha float64
	Seed  int64 // 形状随机种子，渲染端据此生成稳定的溅射形状
}
