package components

// PipeComponent 一对上下管道
//
// 上管道占据 [0, Top)，下管道占据 (Bottom, 屏幕底部]，中间是可通过的空隙。
// X 坐标保存在 PositionComponent 中，每帧向左滚动。
type PipeComponent struct {
	Top    float64 // 上管道底边（空隙顶部）
	Bottom float64 // 下管道顶边（空隙底部）= Top + 空隙高度
	Width  float64 // 管道宽度

	// Passed 小鸟越过该管道后置为 true，每根管道只计分一次
	Passed bool
}
