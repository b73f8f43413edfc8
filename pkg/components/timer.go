package components

// TimerComponent 通用一次性计时器组件
// 用于处理需要时间延迟的行为（如死亡演出结束）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "death_sequence"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// TimerDeathSequence 死亡演出计时器名称
const TimerDeathSequence = "death_sequence"
