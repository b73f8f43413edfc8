package game

// Cue 音效提示类型
type Cue int

const (
	// CueJump 跳跃
	CueJump Cue = iota
	// CuePoint 越过管道得分
	CuePoint
	// CueHit 撞击
	CueHit
)

// String 返回音效名称
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CuePoint:
		return "point"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// CuePlayer 音效播放接口
//
// 会话只发出提示，不关心由谁播放：桌面端是 AudioManager，终端版是 beep speaker。
type CuePlayer interface {
	PlayCue(cue Cue)
}

// NopCuePlayer 静音实现
type NopCuePlayer struct{}

// PlayCue 不做任何事
func (NopCuePlayer) PlayCue(Cue) {}
