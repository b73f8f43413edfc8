package terminal

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/flappy/internal/synth"
	"github.com/gonewx/flappy/pkg/game"
)

// SpeakerCuePlayer 通过 beep speaker 播放提示音
// 每次播放都是新的 streamer，speaker 内部混音，可以重叠
type SpeakerCuePlayer struct {
	sampleRate beep.SampleRate
}

// NewSpeakerCuePlayer 初始化扬声器
// 失败时返回错误，调用方应退化为静音
func NewSpeakerCuePlayer() (*SpeakerCuePlayer, error) {
	sr := synth.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &SpeakerCuePlayer{sampleRate: sr}, nil
}

// PlayCue 播放提示音
func (p *SpeakerCuePlayer) PlayCue(cue game.Cue) {
	var s beep.Streamer
	switch cue {
	case game.CueJump:
		s = synth.Jump(p.sampleRate)
	case game.CuePoint:
		s = synth.Point(p.sampleRate)
	case game.CueHit:
		s = synth.Hit(p.sampleRate)
	default:
		log.Printf("[Terminal] Unknown cue %d", cue)
		return
	}
	speaker.Play(s)
}

// Close 关闭扬声器
func (p *SpeakerCuePlayer) Close() {
	speaker.Close()
}
