// Package synth 用 beep 合成游戏音效
//
// 游戏不携带任何音频文件：跳跃、得分、撞击三种提示音都在启动时由振荡器合成，
// 桌面端转换成 PCM 交给 Ebitengine 播放，终端版直接交给 beep/speaker。
package synth

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate 合成使用的采样率，与 Ebitengine 音频上下文一致
const SampleRate = beep.SampleRate(48000)

// 音效时长
const (
	JumpNote1Duration  = 45 * time.Millisecond
	JumpNote2Duration  = 35 * time.Millisecond
	PointNote1Duration = 70 * time.Millisecond
	PointNote2Duration = 160 * time.Millisecond
	HitDuration        = 220 * time.Millisecond

	attack = 5 * time.Millisecond
)

// Jump 跳跃提示音：两个快速上行的短音
func Jump(sr beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		note(sr, 660, JumpNote1Duration),
		note(sr, 880, JumpNote2Duration),
	), 0.35)
}

// Point 得分提示音：B5 -> E6 两音钟声
func Point(sr beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		note(sr, 987.77, PointNote1Duration),
		note(sr, 1318.51, PointNote2Duration),
	), 0.4)
}

// Hit 撞击音：白噪声叠加低频正弦，整体快速衰减
func Hit(sr beep.SampleRate) beep.Streamer {
	thud := note(sr, 110, HitDuration)
	crack := shape(sr, noise(sr, HitDuration, 7), HitDuration, attack, HitDuration-attack)
	return beep.Mix(
		newVolume(thud, 0.6),
		newVolume(crack, 0.5),
	)
}

// Render 把有限长的 streamer 渲染为 16 位小端立体声 PCM
//
// 格式与 ebiten audio.Context.NewPlayerFromBytes 要求一致。
// streamer 必须能在有限时间内结束（例如经过 beep.Take）。
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = appendSample(out, buf[i][0])
			out = appendSample(out, buf[i][1])
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// appendSample 把 [-1, 1] 的浮点采样写成 int16，超出范围的值被截断
func appendSample(out []byte, v float64) []byte {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
}

// note 生成一个带起音和释音的正弦音
func note(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		// 频率超出奈奎斯特范围，退化为静音
		return beep.Silence(sr.N(d))
	}
	return shape(sr, beep.Take(sr.N(d), sine), d, attack, d/2)
}

// noise 生成固定种子的白噪声，保证同一音效每次听起来一致
func noise(sr beep.SampleRate, d time.Duration, seed int64) beep.Streamer {
	rng := rand.New(rand.NewSource(seed))
	remaining := sr.N(d)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if remaining <= 0 {
			return 0, false
		}
		n := len(samples)
		if n > remaining {
			n = remaining
		}
		for i := 0; i < n; i++ {
			v := rng.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		remaining -= n
		return n, true
	})
}

// envelope 线性起音/释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// shape 为 streamer 加上 attack/release 包络
func shape(sr beep.SampleRate, s beep.Streamer, total, att, rel time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   sr.N(att),
		release:  sr.N(rel),
		total:    sr.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 按线性音量缩放；effects.Volume 以 2 为底，0 音量需要单独处理
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
