// verify_gameplay 无界面跑若干局，验证状态流转、计分和死亡演出
//
// 自动驾驶策略：小鸟低于下一根管道空隙中心且正在下落时跳跃。
// 每局结束打印状态时间线，--report 时把汇总写成 YAML。
//
// 用法:
//
//	go run ./cmd/verify_gameplay --rounds 5 --seed 42 --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
	"github.com/gonewx/flappy/pkg/game"
	"github.com/gonewx/flappy/pkg/systems"
)

const frameTime = 1.0 / 60.0

var (
	verbose    = flag.Bool("verbose", false, "显示会话和系统日志")
	rounds     = flag.Int("rounds", 3, "运行局数")
	maxFrames  = flag.Int("frames", 60*60, "每局最多帧数")
	seed       = flag.Int64("seed", 42, "随机种子")
	classic    = flag.Bool("classic", false, "经典模式：关闭死亡演出")
	configPath = flag.String("config", "", "玩法配置文件路径")
	reportPath = flag.String("report", "", "YAML 汇总输出路径")
	sloppy     = flag.Float64("sloppy", 0.02, "每帧随机漏跳的概率，保证每局最终会结束")
)

// roundReport 单局汇总
type roundReport struct {
	Round          int    `yaml:"round"`
	Score          int    `yaml:"score"`
	HighScore      int    `yaml:"highScore"`
	NewRecord      bool   `yaml:"newRecord"`
	Frames         int    `yaml:"frames"`
	DeathFrame     int    `yaml:"deathFrame"`
	DeathSequence  int    `yaml:"deathSequenceFrames"`
	MaxParticles   int    `yaml:"maxParticles"`
	PipesSpawned   int    `yaml:"pipesSpawned"`
	FinalState     string `yaml:"finalState"`
	TimedOut       bool   `yaml:"timedOut"`
	ClassicVariant bool   `yaml:"classic"`
}

// memoryStore 只在本进程内保存最高分
type memoryStore struct{ best int }

func (m *memoryStore) HighScore() int { return m.best }

func (m *memoryStore) SaveHighScore(score int) error {
	m.best = score
	return nil
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "玩法配置加载失败: %v\n", err)
		os.Exit(1)
	}
	if *classic {
		cfg.Effects.Enabled = false
	}

	rng := rand.New(rand.NewSource(*seed))
	session := game.NewSession(cfg, &memoryStore{}, nil, rng)
	driver := systems.NewFrameDriver(session)

	var reports []roundReport
	for i := 1; i <= *rounds; i++ {
		r := playRound(session, driver, rng, i)
		reports = append(reports, r)
		fmt.Printf("round %d: score=%d high=%d newRecord=%v frames=%d death@%d deathSeq=%d particles=%d pipes=%d state=%s\n",
			r.Round, r.Score, r.HighScore, r.NewRecord, r.Frames, r.DeathFrame, r.DeathSequence, r.MaxParticles, r.PipesSpawned, r.FinalState)
	}

	if *reportPath != "" {
		data, err := yaml.Marshal(reports)
		if err != nil {
			fmt.Fprintf(os.Stderr, "汇总序列化失败: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*reportPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "汇总写入失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("report written to %s\n", *reportPath)
	}
}

// playRound 从开局跑到 Ended 或帧数上限
func playRound(session *game.Session, driver *systems.FrameDriver, rng *rand.Rand, round int) roundReport {
	report := roundReport{Round: round, ClassicVariant: !session.Config.Effects.Enabled}

	if err := session.Start(); err != nil {
		log.Printf("[Verify] Failed to start round %d: %v", round, err)
		report.FinalState = session.State.String()
		return report
	}

	seen := make(map[ecs.EntityID]bool)
	prev := session.State
	for frame := 1; frame <= *maxFrames; frame++ {
		if session.State == game.StateRunning && shouldJump(session) && rng.Float64() >= *sloppy {
			session.Jump()
		}

		driver.Step(frameTime)
		report.Frames = frame

		for _, id := range ecs.GetEntitiesWith1[*components.PipeComponent](session.EntityManager) {
			seen[id] = true
		}
		if n := len(ecs.GetEntitiesWith1[*components.ParticleComponent](session.EntityManager)); n > report.MaxParticles {
			report.MaxParticles = n
		}

		if session.State != prev {
			log.Printf("[Verify] frame %d: %s -> %s (score=%d)", frame, prev, session.State, session.Score)
			if prev == game.StateRunning {
				report.DeathFrame = frame
			}
			prev = session.State
		}
		if session.State == game.StateDeathSequence {
			report.DeathSequence++
		}
		if session.State == game.StateEnded {
			break
		}
	}

	result := session.Result()
	report.Score = session.Score
	report.HighScore = session.HighScore
	report.NewRecord = result.NewRecord
	report.PipesSpawned = len(seen)
	report.FinalState = session.State.String()
	report.TimedOut = session.State != game.StateEnded
	return report
}

// shouldJump 小鸟中心低于下一根管道空隙中心且正在下落
func shouldJump(session *game.Session) bool {
	em := session.EntityManager
	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, session.BirdID)
	if !ok || vel.VY < 0 {
		return false
	}
	birdX, birdY := session.BirdCenter()

	target := float64(session.Config.Screen.Height) / 2
	nearest := -1.0
	for _, id := range ecs.GetEntitiesWith2[*components.PipeComponent, *components.PositionComponent](em) {
		pipe, _ := ecs.GetComponent[*components.PipeComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X+pipe.Width < birdX {
			continue
		}
		if nearest < 0 || pos.X < nearest {
			nearest = pos.X
			target = (pipe.Top + pipe.Bottom) / 2
		}
	}
	return birdY > target
}
