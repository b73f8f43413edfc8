package entities

import (
	"testing"

	"github.com/gonewx/flappy/pkg/components"
	"github.com/gonewx/flappy/pkg/config"
	"github.com/gonewx/flappy/pkg/ecs"
)

func TestNewPipe(t *testing.T) {
	tests := []struct {
		name       string
		top        float64
		wantBottom float64
	}{
		{"normal gap", 100, 280},
		{"top at zero", 0, 180},
		// 空隙超出屏幕也照样接受
		{"gap past screen bottom", 590, 770},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := NewPipe(em, config.Default().Pipes, 800, tt.top)
			if err != nil {
				t.Fatalf("NewPipe() error: %v", err)
			}

			pipe, ok := ecs.GetComponent[*components.PipeComponent](em, id)
			if !ok {
				t.Fatal("pipe component missing")
			}
			if pipe.Top != tt.top || pipe.Bottom != tt.wantBottom {
				t.Errorf("gap: got [%v, %v], want [%v, %v]", pipe.Top, pipe.Bottom, tt.top, tt.wantBottom)
			}
			if pipe.Width != 60 || pipe.Passed {
				t.Errorf("unexpected pipe %+v", pipe)
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != 800 {
				t.Errorf("x: got %v, want 800", pos.X)
			}
		})
	}
}

func TestNewPipeNilManager(t *testing.T) {
	if _, err := NewPipe(nil, config.Default().Pipes, 0, 0); err == nil {
		t.Error("expected error for nil entity manager")
	}
}
