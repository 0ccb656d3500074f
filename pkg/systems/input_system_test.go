package systems

import (
	"testing"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/entities"
)

// TestVerticalIntent 测试按键状态到垂直意图的折算
func TestVerticalIntent(t *testing.T) {
	tests := []struct {
		name string
		up   bool
		down bool
		want float64
	}{
		{"只按上", true, false, 1},
		{"只按下", false, true, -1},
		{"同时按上下互相抵消", true, true, 0},
		{"不按键", false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerticalIntent(tt.up, tt.down)
			if got != tt.want {
				t.Errorf("VerticalIntent(%v, %v) = %v, want %v", tt.up, tt.down, got, tt.want)
			}
		})
	}
}

// TestSetIntentClamping SetIntent 把越界值截断到 [-1, 1]
func TestSetIntentClamping(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewInputSystem(em)

	s.SetIntent(3.5)
	if s.Intent() != 1 {
		t.Errorf("Intent after SetIntent(3.5) = %v, want 1", s.Intent())
	}

	s.SetIntent(-2)
	if s.Intent() != -1 {
		t.Errorf("Intent after SetIntent(-2) = %v, want -1", s.Intent())
	}

	s.SetIntent(0.5)
	if s.Intent() != 0.5 {
		t.Errorf("Intent after SetIntent(0.5) = %v, want 0.5", s.Intent())
	}
}

// TestInputSystemUpdate 意图写入玩家垂直速度，水平速度不受影响
func TestInputSystemUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewInputSystem(em)
	playerID := entities.NewPlayerEntity(em, nil)

	tests := []struct {
		name   string
		intent float64
		wantVY float64
	}{
		{"向上转向", 1, config.VerticalSpeed},
		{"向下转向", -1, -config.VerticalSpeed},
		{"无输入回正", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetIntent(tt.intent)
			s.Update(config.SimulationTickSeconds)

			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, playerID)
			if !ok {
				t.Fatal("Player missing VelocityComponent")
			}
			if vel.VY != tt.wantVY {
				t.Errorf("Player VY = %v, want %v", vel.VY, tt.wantVY)
			}
			if vel.VX != config.ScrollSpeed {
				t.Errorf("Player VX = %v, want %v (input must not touch horizontal speed)", vel.VX, config.ScrollSpeed)
			}
		})
	}
}

// TestInputSystemUpdateNoPlayer 没有玩家的空世界不应崩溃
func TestInputSystemUpdateNoPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewInputSystem(em)

	s.SetIntent(1)
	s.Update(config.SimulationTickSeconds) // 不应 panic
}
