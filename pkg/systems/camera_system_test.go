package systems

import (
	"testing"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/entities"
	"github.com/decker502/gemrun/pkg/game"
)

// TestNewCameraSystemCreatesCamera 构造时应自动生成唯一的镜头实体
func TestNewCameraSystemCreatesCamera(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.GetGameState()
	gs.ResetForNewGame()

	cs := NewCameraSystem(em, gs)

	if cs.CameraEntity() == 0 {
		t.Fatal("Camera system should own a valid camera entity")
	}

	cameras := ecs.GetEntitiesWith1[*components.CameraComponent](em)
	if len(cameras) != 1 {
		t.Fatalf("Expected exactly 1 camera entity, got %d", len(cameras))
	}
	if cameras[0] != cs.CameraEntity() {
		t.Error("Query result should match the camera entity the system owns")
	}
}

// TestCameraSystemFollowsPlayer 镜头每个节拍硬对齐到玩家前方
func TestCameraSystemFollowsPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.GetGameState()
	gs.ResetForNewGame()

	playerID := entities.NewPlayerEntity(em, nil)
	cs := NewCameraSystem(em, gs)

	// 把玩家挪到任意位置
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	pos.X = 300
	pos.Y = 150

	cs.Update(config.SimulationTickSeconds)

	wantX := 300 + config.CameraLookAhead
	camPos, _ := ecs.GetComponent[*components.PositionComponent](em, cs.CameraEntity())
	if camPos.X != wantX {
		t.Errorf("Camera X = %v, want %v", camPos.X, wantX)
	}
	if camPos.Y != 0 {
		t.Errorf("Camera Y = %v, want 0 (vertical steering must not move the camera)", camPos.Y)
	}
	if gs.CameraX != wantX {
		t.Errorf("GameState.CameraX = %v, want %v", gs.CameraX, wantX)
	}
}

// TestCameraSystemNoPlayer 没有玩家时镜头保持原位
func TestCameraSystemNoPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.GetGameState()
	gs.ResetForNewGame()

	cs := NewCameraSystem(em, gs)
	before := gs.CameraX

	cs.Update(config.SimulationTickSeconds)

	if gs.CameraX != before {
		t.Errorf("CameraX changed to %v without a player, want %v", gs.CameraX, before)
	}
}
