package entities

import (
	"math/rand"
	"testing"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
)

// TestNewGemEntity 测试单颗宝石实体创建
func TestNewGemEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	gemID := NewGemEntity(em, nil, 600.0, -37.5)

	if gemID == 0 {
		t.Fatal("Expected valid entity ID, got 0")
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, gemID)
	if !ok {
		t.Fatal("Gem entity should have PositionComponent")
	}
	if pos.X != 600.0 || pos.Y != -37.5 {
		t.Errorf("Gem position = (%v, %v), want (600, -37.5)", pos.X, pos.Y)
	}

	if !ecs.HasComponent[*components.GemComponent](em, gemID) {
		t.Error("Gem entity should have GemComponent")
	}

	// 宝石是静止的，不应携带速度组件
	if ecs.HasComponent[*components.VelocityComponent](em, gemID) {
		t.Error("Gem entity should not have VelocityComponent")
	}

	if !ecs.HasComponent[*components.SpriteComponent](em, gemID) {
		t.Error("Gem entity should have SpriteComponent")
	}
}

// TestSpawnGemTrack 测试整条跑道的宝石生成
func TestSpawnGemTrack(t *testing.T) {
	em := ecs.NewEntityManager()
	trackCfg := config.DefaultTrackConfig()
	rng := rand.New(rand.NewSource(trackCfg.Seed))

	ids := SpawnGemTrack(em, nil, trackCfg, rng)

	if len(ids) != trackCfg.GemCount {
		t.Fatalf("Spawned %d gems, want %d", len(ids), trackCfg.GemCount)
	}

	for i, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			t.Fatalf("Gem %d missing PositionComponent", i)
		}

		// 横坐标严格按间距排布
		wantX := trackCfg.FirstGemX + float64(i)*trackCfg.GemSpacing
		if pos.X != wantX {
			t.Errorf("Gem %d X = %v, want %v", i, pos.X, wantX)
		}

		// 纵坐标落在散布区间内（上界开区间）
		if pos.Y < trackCfg.ScatterMin || pos.Y >= trackCfg.ScatterMax {
			t.Errorf("Gem %d Y = %v, outside [%v, %v)", i, pos.Y, trackCfg.ScatterMin, trackCfg.ScatterMax)
		}
	}
}

// TestSpawnGemTrackDeterministic 相同种子必须生成完全相同的跑道
func TestSpawnGemTrackDeterministic(t *testing.T) {
	trackCfg := config.DefaultTrackConfig()

	spawnAndCollect := func() []float64 {
		em := ecs.NewEntityManager()
		rng := rand.New(rand.NewSource(trackCfg.Seed))
		ids := SpawnGemTrack(em, nil, trackCfg, rng)

		ys := make([]float64, 0, len(ids))
		for _, id := range ids {
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			ys = append(ys, pos.Y)
		}
		return ys
	}

	first := spawnAndCollect()
	second := spawnAndCollect()

	if len(first) != len(second) {
		t.Fatalf("Track lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Gem %d Y differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

// TestSpawnGemTrackNilRng rng 为 nil 时应使用配置自带的种子
func TestSpawnGemTrackNilRng(t *testing.T) {
	trackCfg := config.DefaultTrackConfig()

	em1 := ecs.NewEntityManager()
	ids1 := SpawnGemTrack(em1, nil, trackCfg, nil)

	em2 := ecs.NewEntityManager()
	ids2 := SpawnGemTrack(em2, nil, trackCfg, rand.New(rand.NewSource(trackCfg.Seed)))

	if len(ids1) != len(ids2) {
		t.Fatalf("Track lengths differ: %d vs %d", len(ids1), len(ids2))
	}
	for i := range ids1 {
		pos1, _ := ecs.GetComponent[*components.PositionComponent](em1, ids1[i])
		pos2, _ := ecs.GetComponent[*components.PositionComponent](em2, ids2[i])
		if pos1.Y != pos2.Y {
			t.Errorf("Gem %d Y differs: nil rng %v vs seeded rng %v", i, pos1.Y, pos2.Y)
		}
	}
}

// TestSpawnGemTrackEmpty 零宝石配置应生成空跑道
func TestSpawnGemTrackEmpty(t *testing.T) {
	em := ecs.NewEntityManager()
	trackCfg := config.DefaultTrackConfig()
	trackCfg.GemCount = 0

	ids := SpawnGemTrack(em, nil, trackCfg, nil)

	if len(ids) != 0 {
		t.Errorf("Spawned %d gems for empty track, want 0", len(ids))
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d after empty track, want 0", em.EntityCount())
	}
}
