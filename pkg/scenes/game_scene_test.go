package scenes

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/entities"
	"github.com/decker502/gemrun/pkg/game"
)

// testFrameDelta 测试中模拟渲染帧的时长（60FPS）
const testFrameDelta = 1.0 / 60.0

// newTestScene 创建无头测试场景
// 资源管理器为 nil（实体无贴图），输入切换到脚本模式避免采样键盘
func newTestScene(seed int64) *GameScene {
	scene := NewGameScene(nil, "endless-1", seed, false)
	scene.SetScriptedIntent(0)
	return scene
}

// clearGems 移除默认跑道生成的全部宝石，便于逐颗摆放测试宝石
func clearGems(s *GameScene) {
	for _, id := range ecs.GetEntitiesWith1[*components.GemComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
}

// advanceFrames 以固定帧时长推进场景 n 帧
func advanceFrames(s *GameScene, n int) {
	for i := 0; i < n; i++ {
		s.Update(testFrameDelta)
	}
}

// TestGameSceneImplementsInterfaces 验证 GameScene 实现场景接口
func TestGameSceneImplementsInterfaces(t *testing.T) {
	var _ game.Scene = (*GameScene)(nil)
	var _ game.Saveable = (*GameScene)(nil)
}

// TestNewGameSceneDefaults 验证场景初始状态
func TestNewGameSceneDefaults(t *testing.T) {
	scene := newTestScene(config.DefaultTrackSeed)

	if scene.spawnedGems != 100 {
		t.Errorf("默认跑道宝石数 = %d, want 100", scene.spawnedGems)
	}
	if scene.liveGemCount() != 100 {
		t.Errorf("存活宝石数 = %d, want 100", scene.liveGemCount())
	}

	snap := scene.Snapshot()
	if snap.Score != 0 {
		t.Errorf("初始得分 = %d, want 0", snap.Score)
	}
	if snap.Health != config.PlayerMaxHealth || snap.MaxHealth != config.PlayerMaxHealth {
		t.Errorf("初始生命 = %d/%d, want %d/%d",
			snap.Health, snap.MaxHealth, config.PlayerMaxHealth, config.PlayerMaxHealth)
	}
	if snap.Phase != game.PhasePlaying {
		t.Errorf("初始阶段 = %v, want Playing", snap.Phase)
	}
	if snap.PlayerX != config.PlayerStartX || snap.PlayerY != config.PlayerStartY {
		t.Errorf("玩家出生点 = (%v, %v), want (%v, %v)",
			snap.PlayerX, snap.PlayerY, config.PlayerStartX, config.PlayerStartY)
	}
	wantCamera := config.PlayerStartX + config.CameraLookAhead
	if snap.CameraX != wantCamera {
		t.Errorf("初始镜头 = %v, want %v", snap.CameraX, wantCamera)
	}
}

// TestGameSceneScrollRate 验证横向卷动与节拍数严格一致
// 每个节拍推进的距离是二进制精确值，因此可以按节拍数做精确断言
func TestGameSceneScrollRate(t *testing.T) {
	scene := newTestScene(config.DefaultTrackSeed)
	clearGems(scene)

	advanceFrames(scene, 60)

	snap := scene.Snapshot()
	wantX := float64(scene.TickCount()) * config.ScrollSpeed * config.SimulationTickSeconds
	if snap.PlayerX != wantX {
		t.Errorf("玩家 X = %v, want %v (%d 节拍)", snap.PlayerX, wantX, scene.TickCount())
	}
	if snap.PlayerY != 0 {
		t.Errorf("无输入时玩家 Y = %v, want 0", snap.PlayerY)
	}

	// 60 帧约等于 1 秒，节拍换算的浮点零头最多差一个节拍的距离
	oneTickDistance := config.ScrollSpeed * config.SimulationTickSeconds
	if math.Abs(snap.PlayerX-300.0) > oneTickDistance+1e-9 {
		t.Errorf("1 秒后玩家 X = %v, 期望 300 附近（±%v）", snap.PlayerX, oneTickDistance)
	}

	if snap.CameraX != snap.PlayerX+config.CameraLookAhead {
		t.Errorf("镜头 X = %v, want 玩家 X + %v = %v",
			snap.CameraX, config.CameraLookAhead, snap.PlayerX+config.CameraLookAhead)
	}
}

// TestGameSceneSteering 验证脚本输入驱动的垂直操控
func TestGameSceneSteering(t *testing.T) {
	scene := newTestScene(config.DefaultTrackSeed)
	clearGems(scene)

	scene.SetScriptedIntent(1)
	advanceFrames(scene, 60)

	snap := scene.Snapshot()
	wantY := float64(scene.TickCount()) * config.VerticalSpeed * config.SimulationTickSeconds
	if snap.PlayerY != wantY {
		t.Errorf("向上飞行后玩家 Y = %v, want %v", snap.PlayerY, wantY)
	}

	// 转向向下飞同样的帧数，应该回到出发高度
	upTicks := scene.TickCount()
	scene.SetScriptedIntent(-1)
	advanceFrames(scene, 60)

	downTicks := scene.TickCount() - upTicks
	snap = scene.Snapshot()
	wantY = float64(int64(upTicks)-int64(downTicks)) * config.VerticalSpeed * config.SimulationTickSeconds
	if snap.PlayerY != wantY {
		t.Errorf("折返后玩家 Y = %v, want %v", snap.PlayerY, wantY)
	}
}

// TestGameSceneCollectsGem 验证拾取链路：得分+1、生命-1、宝石离场
func TestGameSceneCollectsGem(t *testing.T) {
	scene := newTestScene(config.DefaultTrackSeed)
	clearGems(scene)
	entities.NewGemEntity(scene.entityManager, nil, 600, 0)

	// 2.33 秒后玩家已飞过宝石的拾取窗口 (570, 630)
	advanceFrames(scene, 140)

	snap := scene.Snapshot()
	if snap.Score != 1 {
		t.Errorf("得分 = %d, want 1", snap.Score)
	}
	if snap.Health != config.PlayerMaxHealth-1 {
		t.Errorf("生命 = %d, want %d", snap.Health, config.PlayerMaxHealth-1)
	}
	if snap.Phase != game.PhasePlaying {
		t.Errorf("阶段 = %v, want Playing", snap.Phase)
	}
	if scene.liveGemCount() != 0 {
		t.Errorf("拾取后存活宝石数 = %d, want 0", scene.liveGemCount())
	}
}

// TestGameSceneSparkleBurstOnPickup 验证拾取触发闪光粒子并最终消散
func TestGameSceneSparkleBurstOnPickup(t *testing.T) {
	scene := newTestScene(config.DefaultTrackSeed)
	clearGems(scene)
	entities.NewGemEntity(scene.entityManager, nil, 300, 0)

	// 拾取发生在 1 秒附近，粒子在拾取帧末尾生成
	advanceFrames(scene, 70)

	sparkles := ecs.GetEntitiesWith1[*components.SparkleComponent](scene.entityManager)
	if len(sparkles) != entities.SparkleBurstCount {
		t.Errorf("拾取后粒子数 = %d, want %d", len(sparkles), entities.SparkleBurstCount)
	}

	// 粒子寿命不超过 0.6 秒，再推进 1 秒后应全部消散
	advanceFrames(scene, 60)
	sparkles = ecs.GetEntitiesWith1[*components.SparkleComponent](scene.entityManager)
	if len(sparkles) != 0 {
		t.Errorf("消散后粒子数 = %d, want 0", len(sparkles))
	}
}

// TestGameSceneGameOverFreezesWorld 验证生命归零后世界冻结
// 拾取三颗宝石耗尽生命，之后玩家、镜头、得分都不再变化
func TestGameSceneGameOverFreezesWorld(t *testing.T) {
	scene := newTestScene(config.DefaultTrackSeed)
	clearGems(scene)
	entities.NewGemEntity(scene.entityManager, nil, 300, 0)
	entities.NewGemEntity(scene.entityManager, nil, 400, 0)
	entities.NewGemEntity(scene.entityManager, nil, 500, 0)

	advanceFrames(scene, 120)

	before := scene.Snapshot()
	if before.Phase != game.PhaseGameOver {
		t.Fatalf("阶段 = %v, want GameOver (快照: %s)", before.Phase, before)
	}
	if before.Score != 3 {
		t.Errorf("得分 = %d, want 3", before.Score)
	}
	if before.Health != 0 {
		t.Errorf("生命 = %d, want 0", before.Health)
	}

	// 游戏结束后节拍照常流逝，但玩法阶段全部停摆
	tickBefore := scene.TickCount()
	advanceFrames(scene, 60)
	after := scene.Snapshot()

	if after != before {
		t.Errorf("游戏结束后世界仍在变化:\nbefore: %s\nafter:  %s", before, after)
	}
	if scene.TickCount() <= tickBefore {
		t.Errorf("游戏结束后节拍停止流逝: %d -> %d", tickBefore, scene.TickCount())
	}
}

// TestGameSceneBacklogClamp 验证慢帧追赶上限与积压丢弃
func TestGameSceneBacklogClamp(t *testing.T) {
	scene := newTestScene(config.DefaultTrackSeed)
	clearGems(scene)

	// 一帧塞进 1 秒：最多补 MaxTicksPerFrame 个节拍，剩余积压直接丢弃
	scene.Update(1.0)
	if scene.TickCount() != config.MaxTicksPerFrame {
		t.Errorf("超长帧后节拍数 = %d, want %d", scene.TickCount(), config.MaxTicksPerFrame)
	}
	if scene.accumulator != 0 {
		t.Errorf("积压丢弃后累加器 = %v, want 0", scene.accumulator)
	}

	// 不足一个节拍的帧只累加时间，不推进节拍
	scene.Update(0.01)
	if scene.TickCount() != config.MaxTicksPerFrame {
		t.Errorf("短帧后节拍数 = %d, want %d", scene.TickCount(), config.MaxTicksPerFrame)
	}
	if scene.accumulator != 0.01 {
		t.Errorf("短帧后累加器 = %v, want 0.01", scene.accumulator)
	}
}

// TestGameSceneDeterminism 验证同种子 + 同输入序列的两局逐位一致
func TestGameSceneDeterminism(t *testing.T) {
	runScripted := func(seed int64) (game.Snapshot, uint64) {
		scene := newTestScene(seed)
		for frame := 0; frame < 600; frame++ {
			switch frame {
			case 0:
				scene.SetScriptedIntent(1)
			case 150:
				scene.SetScriptedIntent(-1)
			case 300:
				scene.SetScriptedIntent(0)
			}
			scene.Update(testFrameDelta)
		}
		return scene.Snapshot(), scene.TickCount()
	}

	snap1, ticks1 := runScripted(7)
	snap2, ticks2 := runScripted(7)

	if snap1 != snap2 {
		t.Errorf("同种子两局快照不一致:\n第一局: %s\n第二局: %s", snap1, snap2)
	}
	if ticks1 != ticks2 {
		t.Errorf("同种子两局节拍数不一致: %d vs %d", ticks1, ticks2)
	}
}

// TestGameSceneSaveOnExit 验证退出保存路径
func TestGameSceneSaveOnExit(t *testing.T) {
	scene := newTestScene(config.DefaultTrackSeed)

	if !scene.SaveOnExit() {
		t.Error("SaveOnExit() = false, want true")
	}
}

// TestGameSceneDraw 验证绘制路径不会崩溃（进行中和游戏结束两种画面）
func TestGameSceneDraw(t *testing.T) {
	scene := NewGameScene(nil, "endless-1", config.DefaultTrackSeed, true)
	scene.SetScriptedIntent(0)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	advanceFrames(scene, 10)
	scene.Draw(screen)

	scene.gameState.MarkGameOver()
	scene.Draw(screen)
}
