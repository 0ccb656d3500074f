// verify_gameplay 是交互式玩法验证程序
//
// 不加载任何美术资源（实体显示为占位矩形），专注于验证玩法规则：
// 固定节拍推进、拾取判定、得分与生命联动、死亡冻结。
//
// 快捷键：
//
//	W/S 或 上/下     垂直操控
//	G               在玩家位置生成一颗宝石（下一节拍立即拾取）
//	K               直接扣 1 点生命
//	U               切换自动蛇形转向
//	Q               退出
//
// 运行：
//
//	go run ./cmd/verify_gameplay [-seed 42] [-verbose]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/entities"
	"github.com/decker502/gemrun/pkg/game"
	"github.com/decker502/gemrun/pkg/scenes"
	"github.com/decker502/gemrun/pkg/systems"
)

const frameDelta = 1.0 / 60.0

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	seed    = flag.Int64("seed", config.DefaultTrackSeed, "跑道随机种子")
)

// backgroundColor 与正式场景一致的浅灰背景
var backgroundColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}

// VerifyGameplayGame 玩法验证游戏
type VerifyGameplayGame struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           *rand.Rand

	inputSystem   *systems.InputSystem
	motionSystem  *systems.MotionSystem
	cameraSystem  *systems.CameraSystem
	pickupSystem  *systems.PickupSystem
	deathSystem   *systems.DeathSystem
	sparkleSystem *systems.SparkleSystem
	renderSystem  *systems.RenderSystem

	playerID ecs.EntityID

	autoSteer   bool
	elapsed     float64
	accumulator float64
	tickCount   uint64
}

// NewVerifyGameplayGame 创建验证游戏实例
func NewVerifyGameplayGame() *VerifyGameplayGame {
	em := ecs.NewEntityManager()

	gs := game.GetGameState()
	gs.ResetForNewGame()

	vg := &VerifyGameplayGame{
		entityManager: em,
		gameState:     gs,
		rng:           rand.New(rand.NewSource(*seed)),
	}

	// 实体：无资源管理器，玩家和宝石都用占位矩形渲染
	vg.playerID = entities.NewPlayerEntity(em, nil)

	vg.inputSystem = systems.NewInputSystem(em)
	vg.motionSystem = systems.NewMotionSystem(em)
	vg.cameraSystem = systems.NewCameraSystem(em, gs)
	vg.pickupSystem = systems.NewPickupSystem(em, gs)
	vg.deathSystem = systems.NewDeathSystem(em, gs)
	vg.sparkleSystem = systems.NewSparkleSystem(em)
	vg.renderSystem = systems.NewRenderSystem(em)

	trackCfg := config.DefaultTrackConfig()
	trackCfg.Seed = *seed
	gems := entities.SpawnGemTrack(em, nil, trackCfg, vg.rng)

	log.Printf("[VerifyGameplay] 初始化完成: 种子 %d, 宝石 %d 颗", *seed, len(gems))
	return vg
}

// Update 推进一帧：快捷键 -> 固定节拍 -> 表现域
func (vg *VerifyGameplayGame) Update() error {
	if err := vg.handleHotkeys(); err != nil {
		return err
	}

	// 输入意图：自动转向时用正弦波蛇形飞行，否则采样键盘
	if vg.autoSteer {
		vg.inputSystem.SetIntent(math.Sin(vg.elapsed * math.Pi))
	} else {
		vg.inputSystem.Poll()
	}
	vg.elapsed += frameDelta

	// 固定节拍推进（与正式场景同一套节奏）
	vg.accumulator += frameDelta
	for ticks := 0; vg.accumulator >= config.SimulationTickSeconds && ticks < config.MaxTicksPerFrame; ticks++ {
		vg.runTick()
		vg.accumulator -= config.SimulationTickSeconds
	}
	if vg.accumulator >= config.SimulationTickSeconds {
		vg.accumulator = 0
	}

	// 表现域：拾取闪光、死亡判定、粒子衰减
	for _, ev := range vg.pickupSystem.DrainEvents() {
		entities.NewSparkleBurst(vg.entityManager, ev.X, ev.Y, vg.rng)
	}
	vg.deathSystem.Update(frameDelta)
	vg.sparkleSystem.Update(frameDelta)
	vg.entityManager.RemoveMarkedEntities()

	return nil
}

// runTick 执行一个模拟节拍（玩法阶段门控在进行中）
func (vg *VerifyGameplayGame) runTick() {
	if vg.gameState.IsPlaying() {
		vg.inputSystem.Update(config.SimulationTickSeconds)
		vg.motionSystem.Update(config.SimulationTickSeconds)
		vg.cameraSystem.Update(config.SimulationTickSeconds)
		vg.pickupSystem.Update(config.SimulationTickSeconds)
	}
	vg.entityManager.RemoveMarkedEntities()
	vg.tickCount++
}

// handleHotkeys 处理验证快捷键
func (vg *VerifyGameplayGame) handleHotkeys() error {
	// G 在玩家当前位置生成宝石（距离 0 < 拾取半径，下一节拍立即拾取）
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](vg.entityManager, vg.playerID); ok {
			entities.NewGemEntity(vg.entityManager, nil, pos.X, pos.Y)
			log.Printf("[VerifyGameplay] 在玩家位置 (%.1f, %.1f) 生成宝石", pos.X, pos.Y)
		}
	}

	// K 直接扣血，快速验证死亡冻结
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		if hc, ok := ecs.GetComponent[*components.HealthComponent](vg.entityManager, vg.playerID); ok {
			hc.Damage(1)
			log.Printf("[VerifyGameplay] 手动扣血: 生命 %d/%d", hc.CurrentHealth, hc.MaxHealth)
		}
	}

	// U 切换自动蛇形转向
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		vg.autoSteer = !vg.autoSteer
		log.Printf("[VerifyGameplay] 自动转向: %v", vg.autoSteer)
	}

	// Q 退出
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Println("[VerifyGameplay] Exiting...")
		return fmt.Errorf("quit")
	}

	return nil
}

// Draw 绘制世界和调试覆盖层
func (vg *VerifyGameplayGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cameraX := vg.gameState.CameraX
	vg.renderSystem.Draw(screen, cameraX)
	vg.renderSystem.DrawSparkles(screen, cameraX)

	snap := scenes.BuildSnapshot(vg.entityManager, vg.gameState)
	ebitenutil.DebugPrintAt(screen, snap.String(), 8, 8)
	ebitenutil.DebugPrintAt(screen,
		"W/S or Up/Down: steer  G: gem  K: damage  U: auto-steer  Q: quit", 8, 24)

	if *verbose {
		detail := fmt.Sprintf("tick=%d acc=%.4fs auto=%v", vg.tickCount, vg.accumulator, vg.autoSteer)
		ebitenutil.DebugPrintAt(screen, detail, 8, 40)
	}
}

// Layout 设置屏幕布局
func (vg *VerifyGameplayGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

func main() {
	flag.Parse()

	verifyGame := NewVerifyGameplayGame()

	ebiten.SetWindowTitle("玩法验证程序 - GemRun")
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)

	if err := ebiten.RunGame(verifyGame); err != nil {
		if err.Error() != "quit" {
			log.Fatal(err)
		}
	}
}
