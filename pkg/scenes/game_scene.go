package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/entities"
	"github.com/decker502/gemrun/pkg/game"
	"github.com/decker502/gemrun/pkg/systems"
)

// tickStage 固定节拍管线中的一个阶段
// runIf 为 nil 表示无条件执行；否则每个节拍求值一次，
// 游戏结束后玩法阶段集体停摆就是靠这些门控实现的
type tickStage struct {
	name   string
	runIf  func() bool
	update func(deltaTime float64)
}

// GameScene 是游戏的主场景：一条向右无限滚动的拾宝跑道
//
// 场景同时跑着两套时间：
//   - 模拟域：64Hz 固定节拍。帧时间进入累加器，每凑满一个节拍时长
//     就推进一次节拍管线（输入->运动->镜头->拾取），节拍之间结果
//     完全由种子和意图序列决定，与帧率无关。
//   - 表现域：每帧一次。拾取事件消费（音效、闪光粒子）、死亡判定、
//     粒子更新和快捷键都在这里，不影响模拟结果。
type GameScene struct {
	resourceManager *game.ResourceManager
	gameState       *game.GameState
	trackConfig     *config.TrackConfig
	rng             *rand.Rand

	// ECS 框架与系统
	entityManager *ecs.EntityManager
	inputSystem   *systems.InputSystem
	motionSystem  *systems.MotionSystem
	cameraSystem  *systems.CameraSystem
	pickupSystem  *systems.PickupSystem
	deathSystem   *systems.DeathSystem
	sparkleSystem *systems.SparkleSystem
	renderSystem  *systems.RenderSystem

	playerID    ecs.EntityID
	spawnedGems int

	// 固定节拍管线（按声明顺序执行）
	stages      []tickStage
	accumulator float64
	tickCount   uint64

	// scriptedInput 为真时跳过键盘采样，意图完全由 SetScriptedIntent 控制
	scriptedInput bool
	verbose       bool

	hudFace text.Face
}

// NewGameScene 创建游戏场景并生成整个游戏世界
//
// 参数:
//   - rm: 资源管理器，可为 nil（无头模式，全部实体使用占位贴图）
//   - trackID: 跑道配置名，对应 data/levels/<trackID>.yaml
//   - seed: 跑道随机种子（由调用方解析好，0 也原样使用）
//   - verbose: 是否显示调试覆盖层
func NewGameScene(rm *game.ResourceManager, trackID string, seed int64, verbose bool) *GameScene {
	scene := &GameScene{
		resourceManager: rm,
		gameState:       game.GetGameState(),
		verbose:         verbose,
	}

	// 每局开始重置全局状态（得分清零、阶段回到进行中）
	scene.gameState.ResetForNewGame()

	// 加载跑道配置，失败时用内置默认跑道兜底
	trackPath := fmt.Sprintf("data/levels/%s.yaml", trackID)
	trackCfg, err := config.LoadTrackConfig(trackPath)
	if err != nil {
		log.Printf("[GameScene] Warning: Failed to load track config %s: %v (using defaults)", trackPath, err)
		trackCfg = config.DefaultTrackConfig()
	} else {
		log.Printf("[GameScene] Loaded track: %s (%s, %d gems)", trackCfg.ID, trackCfg.Name, trackCfg.GemCount)
	}
	scene.trackConfig = trackCfg

	scene.rng = rand.New(rand.NewSource(seed))
	log.Printf("[GameScene] 使用随机种子: %d", seed)

	// Initialize ECS framework
	scene.entityManager = ecs.NewEntityManager()

	// 实体：玩家必须先于镜头系统创建（镜头出生即对准玩家前方）
	scene.playerID = entities.NewPlayerEntity(scene.entityManager, rm)

	// Initialize systems
	scene.inputSystem = systems.NewInputSystem(scene.entityManager)
	scene.motionSystem = systems.NewMotionSystem(scene.entityManager)
	scene.cameraSystem = systems.NewCameraSystem(scene.entityManager, scene.gameState)
	scene.pickupSystem = systems.NewPickupSystem(scene.entityManager, scene.gameState)
	scene.deathSystem = systems.NewDeathSystem(scene.entityManager, scene.gameState)
	scene.sparkleSystem = systems.NewSparkleSystem(scene.entityManager)
	scene.renderSystem = systems.NewRenderSystem(scene.entityManager)

	// 生成跑道宝石
	gemIDs := entities.SpawnGemTrack(scene.entityManager, rm, trackCfg, scene.rng)
	scene.spawnedGems = len(gemIDs)

	// 固定节拍管线：玩法阶段全部门控在"进行中"上
	playing := scene.gameState.IsPlaying
	scene.stages = []tickStage{
		{name: "input", runIf: playing, update: scene.inputSystem.Update},
		{name: "motion", runIf: playing, update: scene.motionSystem.Update},
		{name: "camera", runIf: playing, update: scene.cameraSystem.Update},
		{name: "pickup", runIf: playing, update: scene.pickupSystem.Update},
	}
	stageNames := make([]string, 0, len(scene.stages))
	for _, stage := range scene.stages {
		stageNames = append(stageNames, stage.name)
	}
	log.Printf("[GameScene] 节拍管线: %s (tick=%.6fs, 每帧上限 %d 节拍)",
		strings.Join(stageNames, " -> "), config.SimulationTickSeconds, config.MaxTicksPerFrame)

	scene.hudFace = newHUDFace()

	// 背景音乐（音频管理器未就绪时静默跳过）
	if am := scene.gameState.GetAudioManager(); am != nil {
		am.PlayMusic("SOUND_MUSIC_DRIFT")
	}

	log.Printf("[GameScene] 场景初始化完成: 玩家实体 %d, 宝石 %d 颗", scene.playerID, scene.spawnedGems)

	return scene
}

// Update 推进场景一帧
//
// 先把帧时间喂给累加器驱动固定节拍，再处理表现域：
// 拾取事件的音效和粒子、死亡判定、粒子飘散和快捷键。
func (s *GameScene) Update(deltaTime float64) {
	// 输入采样：每帧一次，同一帧内所有节拍共用同一份意图
	if !s.scriptedInput {
		s.inputSystem.Poll()
	}

	// 固定节拍推进
	s.accumulator += deltaTime
	ticksThisFrame := 0
	for s.accumulator >= config.SimulationTickSeconds && ticksThisFrame < config.MaxTicksPerFrame {
		s.runTick()
		s.accumulator -= config.SimulationTickSeconds
		ticksThisFrame++
	}
	// 慢帧积压超过追赶上限时丢弃剩余积压，避免越追越多
	if s.accumulator >= config.SimulationTickSeconds {
		s.accumulator = 0
	}

	// 表现域：拾取事件 -> 音效 + 闪光粒子
	for _, ev := range s.pickupSystem.DrainEvents() {
		if am := s.gameState.GetAudioManager(); am != nil {
			am.PlaySound("SOUND_GEM_COLLECTION")
		}
		entities.NewSparkleBurst(s.entityManager, ev.X, ev.Y, s.rng)
	}

	// 死亡判定：生命值归零后把阶段闩锁到游戏结束
	s.deathSystem.Update(deltaTime)

	// 粒子按帧更新，游戏结束后依然继续飘散
	s.sparkleSystem.Update(deltaTime)

	s.handleHotkeys()

	// 清理表现域销毁的实体（节拍内的销毁已在 runTick 清理过）
	s.entityManager.RemoveMarkedEntities()
}

// runTick 执行一个完整的模拟节拍
func (s *GameScene) runTick() {
	for _, stage := range s.stages {
		if stage.runIf == nil || stage.runIf() {
			stage.update(config.SimulationTickSeconds)
		}
	}
	// 节拍末清理：被拾取的宝石在下一节拍开始前必须离场
	s.entityManager.RemoveMarkedEntities()
	s.tickCount++
}

// SetScriptedIntent 切换到脚本输入模式并设置垂直意图
// 测试和无头工具用它驱动玩家，键盘采样随之停用
func (s *GameScene) SetScriptedIntent(intent float64) {
	s.scriptedInput = true
	s.inputSystem.SetIntent(intent)
}

// handleHotkeys 处理表现域快捷键（静音切换）
func (s *GameScene) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.toggleMute()
	}
}

// toggleMute 切换静音并立即持久化设置
func (s *GameScene) toggleMute() {
	sm := s.gameState.GetSettingsManager()
	if sm == nil {
		return
	}
	muted := sm.ToggleMuted()
	log.Printf("[GameScene] 静音: %v", muted)

	if am := s.gameState.GetAudioManager(); am != nil {
		if muted {
			am.PauseMusic()
		} else {
			am.ResumeMusic()
		}
	}

	if err := sm.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
}

// SaveOnExit 在窗口关闭时保存音量等设置
func (s *GameScene) SaveOnExit() bool {
	sm := s.gameState.GetSettingsManager()
	if sm == nil {
		return false
	}
	if err := sm.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings on exit: %v", err)
		return false
	}
	log.Printf("[GameScene] 退出前设置已保存")
	return true
}

// Snapshot 返回当前模拟状态的只读快照
func (s *GameScene) Snapshot() game.Snapshot {
	return BuildSnapshot(s.entityManager, s.gameState)
}

// TickCount 返回已执行的模拟节拍总数
func (s *GameScene) TickCount() uint64 {
	return s.tickCount
}

// liveGemCount 当前仍在世界中的宝石数量
func (s *GameScene) liveGemCount() int {
	return len(ecs.GetEntitiesWith1[*components.GemComponent](s.entityManager))
}
