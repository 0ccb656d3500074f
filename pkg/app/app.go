// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/game"
	"github.com/decker502/gemrun/pkg/scenes"
)

// DefaultTrackID 未指定跑道时加载的默认跑道
const DefaultTrackID = "endless-1"

// frameDeltaSeconds 每帧喂给场景的固定帧时长
// Ebitengine 默认以 60TPS 调用 Update，场景内部再换算到模拟节拍
const frameDeltaSeconds = 1.0 / 60.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试覆盖层
	Verbose bool
	// Track 指定要加载的跑道（如 "endless-1"），为空则使用默认跑道
	Track string
	// Seed 跑道随机种子（由调用方解析，时间种子也在调用方换算好）
	Seed int64
	// Fullscreen 启动时直接进入全屏（优先于设置文件）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 加载资源配置
	if err := resourceManager.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 资源量很小，启动时全部预载；失败时继续运行（实体退化为占位矩形）
	if err := resourceManager.LoadAllResources(); err != nil {
		log.Printf("[App] Warning: Failed to preload resources: %v (placeholders will be used)", err)
	}

	// 初始化 AudioManager 并设置到 GameState
	gameState := game.GetGameState()
	audioManager := game.NewAudioManager(resourceManager, gameState.GetSettingsManager())
	gameState.SetAudioManager(audioManager)
	log.Printf("[App] AudioManager initialized")

	// 启动全屏：命令行参数优先，其次读取设置文件
	if cfg.Fullscreen || gameState.GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
		log.Printf("[App] Fullscreen enabled at startup")
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(trackID string) game.Scene {
		return scenes.NewGameScene(resourceManager, trackID, cfg.Seed, cfg.Verbose)
	})

	trackToLoad := cfg.Track
	if trackToLoad == "" {
		trackToLoad = DefaultTrackID
	}
	log.Printf("[App] Starting track: %s (seed=%d)", trackToLoad, cfg.Seed)
	sceneManager.LoadTrack(trackToLoad)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(frameDeltaSeconds)
	return nil
}

// toggleFullscreen 切换全屏状态并持久化到设置
func (a *App) toggleFullscreen() {
	isFullscreen := ebiten.IsFullscreen()
	if isFullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	sm := game.GetGameState().GetSettingsManager()
	sm.SetFullscreen(!isFullscreen)
	if err := sm.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save fullscreen setting: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
