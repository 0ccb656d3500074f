package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/gemrun/pkg/app"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/embedded"
	"github.com/decker502/gemrun/pkg/game"
)

var (
	verbose    = flag.Bool("verbose", false, "启用详细日志和调试覆盖层")
	track      = flag.String("track", app.DefaultTrackID, "要加载的跑道配置名")
	seed       = flag.Int64("seed", 0, "跑道随机种子（0 表示使用当前时间）")
	fullscreen = flag.Bool("fullscreen", false, "启动时直接进入全屏")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(assetsFS, dataFS)

	// 种子为 0 时用当前时间派生一个，并始终打印出来，
	// 这样任何一局都可以事后用 -seed 复现
	resolvedSeed := *seed
	if resolvedSeed == 0 {
		resolvedSeed = time.Now().UnixNano()
		log.Printf("[Main] 未指定种子，使用时间种子: %d", resolvedSeed)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Track:      *track,
		Seed:       resolvedSeed,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatalf("游戏运行错误: %v", err)
	}

	// 窗口正常关闭后保存设置
	if scene := gameApp.GetSceneManager().GetCurrentScene(); scene != nil {
		if saveable, ok := scene.(game.Saveable); ok {
			saveable.SaveOnExit()
		}
	}
}
