package config

// 窗口与画面常量
const (
	// GameWindowWidth 游戏窗口宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 游戏窗口高度（像素）
	GameWindowHeight = 720

	// GameWindowTitle 窗口标题
	GameWindowTitle = "飞毯拾宝 - Gem Run"
)

// 屏幕坐标换算参考（世界坐标 Y 向上，屏幕坐标 Y 向下）：
//
//	screenX = worldX - cameraX + GameWindowWidth/2   // 640.0
//	screenY = GameWindowHeight/2 - worldY            // 360.0
const (
	// ScreenCenterX 屏幕水平中心 // 640.0
	ScreenCenterX = float64(GameWindowWidth) / 2

	// ScreenCenterY 屏幕垂直中心 // 360.0
	ScreenCenterY = float64(GameWindowHeight) / 2
)
