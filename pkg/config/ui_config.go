package config

// UI 布局相关的常量配置
// 包括计分板、生命值显示和游戏结束横幅的布局参数
//
// 调整指南：
//   - X: 向右增加，向左减少
//   - Y: 向下增加，向上减少
//   - 屏幕尺寸：1280x720

const (
	// HUDMarginX 左上角 HUD 文字距屏幕左边缘的间距（像素）
	HUDMarginX = 8.0

	// HUDMarginY 左上角 HUD 文字距屏幕上边缘的间距（像素）
	HUDMarginY = 8.0

	// HUDLineSpacing HUD 相邻两行文字的垂直间距（像素）
	HUDLineSpacing = 28.0

	// HUDTextScale HUD 文字缩放倍率（位图字体原始尺寸约 12px）
	HUDTextScale = 2.0

	// GameOverTextScale 游戏结束横幅文字缩放倍率
	GameOverTextScale = 4.0

	// GameOverBannerOffsetY 游戏结束横幅相对屏幕中心的垂直偏移
	// 负值向上，0 表示正中
	GameOverBannerOffsetY = 0.0

	// DebugOverlayMarginX 调试信息距屏幕左边缘的间距（像素）
	DebugOverlayMarginX = 8

	// DebugOverlayMarginY 调试信息距屏幕下边缘的间距（像素）
	DebugOverlayMarginY = 16
)
