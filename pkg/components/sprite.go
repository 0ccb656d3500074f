package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// Image 允许为 nil：资源缺失或无头模式（测试、模拟工具）下实体不携带贴图，
// 渲染系统会为这类实体绘制占位色块
type SpriteComponent struct {
	Image *ebiten.Image
}
