package systems

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
)

// 占位矩形和粒子的配色
var (
	playerPlaceholderColor = color.RGBA{R: 178, G: 52, B: 52, A: 255}  // 飞毯：深红
	gemPlaceholderColor    = color.RGBA{R: 255, G: 210, B: 80, A: 255} // 宝石：金黄
	sparkleColor           = color.RGBA{R: 255, G: 232, B: 150, A: 255}
)

// RenderSystem 绘制游戏世界实体
//
// 世界坐标 -> 屏幕坐标的换算：
//
//	sx = worldX - cameraX + 屏幕宽/2
//	sy = 屏幕高/2 - worldY
//
// 世界 Y 轴向上、屏幕 Y 轴向下，所以纵轴要翻转；
// 镜头位置对应屏幕水平中心。图片以实体位置为中心绘制。
//
// 贴图缺失（Image 为 nil）的实体画同尺寸的纯色占位矩形，
// 资源加载失败时游戏依然完整可玩。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	// 占位矩形警告按实体只打一次，避免每帧刷屏
	placeholderWarned map[ecs.EntityID]bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager:     em,
		placeholderWarned: make(map[ecs.EntityID]bool),
	}
}

// Draw 绘制所有带贴图组件的世界实体
// 渲染顺序（从底到顶）：宝石 -> 玩家，玩家永远盖在宝石上面
//
// 参数:
//   - screen: 绘制目标
//   - cameraX: 镜头的世界X坐标
func (s *RenderSystem) Draw(screen *ebiten.Image, cameraX float64) {
	drawables := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)

	// 第一遍：宝石
	for _, id := range drawables {
		if ecs.HasComponent[*components.GemComponent](s.entityManager, id) {
			s.drawEntity(screen, id, cameraX)
		}
	}

	// 第二遍：玩家
	for _, id := range drawables {
		if ecs.HasComponent[*components.PlayerComponent](s.entityManager, id) {
			s.drawEntity(screen, id, cameraX)
		}
	}
}

// drawEntity 绘制单个实体（贴图或占位矩形）
func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, cameraX float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return
	}

	screenX, screenY := worldToScreen(pos.X, pos.Y, cameraX)

	if sprite.Image == nil {
		s.drawPlaceholder(screen, id, screenX, screenY)
		return
	}

	op := &ebiten.DrawImageOptions{}

	// 居中图片
	bounds := sprite.Image.Bounds()
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)

	// 移动到目标位置
	op.GeoM.Translate(screenX, screenY)

	screen.DrawImage(sprite.Image, op)
}

// drawPlaceholder 为没有贴图的实体画纯色占位矩形
func (s *RenderSystem) drawPlaceholder(screen *ebiten.Image, id ecs.EntityID, screenX, screenY float64) {
	var size float64
	var clr color.RGBA

	switch {
	case ecs.HasComponent[*components.PlayerComponent](s.entityManager, id):
		size = config.PlayerSpriteSize
		clr = playerPlaceholderColor
	case ecs.HasComponent[*components.GemComponent](s.entityManager, id):
		size = config.GemSpriteSize
		clr = gemPlaceholderColor
	default:
		return
	}

	if !s.placeholderWarned[id] {
		s.placeholderWarned[id] = true
		log.Printf("[RenderSystem] Warning: entity %d has no sprite image, drawing placeholder", id)
	}

	vector.DrawFilledRect(screen,
		float32(screenX-size/2), float32(screenY-size/2),
		float32(size), float32(size), clr, true)
}

// DrawSparkles 绘制拾取闪光粒子
// 粒子随寿命线性缩小并淡出，画在世界实体之上
//
// 参数:
//   - screen: 绘制目标
//   - cameraX: 镜头的世界X坐标
func (s *RenderSystem) DrawSparkles(screen *ebiten.Image, cameraX float64) {
	sparkles := ecs.GetEntitiesWith2[*components.SparkleComponent, *components.PositionComponent](s.entityManager)

	for _, id := range sparkles {
		sp, ok := ecs.GetComponent[*components.SparkleComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		remain := 1.0 - sp.Age/sp.MaxAge
		if remain <= 0 {
			continue
		}

		size := sp.Size * remain
		screenX, screenY := worldToScreen(pos.X, pos.Y, cameraX)

		// 预乘 alpha 淡出
		clr := color.RGBA{
			R: uint8(float64(sparkleColor.R) * remain),
			G: uint8(float64(sparkleColor.G) * remain),
			B: uint8(float64(sparkleColor.B) * remain),
			A: uint8(255 * remain),
		}

		vector.DrawFilledRect(screen,
			float32(screenX-size/2), float32(screenY-size/2),
			float32(size), float32(size), clr, true)
	}
}

// worldToScreen 把世界坐标换算成屏幕坐标
// 镜头对应屏幕水平中心，世界 Y 向上翻转为屏幕 Y 向下
func worldToScreen(worldX, worldY, cameraX float64) (float64, float64) {
	screenX := worldX - cameraX + config.ScreenCenterX
	screenY := config.ScreenCenterY - worldY
	return screenX, screenY
}
