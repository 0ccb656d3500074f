package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
)

// 画面配色
var (
	backgroundColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255} // 浅灰背景
	hudLabelColor    = color.RGBA{R: 128, G: 128, B: 255, A: 255} // HUD 标签：淡蓝
	scoreValueColor  = color.RGBA{R: 255, G: 128, B: 128, A: 255} // 得分数值：淡红
	healthValueColor = color.RGBA{R: 128, G: 255, B: 128, A: 255} // 生命数值：淡绿
	gameOverColor    = color.RGBA{R: 255, G: 128, B: 128, A: 255} // 结算横幅：淡红
)

// gameOverBannerText 游戏结束横幅文本
const gameOverBannerText = "YOU DIED"

// newHUDFace 返回 HUD 使用的位图字体
// 位图字体内置在依赖包里，不需要额外的字体资源文件
func newHUDFace() text.Face {
	return text.NewGoXFace(bitmapfont.Face)
}

// Draw 绘制场景
//
// 绘制顺序（从底到顶）：背景 -> 世界实体 -> 闪光粒子 -> HUD ->
// 游戏结束横幅 -> 调试覆盖层
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cameraX := s.gameState.CameraX
	s.renderSystem.Draw(screen, cameraX)
	s.renderSystem.DrawSparkles(screen, cameraX)

	s.drawHUD(screen)

	if s.gameState.IsGameOver() {
		s.drawGameOverBanner(screen)
	}

	if s.verbose {
		s.drawDebugOverlay(screen)
	}
}

// drawHUD 绘制左上角计分板：得分一行，生命一行
// 标签和数值使用不同颜色，数值紧跟在标签宽度之后
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	if s.hudFace == nil {
		return
	}

	health := 0
	if hc, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.playerID); ok {
		health = hc.CurrentHealth
	}

	lines := []struct {
		label      string
		value      string
		valueColor color.Color
	}{
		{label: "Score: ", value: fmt.Sprintf("%d", s.gameState.GetScore()), valueColor: scoreValueColor},
		{label: "Health: ", value: fmt.Sprintf("%d", health), valueColor: healthValueColor},
	}

	for i, line := range lines {
		y := config.HUDMarginY + float64(i)*config.HUDLineSpacing

		labelOp := &text.DrawOptions{}
		labelOp.GeoM.Scale(config.HUDTextScale, config.HUDTextScale)
		labelOp.GeoM.Translate(config.HUDMarginX, y)
		labelOp.ColorScale.ScaleWithColor(hudLabelColor)
		text.Draw(screen, line.label, s.hudFace, labelOp)

		// 数值起点 = 标签线宽 × 缩放
		labelWidth := text.Advance(line.label, s.hudFace) * config.HUDTextScale

		valueOp := &text.DrawOptions{}
		valueOp.GeoM.Scale(config.HUDTextScale, config.HUDTextScale)
		valueOp.GeoM.Translate(config.HUDMarginX+labelWidth, y)
		valueOp.ColorScale.ScaleWithColor(line.valueColor)
		text.Draw(screen, line.value, s.hudFace, valueOp)
	}
}

// drawGameOverBanner 在屏幕正中绘制放大的游戏结束横幅
func (s *GameScene) drawGameOverBanner(screen *ebiten.Image) {
	if s.hudFace == nil {
		return
	}

	// 测量文本尺寸以便居中（宽高都按横幅缩放计算）
	textWidth := text.Advance(gameOverBannerText, s.hudFace)
	metrics := s.hudFace.Metrics()
	textHeight := metrics.HAscent + metrics.HDescent

	op := &text.DrawOptions{}
	op.GeoM.Translate(-textWidth/2, -textHeight/2)
	op.GeoM.Scale(config.GameOverTextScale, config.GameOverTextScale)
	op.GeoM.Translate(config.ScreenCenterX, config.ScreenCenterY+config.GameOverBannerOffsetY)
	op.ColorScale.ScaleWithColor(gameOverColor)
	text.Draw(screen, gameOverBannerText, s.hudFace, op)
}

// drawDebugOverlay 左下角调试信息：节拍数、镜头、玩家位置、剩余宝石
func (s *GameScene) drawDebugOverlay(screen *ebiten.Image) {
	playerX, playerY := 0.0, 0.0
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID); ok {
		playerX, playerY = pos.X, pos.Y
	}

	lines := []string{
		fmt.Sprintf("tick: %d  acc: %.4fs", s.tickCount, s.accumulator),
		fmt.Sprintf("camera: %.1f  player: (%.1f, %.1f)", s.gameState.CameraX, playerX, playerY),
		fmt.Sprintf("gems: %d/%d  phase: %s", s.liveGemCount(), s.spawnedGems, s.gameState.Phase()),
	}

	baseY := config.GameWindowHeight - config.DebugOverlayMarginY*len(lines)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.DebugOverlayMarginX, baseY+i*config.DebugOverlayMarginY)
	}
}
