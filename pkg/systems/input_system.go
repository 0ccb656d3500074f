package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
)

// InputSystem 处理玩家的垂直转向输入
//
// 输入采样和应用分两步走：
//   - Poll 每帧调用一次，把键盘状态采样成垂直意图（-1/0/+1）
//   - Update 每个模拟节拍调用一次，把最近采样的意图写入玩家垂直速度
//
// 这样同一帧内的多个模拟节拍使用同一份输入快照，
// 固定种子 + 固定意图序列就能完整复现一局游戏。
type InputSystem struct {
	entityManager *ecs.EntityManager
	intent        float64 // 最近采样的垂直意图: +1 向上, -1 向下, 0 不动
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager) *InputSystem {
	return &InputSystem{
		entityManager: em,
	}
}

// VerticalIntent 把上下键的按住状态折算成垂直意图
// 同时按住上下键时互相抵消，返回 0
func VerticalIntent(up, down bool) float64 {
	switch {
	case up && !down:
		return 1
	case down && !up:
		return -1
	default:
		return 0
	}
}

// Poll 采样当前键盘状态，每帧调用一次
// 上: W 或方向键上；下: S 或方向键下
func (s *InputSystem) Poll() {
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	s.intent = VerticalIntent(up, down)
}

// SetIntent 直接设置垂直意图，绕过键盘采样
// 供无头模拟工具和测试按脚本驱动玩家，取值范围截断到 [-1, 1]
func (s *InputSystem) SetIntent(intent float64) {
	if intent > 1 {
		intent = 1
	} else if intent < -1 {
		intent = -1
	}
	s.intent = intent
}

// Intent 返回最近一次采样的垂直意图
func (s *InputSystem) Intent() float64 {
	return s.intent
}

// Update 把当前意图应用到玩家的垂直速度
// 水平速度是常量巡航，输入永远不碰它
//
// 参数:
//   - deltaTime: 节拍时长（秒），本系统不使用
func (s *InputSystem) Update(deltaTime float64) {
	playerID, ok := playerEntity(s.entityManager)
	if !ok {
		return
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	vel.VY = s.intent * config.VerticalSpeed
}
