package systems

import (
	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/game"
)

// DeathSystem 监视玩家生命值并触发游戏结束
//
// 这是唯一允许把游戏阶段从 Playing 翻转到 GameOver 的地方。
// 系统是电平触发的：只要处于 Playing 且生命值为 0 就会触发，
// 不依赖"扣血事件"；MarkGameOver 自带闩锁，重复触发是空操作。
// 进入 GameOver 后系统自稳定，不再做任何事。
type DeathSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewDeathSystem 创建死亡判定系统
func NewDeathSystem(em *ecs.EntityManager, gs *game.GameState) *DeathSystem {
	return &DeathSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 检查玩家是否已耗尽生命值
func (s *DeathSystem) Update(deltaTime float64) {
	if s.gameState.IsGameOver() {
		return
	}

	playerID, ok := playerEntity(s.entityManager)
	if !ok {
		return
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	if health.IsDead() {
		s.gameState.MarkGameOver()
	}
}
