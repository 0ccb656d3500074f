package scenes

import (
	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/game"
)

// BuildSnapshot 从 ECS 世界和全局状态采集一份模拟快照
// 无头工具和测试用它对比两次运行是否逐位一致
//
// 玩家实体缺失时（极端情况），玩家相关字段保持零值
func BuildSnapshot(em *ecs.EntityManager, gs *game.GameState) game.Snapshot {
	snapshot := game.Snapshot{
		Score:   gs.GetScore(),
		Phase:   gs.Phase(),
		CameraX: gs.CameraX,
	}

	players := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	if len(players) == 0 {
		return snapshot
	}
	playerID := players[0]

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, playerID); ok {
		snapshot.PlayerX = pos.X
		snapshot.PlayerY = pos.Y
	}
	if hc, ok := ecs.GetComponent[*components.HealthComponent](em, playerID); ok {
		snapshot.Health = hc.CurrentHealth
		snapshot.MaxHealth = hc.MaxHealth
	}

	return snapshot
}
