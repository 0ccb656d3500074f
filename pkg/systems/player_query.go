package systems

import (
	"log"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/ecs"
)

// playerEntity 查找世界中唯一的玩家实体
//
// 世界里没有玩家时返回 (0, false)，各系统据此静默跳过本次更新
// （无头工具允许构造没有玩家的空世界）。
// 出现多个玩家说明场景初始化逻辑被破坏，直接 panic 暴露问题。
func playerEntity(em *ecs.EntityManager) (ecs.EntityID, bool) {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	switch len(players) {
	case 0:
		return 0, false
	case 1:
		return players[0], true
	default:
		log.Panicf("[Systems] 玩家实体数量异常: 期望恰好 1 个, 实际 %d 个", len(players))
		return 0, false
	}
}
