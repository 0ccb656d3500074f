package systems

import (
	"log"
	"math"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/game"
)

// GemCollectedEvent 一次宝石拾取事件
// 记录被拾取宝石的实体ID和世界坐标，供表现层播放音效和粒子
type GemCollectedEvent struct {
	GemID ecs.EntityID
	X     float64
	Y     float64
}

// PickupSystem 处理玩家与宝石的拾取判定
//
// 每个模拟节拍把玩家和所有宝石做一次点距检测：
// 欧氏距离严格小于拾取半径即判定拾取。宝石没有体积，
// 恰好等于半径不算（边界值稳定可测）。
//
// 每次拾取同时完成三件事：得分 +1、生命 -1（下限 0）、宝石实体标记销毁。
// 同一节拍内允许拾取多颗宝石，按实体创建顺序依次结算。
// 宝石不会被重复拾取：调度器保证每个节拍末尾执行 RemoveMarkedEntities，
// 已拾取的宝石在下一节拍开始前就从世界中消失了。
type PickupSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	events        []GemCollectedEvent
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem(em *ecs.EntityManager, gs *game.GameState) *PickupSystem {
	return &PickupSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 检测并结算本节拍的所有拾取
//
// 参数:
//   - deltaTime: 节拍时长（秒），本系统不使用（判定只看当前位置）
func (s *PickupSystem) Update(deltaTime float64) {
	playerID, ok := playerEntity(s.entityManager)
	if !ok {
		return
	}

	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	playerHealth, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	gems := ecs.GetEntitiesWith2[*components.GemComponent, *components.PositionComponent](s.entityManager)

	for _, gemID := range gems {
		gemPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, gemID)
		if !ok {
			continue
		}

		dx := playerPos.X - gemPos.X
		dy := playerPos.Y - gemPos.Y
		distance := math.Sqrt(dx*dx + dy*dy)

		// 严格小于：距离恰好等于半径不拾取
		if distance < config.CollectionRadius {
			oldScore := s.gameState.GetScore()
			s.gameState.AddScore(1)
			playerHealth.Damage(1)

			s.events = append(s.events, GemCollectedEvent{
				GemID: gemID,
				X:     gemPos.X,
				Y:     gemPos.Y,
			})

			s.entityManager.DestroyEntity(gemID)

			log.Printf("[PickupSystem] 拾取宝石! 得分: %d -> %d, 生命: %d/%d",
				oldScore, s.gameState.GetScore(),
				playerHealth.CurrentHealth, playerHealth.MaxHealth)
		}
	}
}

// DrainEvents 取走并清空本轮积累的拾取事件
// 表现层每帧调用一次，用事件驱动音效和闪光粒子
func (s *PickupSystem) DrainEvents() []GemCollectedEvent {
	if len(s.events) == 0 {
		return nil
	}
	drained := s.events
	s.events = nil
	return drained
}
