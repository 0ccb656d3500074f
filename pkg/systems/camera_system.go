package systems

import (
	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/entities"
	"github.com/decker502/gemrun/pkg/game"
)

// CameraSystem 让镜头锁定玩家前方固定距离处
//
// 镜头实体由本系统在构造时创建并持有。每个模拟节拍把镜头
// 水平位置硬对齐到 player.X + LookAhead（没有平滑、没有缓动），
// 再把结果镜像到 GameState.CameraX 供渲染和 UI 读取。
// 镜头垂直位置恒为 0：玩家上下转向不带动画面。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cameraEntity  ecs.EntityID
}

// NewCameraSystem 创建镜头系统并生成镜头实体
func NewCameraSystem(em *ecs.EntityManager, gs *game.GameState) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		gameState:     gs,
		cameraEntity:  entities.NewCameraEntity(em),
	}
}

// CameraEntity 返回镜头实体ID
func (cs *CameraSystem) CameraEntity() ecs.EntityID {
	return cs.cameraEntity
}

// Update 把镜头对准玩家前方
//
// 参数:
//   - deltaTime: 节拍时长（秒），本系统不使用（镜头没有自身运动）
func (cs *CameraSystem) Update(deltaTime float64) {
	playerID, ok := playerEntity(cs.entityManager)
	if !ok {
		return
	}

	playerPos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, playerID)
	if !ok {
		return
	}

	camPos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	camComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}

	camPos.X = playerPos.X + camComp.LookAhead

	// 镜像到全局状态，渲染系统和调试信息都从这里取镜头位置
	cs.gameState.CameraX = camPos.X
}
