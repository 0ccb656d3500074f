package entities

import (
	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
)

// NewCameraEntity 创建镜头实体
//
// 镜头出生位置即玩家出生点加前视偏移，之后每个模拟节拍
// 由镜头系统重新对准玩家。镜头没有贴图，不参与渲染遍历，
// 渲染系统只读取它的位置做世界->屏幕换算。
//
// 返回: 创建的实体ID
func NewCameraEntity(manager *ecs.EntityManager) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: config.PlayerStartX + config.CameraLookAhead,
		Y: 0,
	})
	manager.AddComponent(id, &components.CameraComponent{
		LookAhead: config.CameraLookAhead,
	})

	return id
}
