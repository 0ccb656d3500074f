package entities

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/game"
)

// NewPlayerEntity 创建玩家（飞毯）实体
// 玩家出生在跑道起点，携带初始生命值并立即以巡航速度向右移动
//
// 每局只能存在一个玩家实体，由场景初始化保证
//
// 参数:
//   - manager: EntityManager 实例
//   - rm: ResourceManager 实例，用于加载飞毯贴图；可为 nil（无头模式，贴图为空）
//
// 返回: 创建的实体ID
func NewPlayerEntity(manager *ecs.EntityManager, rm *game.ResourceManager) ecs.EntityID {
	// 创建实体
	id := manager.CreateEntity()

	// 加载飞毯贴图（失败时保留 nil，渲染系统会画占位矩形）
	playerImage := loadSpriteImage(rm, "IMAGE_RUG")

	// 位置：跑道起点（世界坐标，Y 向上）
	manager.AddComponent(id, &components.PositionComponent{
		X: config.PlayerStartX,
		Y: config.PlayerStartY,
	})

	// 速度：水平方向恒定巡航，垂直分量由输入系统每刻写入
	manager.AddComponent(id, &components.VelocityComponent{
		VX: config.ScrollSpeed,
		VY: 0,
	})

	// 生命值：每拾取一颗宝石扣 1 点
	manager.AddComponent(id, &components.HealthComponent{
		CurrentHealth: config.PlayerMaxHealth,
		MaxHealth:     config.PlayerMaxHealth,
	})

	// 玩家标记
	manager.AddComponent(id, &components.PlayerComponent{})

	// 贴图
	manager.AddComponent(id, &components.SpriteComponent{
		Image: playerImage,
	})

	return id
}

// loadSpriteImage 按资源ID加载贴图，失败时返回 nil 并记录警告
// nil 贴图由渲染系统用占位矩形兜底，因此加载失败不阻断游戏
func loadSpriteImage(rm *game.ResourceManager, resourceID string) *ebiten.Image {
	if rm == nil {
		return nil
	}
	img, err := rm.LoadImageByID(resourceID)
	if err != nil {
		log.Printf("[Entities] Warning: Failed to load image %s: %v (using placeholder)", resourceID, err)
		return nil
	}
	return img
}
