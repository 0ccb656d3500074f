package entities

import (
	"log"
	"math/rand"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/ecs"
	"github.com/decker502/gemrun/pkg/game"
)

// NewGemEntity 在指定世界坐标创建一颗宝石实体
// 宝石是静止的：只有位置、标记和贴图，没有速度
//
// 参数:
//   - manager: EntityManager 实例
//   - rm: ResourceManager 实例，可为 nil（无头模式，贴图为空）
//   - x, y: 世界坐标（Y 向上）
//
// 返回: 创建的实体ID
func NewGemEntity(manager *ecs.EntityManager, rm *game.ResourceManager, x, y float64) ecs.EntityID {
	id := manager.CreateEntity()

	gemImage := loadSpriteImage(rm, "IMAGE_GEM")

	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: y,
	})
	manager.AddComponent(id, &components.GemComponent{})
	manager.AddComponent(id, &components.SpriteComponent{
		Image: gemImage,
	})

	return id
}

// SpawnGemTrack 按跑道配置生成整条宝石带
//
// 第 i 颗宝石的横坐标固定为 FirstGemX + i*GemSpacing，
// 纵坐标在 [ScatterMin, ScatterMax) 区间内由 rng 均匀采样。
// 宝石按下标顺序依次创建，rng 的消费顺序因此也是固定的：
// 相同种子必然生成完全相同的跑道。
//
// rng 为 nil 时使用配置自带的种子现场构造，方便无头工具直接复现跑道。
//
// 返回: 按生成顺序排列的宝石实体ID列表
func SpawnGemTrack(manager *ecs.EntityManager, rm *game.ResourceManager, trackCfg *config.TrackConfig, rng *rand.Rand) []ecs.EntityID {
	if rng == nil {
		rng = rand.New(rand.NewSource(trackCfg.Seed))
	}

	ids := make([]ecs.EntityID, 0, trackCfg.GemCount)
	scatterRange := trackCfg.ScatterMax - trackCfg.ScatterMin

	for i := 0; i < trackCfg.GemCount; i++ {
		x := trackCfg.FirstGemX + float64(i)*trackCfg.GemSpacing
		y := trackCfg.ScatterMin + rng.Float64()*scatterRange
		ids = append(ids, NewGemEntity(manager, rm, x, y))
	}

	log.Printf("[Entities] 跑道宝石生成完成: %d 颗, 间距 %.0f, 散布 [%.0f, %.0f)",
		len(ids), trackCfg.GemSpacing, trackCfg.ScatterMin, trackCfg.ScatterMax)

	return ids
}
