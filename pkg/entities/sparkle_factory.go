package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/ecs"
)

// 闪光粒子迸发参数
const (
	// SparkleBurstCount 每次拾取迸发的粒子数
	SparkleBurstCount = 8
	// 粒子初速范围（单位/秒）
	sparkleSpeedMin = 60.0
	sparkleSpeedMax = 140.0
	// 粒子寿命范围（秒）
	sparkleAgeMin = 0.3
	sparkleAgeMax = 0.6
	// 粒子初始边长范围（像素）
	sparkleSizeMin = 2.0
	sparkleSizeMax = 5.0
)

// NewSparkleBurst 在指定世界坐标迸发一簇拾取闪光粒子
//
// 每颗粒子获得随机方向、随机初速和随机寿命，
// 粒子属于表现层，按帧更新，不影响模拟状态。
//
// 参数:
//   - manager: EntityManager 实例
//   - x, y: 迸发中心的世界坐标（通常是被拾取宝石的位置）
//   - rng: 随机源，为 nil 时退化为不迸发（无头模式不需要粒子）
//
// 返回: 创建的粒子实体ID列表
func NewSparkleBurst(manager *ecs.EntityManager, x, y float64, rng *rand.Rand) []ecs.EntityID {
	if rng == nil {
		return nil
	}

	ids := make([]ecs.EntityID, 0, SparkleBurstCount)

	for i := 0; i < SparkleBurstCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := sparkleSpeedMin + rng.Float64()*(sparkleSpeedMax-sparkleSpeedMin)

		id := manager.CreateEntity()
		manager.AddComponent(id, &components.PositionComponent{
			X: x,
			Y: y,
		})
		manager.AddComponent(id, &components.SparkleComponent{
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Age:    0,
			MaxAge: sparkleAgeMin + rng.Float64()*(sparkleAgeMax-sparkleAgeMin),
			Size:   sparkleSizeMin + rng.Float64()*(sparkleSizeMax-sparkleSizeMin),
		})
		ids = append(ids, id)
	}

	return ids
}
