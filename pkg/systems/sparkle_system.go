package systems

import (
	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/ecs"
)

// SparkleSystem 更新拾取闪光粒子
//
// 粒子属于表现层：按帧（真实时间）更新而不是按模拟节拍，
// 游戏结束后残留的粒子也会继续飘散直到自然消亡。
// 寿命耗尽的粒子标记销毁，由调度器统一清理。
type SparkleSystem struct {
	entityManager *ecs.EntityManager
}

// NewSparkleSystem 创建闪光粒子系统
func NewSparkleSystem(em *ecs.EntityManager) *SparkleSystem {
	return &SparkleSystem{
		entityManager: em,
	}
}

// Update 推进所有粒子的运动和寿命
//
// 参数:
//   - deltaTime: 距上一帧的真实时间（秒）
func (s *SparkleSystem) Update(deltaTime float64) {
	sparkles := ecs.GetEntitiesWith2[*components.SparkleComponent, *components.PositionComponent](s.entityManager)

	for _, id := range sparkles {
		sp, ok := ecs.GetComponent[*components.SparkleComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		sp.Age += deltaTime
		if sp.Expired() {
			s.entityManager.DestroyEntity(id)
			continue
		}

		pos.X += sp.VX * deltaTime
		pos.Y += sp.VY * deltaTime
	}
}
