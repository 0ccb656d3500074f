package systems

import (
	"github.com/decker502/gemrun/pkg/components"
	"github.com/decker502/gemrun/pkg/ecs"
)

// MotionSystem 对所有带速度的实体做位置积分
//
// 每个模拟节拍执行 position += velocity * dt。
// 当前世界里只有玩家带速度组件（宝石静止、镜头被镜头系统直接摆位），
// 但系统本身不关心实体是谁。
type MotionSystem struct {
	entityManager *ecs.EntityManager
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(em *ecs.EntityManager) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
	}
}

// Update 按节拍时长积分所有实体的位置
//
// 参数:
//   - deltaTime: 节拍时长（秒），固定节拍下恒为 1/64
func (s *MotionSystem) Update(deltaTime float64) {
	movers := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range movers {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
