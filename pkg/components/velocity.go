package components

// VelocityComponent 存储实体的移动速度（单位/秒）
// 运动系统每个模拟节拍按 position += velocity * dt 积分
type VelocityComponent struct {
	VX float64 // 水平速度（单位/秒）
	VY float64 // 垂直速度（单位/秒，向上为正）
}
