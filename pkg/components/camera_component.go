package components

// CameraComponent 标记镜头实体并保存前视距离。
// 镜头没有独立运动状态：每个模拟节拍由镜头系统根据玩家位置
// 推导 camera.X = player.X + LookAhead，Y 保持不变。
type CameraComponent struct {
	// LookAhead 镜头相对玩家的水平前视距离（单位）
	// 取正值时镜头画面偏向玩家前进方向
	LookAhead float64
}
