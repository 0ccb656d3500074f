package components

// SparkleComponent 拾取闪光粒子
//
// 拾取宝石时在原地迸发的一小簇装饰性粒子，属于表现层：
// 按帧（而非模拟节拍）更新，寿命耗尽后实体销毁。
// 粒子不参与任何碰撞或拾取判定。
type SparkleComponent struct {
	VX     float64 // 水平速度（单位/秒）
	VY     float64 // 垂直速度（单位/秒，向上为正）
	Age    float64 // 已存活时间（秒）
	MaxAge float64 // 最大寿命（秒），Age 超过后销毁
	Size   float64 // 边长（像素，随寿命线性缩小）
}

// Expired 返回粒子寿命是否已耗尽
func (s *SparkleComponent) Expired() bool {
	return s.Age >= s.MaxAge
}
