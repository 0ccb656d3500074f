package components

// PositionComponent 存储实体在世界坐标系中的位置
//
// 坐标系约定：X 轴向右为正（滚动方向），Y 轴向上为正。
// 渲染系统负责把 Y 向上的世界坐标翻转为屏幕坐标，
// 模拟层不关心屏幕。
type PositionComponent struct {
	X float64 // 世界坐标X（单位）
	Y float64 // 世界坐标Y（单位，向上为正）
}
