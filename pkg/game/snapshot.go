package game

import "fmt"

// Snapshot 模拟状态的一次性只读快照
//
// 把分散在 GameState 和 ECS 组件里的关键状态聚合成一个纯数据结构，
// 供调试覆盖层显示、无头模拟工具输出和确定性对比使用。
// 字段全部是值类型，快照之间可以直接用 == 比较。
type Snapshot struct {
	Score     int
	Health    int
	MaxHealth int
	Phase     GamePhase
	CameraX   float64
	PlayerX   float64
	PlayerY   float64
}

// String 返回适合日志和对比输出的单行格式
func (s Snapshot) String() string {
	return fmt.Sprintf("score=%d health=%d/%d phase=%s camera=%.4f player=(%.4f, %.4f)",
		s.Score, s.Health, s.MaxHealth, s.Phase, s.CameraX, s.PlayerX, s.PlayerY)
}
