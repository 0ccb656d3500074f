package components

// PlayerComponent 标记玩家实体
//
// 整个模拟中必须恰好存在一个带此组件的实体，
// 运动/镜头/拾取系统都依赖这个单例假设。
type PlayerComponent struct{}
