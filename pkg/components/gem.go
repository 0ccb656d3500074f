package components

// GemComponent 标记宝石实体
//
// 宝石的"存活"状态就是实体本身的存在：
// 被拾取时实体被标记销毁，节拍结束后从世界中消失。
// 宝石没有其他可变状态。
type GemComponent struct{}
