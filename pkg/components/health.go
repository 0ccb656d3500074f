package components

// HealthComponent 存储玩家的生命值信息
//
// 不变量：0 <= CurrentHealth <= MaxHealth。
// 所有扣血必须通过 Damage 进行，保证生命值永远不会变成负数。
// 本作没有任何回血途径，CurrentHealth 单调不增。
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Damage 扣除 amount 点生命值，下限截断为 0
// amount <= 0 时不做任何事
func (h *HealthComponent) Damage(amount int) {
	if amount <= 0 {
		return
	}
	h.CurrentHealth -= amount
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
}

// IsDead 返回生命值是否已耗尽
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}
