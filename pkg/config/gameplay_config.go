package config

// 游戏玩法核心常量
// 所有速度单位为 世界单位/秒，距离单位为 世界单位
// 世界坐标系：X 向右为正，Y 向上为正（渲染时再翻转到屏幕坐标）
const (
	// ScrollSpeed 飞毯水平自动前进速度（单位/秒）
	// 玩家无法控制水平方向，始终以该速度向右移动
	ScrollSpeed = 300.0

	// VerticalSpeed 飞毯垂直操控速度（单位/秒）
	// 按住上/下方向键时施加，同时按住则相互抵消
	VerticalSpeed = 300.0

	// CameraLookAhead 相机相对玩家的前瞻偏移量
	// 每个模拟刻结束后 cameraX = playerX + CameraLookAhead
	CameraLookAhead = 200.0

	// CollectionRadius 宝石拾取判定半径
	// 玩家中心与宝石中心的欧氏距离严格小于该值时触发拾取
	// 恰好等于半径时不触发
	CollectionRadius = 30.0

	// PlayerStartX 玩家出生点 X 坐标
	PlayerStartX = 0.0

	// PlayerStartY 玩家出生点 Y 坐标（跑道中线）
	PlayerStartY = 0.0

	// PlayerMaxHealth 玩家初始生命值
	// 每拾取一颗宝石扣除 1 点，归零后进入游戏结束状态
	PlayerMaxHealth = 3

	// PlayerSpriteSize 飞毯贴图边长（像素，正方形）
	PlayerSpriteSize = 100.0

	// GemSpriteSize 宝石贴图边长（像素，正方形）
	GemSpriteSize = 25.0
)

// 固定步长模拟参数
// 玩法系统以固定频率推进，与渲染帧率解耦，保证相同种子下逐刻可复现
const (
	// SimulationTickRate 模拟频率（赫兹）
	SimulationTickRate = 64.0

	// SimulationTickSeconds 单个模拟刻的时长（秒） // 0.015625
	SimulationTickSeconds = 1.0 / SimulationTickRate

	// MaxTicksPerFrame 单帧最多补偿执行的模拟刻数
	// 渲染卡顿导致积压时丢弃多余时间，避免螺旋式追帧
	MaxTicksPerFrame = 4
)
