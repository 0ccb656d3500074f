package game

import (
	"log"

	"github.com/decker502/gemrun/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// GamePhase 游戏阶段
type GamePhase int

const (
	// PhasePlaying 进行中：玩法系统正常推进
	PhasePlaying GamePhase = iota
	// PhaseGameOver 游戏结束：玩法系统停止，仅保留渲染和结算画面
	PhaseGameOver
)

// String 返回阶段的可读名称
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
type GameState struct {
	Score int // 当前得分（拾取宝石数，无上限）

	// 摄像机位置（世界坐标系统）
	CameraX float64 // 摄像机X位置，用于世界坐标和屏幕坐标转换

	// 游戏阶段（单向闩锁：Playing -> GameOver，场景重建前不会复位）
	phase GamePhase

	// 跨场景管理器
	settingsManager *SettingsManager // 设置管理器（延迟初始化）
	audioManager    *AudioManager    // 音频管理器（由 App 注入）
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{
			phase:   PhasePlaying,
			CameraX: config.PlayerStartX + config.CameraLookAhead,
		}
	}
	return globalGameState
}

// ResetForNewGame 重置单局状态
// 在创建新的游戏场景（开局或重新开始）时调用
// 注意：设置管理器和音频管理器跨局保留，不在此重置
func (gs *GameState) ResetForNewGame() {
	gs.Score = 0
	gs.phase = PhasePlaying
	gs.CameraX = config.PlayerStartX + config.CameraLookAhead
}

// AddScore 增加得分
// 得分没有上限，负数增量被忽略
func (gs *GameState) AddScore(amount int) {
	if amount < 0 {
		return
	}
	gs.Score += amount
}

// GetScore 返回当前得分
func (gs *GameState) GetScore() int {
	return gs.Score
}

// Phase 返回当前游戏阶段
func (gs *GameState) Phase() GamePhase {
	return gs.phase
}

// IsPlaying 返回游戏是否处于进行中阶段
func (gs *GameState) IsPlaying() bool {
	return gs.phase == PhasePlaying
}

// IsGameOver 返回游戏是否已结束
func (gs *GameState) IsGameOver() bool {
	return gs.phase == PhaseGameOver
}

// MarkGameOver 将游戏阶段切换到 GameOver
// 这是单向闩锁：重复调用无效果，只有第一次调用会记录日志
func (gs *GameState) MarkGameOver() {
	if gs.phase == PhaseGameOver {
		return
	}
	gs.phase = PhaseGameOver
	log.Printf("[GameState] Game over: final score=%d", gs.Score)
}

// GetSettingsManager 返回设置管理器，首次调用时延迟初始化
//
// gdata 存储打开失败时降级为纯内存模式（设置不持久化），不会返回 nil
func (gs *GameState) GetSettingsManager() *SettingsManager {
	if gs.settingsManager == nil {
		gdataManager, err := gdata.Open(gdata.Config{
			AppName: "gemrun",
		})
		if err != nil {
			log.Printf("[GameState] Warning: Failed to open gdata storage: %v (settings will not persist)", err)
			gdataManager = nil
		}

		sm, err := NewSettingsManager(gdataManager)
		if err != nil {
			log.Printf("[GameState] Warning: Failed to create settings manager: %v", err)
		}
		gs.settingsManager = sm
	}
	return gs.settingsManager
}

// SetAudioManager 设置音频管理器
// 由 App 在初始化时注入
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器
// 未初始化时返回 nil，调用方需要判空
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}
