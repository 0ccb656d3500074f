package config

import (
	"fmt"

	"github.com/decker502/gemrun/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TrackConfig 跑道配置数据结构
// 定义一条跑道上宝石的数量、间距和散布范围
type TrackConfig struct {
	ID         string  `yaml:"id"`         // 跑道ID，如 "endless-1"
	Name       string  `yaml:"name"`       // 跑道名称，如 "晨风平原"
	GemCount   int     `yaml:"gemCount"`   // 宝石总数，默认 100
	GemSpacing float64 `yaml:"gemSpacing"` // 相邻宝石的水平间距，默认 300
	FirstGemX  float64 `yaml:"firstGemX"`  // 第一颗宝石的 X 坐标，默认 600
	ScatterMin float64 `yaml:"scatterMin"` // 垂直散布下界（含），默认 -200
	ScatterMax float64 `yaml:"scatterMax"` // 垂直散布上界（不含），默认 200
	Seed       int64   `yaml:"seed"`       // 随机种子，0 表示使用默认种子
}

// DefaultTrackSeed 未配置种子时使用的默认随机种子
const DefaultTrackSeed = 42

// DefaultTrackConfig 返回内置默认跑道配置
// 当配置文件缺失或加载失败时作为兜底使用
func DefaultTrackConfig() *TrackConfig {
	return &TrackConfig{
		ID:         "default",
		Name:       "默认跑道",
		GemCount:   100,
		GemSpacing: 300.0,
		FirstGemX:  600.0,
		ScatterMin: -200.0,
		ScatterMax: 200.0,
		Seed:       DefaultTrackSeed,
	}
}

// LoadTrackConfig 从 YAML 文件加载跑道配置
// 参数：
//
//	filepath - 配置文件路径（嵌入文件系统内的路径，如 "data/levels/track.yaml"）
//
// 返回：
//
//	*TrackConfig - 解析后的跑道配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadTrackConfig(filepath string) (*TrackConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read track config file %s: %w", filepath, err)
	}

	var config TrackConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse track config YAML from %s: %w", filepath, err)
	}

	applyTrackDefaults(&config)

	if err := validateTrackConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid track config in %s: %w", filepath, err)
	}

	return &config, nil
}

// applyTrackDefaults 为 TrackConfig 中缺失的可选字段设置默认值
// 确保旧配置文件可正常加载
func applyTrackDefaults(config *TrackConfig) {
	def := DefaultTrackConfig()

	if config.ID == "" {
		config.ID = def.ID
	}

	if config.GemCount == 0 {
		config.GemCount = def.GemCount
	}

	if config.GemSpacing == 0 {
		config.GemSpacing = def.GemSpacing
	}

	if config.FirstGemX == 0 {
		config.FirstGemX = def.FirstGemX
	}

	// 散布上下界同时为 0 视为未配置
	if config.ScatterMin == 0 && config.ScatterMax == 0 {
		config.ScatterMin = def.ScatterMin
		config.ScatterMax = def.ScatterMax
	}

	if config.Seed == 0 {
		config.Seed = DefaultTrackSeed
	}
}

// validateTrackConfig 验证跑道配置的完整性和合法性
func validateTrackConfig(config *TrackConfig) error {
	if config.GemCount < 0 {
		return fmt.Errorf("gemCount cannot be negative, got %d", config.GemCount)
	}

	if config.GemSpacing < 0 {
		return fmt.Errorf("gemSpacing cannot be negative, got %f", config.GemSpacing)
	}

	if config.ScatterMin > config.ScatterMax {
		return fmt.Errorf("scatterMin (%f) must not exceed scatterMax (%f)", config.ScatterMin, config.ScatterMax)
	}

	return nil
}
