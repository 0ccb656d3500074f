package main

import (
	"bytes"
	"image"
	_ "image/png"
	"testing"

	gemaudio "github.com/decker502/gemrun/internal/audio"
	"github.com/decker502/gemrun/pkg/config"
	"github.com/decker502/gemrun/pkg/embedded"
	"github.com/decker502/gemrun/pkg/game"
	"gopkg.in/yaml.v3"
)

// 这些测试走真实的嵌入文件系统，是整个测试套件里唯一
// 校验 assets/ 和 data/ 实际内容的地方（包级测试都用空 FS 跑无头模式）。

// initEmbedded 用根目录声明的真实 embed.FS 初始化资源访问
func initEmbedded(t *testing.T) {
	t.Helper()
	embedded.Init(assetsFS, dataFS)
}

// TestEmbeddedTrackConfig 默认跑道配置必须能从嵌入数据加载且数值正确
func TestEmbeddedTrackConfig(t *testing.T) {
	initEmbedded(t)

	cfg, err := config.LoadTrackConfig("data/levels/endless-1.yaml")
	if err != nil {
		t.Fatalf("LoadTrackConfig failed: %v", err)
	}

	if cfg.ID != "endless-1" {
		t.Errorf("Track ID = %s, want endless-1", cfg.ID)
	}
	if cfg.GemCount != 100 {
		t.Errorf("GemCount = %d, want 100", cfg.GemCount)
	}
	if cfg.GemSpacing != 300 || cfg.FirstGemX != 600 {
		t.Errorf("Gem layout = spacing %v firstX %v, want 300 / 600", cfg.GemSpacing, cfg.FirstGemX)
	}
	if cfg.ScatterMin != -200 || cfg.ScatterMax != 200 {
		t.Errorf("Scatter range = [%v, %v), want [-200, 200)", cfg.ScatterMin, cfg.ScatterMax)
	}
	if cfg.Seed != config.DefaultTrackSeed {
		t.Errorf("Seed = %d, want %d", cfg.Seed, config.DefaultTrackSeed)
	}
}

// TestEmbeddedResourceConfig 资源清单里声明的每个文件都必须真的嵌入了
func TestEmbeddedResourceConfig(t *testing.T) {
	initEmbedded(t)

	data, err := embedded.ReadFile("assets/config/resources.yaml")
	if err != nil {
		t.Fatalf("Failed to read resource config: %v", err)
	}

	var cfg game.ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Failed to parse resource config: %v", err)
	}
	if cfg.BasePath != "assets" {
		t.Errorf("base_path = %s, want assets", cfg.BasePath)
	}

	checked := 0
	for groupName, group := range cfg.Groups {
		for _, img := range group.Images {
			path := cfg.BasePath + "/" + img.Path
			if !embedded.Exists(path) {
				t.Errorf("Group %s: image %s -> %s not embedded", groupName, img.ID, path)
			}
			checked++
		}
		for _, sound := range group.Sounds {
			path := cfg.BasePath + "/" + sound.Path
			if !embedded.Exists(path) {
				t.Errorf("Group %s: sound %s -> %s not embedded", groupName, sound.ID, path)
			}
			checked++
		}
	}
	if checked == 0 {
		t.Error("Resource config declares no resources")
	}
}

// TestEmbeddedImages 贴图尺寸必须与渲染占位矩形使用的常量一致
func TestEmbeddedImages(t *testing.T) {
	initEmbedded(t)

	tests := []struct {
		path string
		size int
	}{
		{"assets/images/rug.png", int(config.PlayerSpriteSize)},
		{"assets/images/gem.png", int(config.GemSpriteSize)},
	}

	for _, tt := range tests {
		data, err := embedded.ReadFile(tt.path)
		if err != nil {
			t.Errorf("Failed to read %s: %v", tt.path, err)
			continue
		}
		imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Errorf("Failed to decode %s: %v", tt.path, err)
			continue
		}
		if format != "png" {
			t.Errorf("%s format = %s, want png", tt.path, format)
		}
		if imgCfg.Width != tt.size || imgCfg.Height != tt.size {
			t.Errorf("%s size = %dx%d, want %dx%d", tt.path, imgCfg.Width, imgCfg.Height, tt.size, tt.size)
		}
	}
}

// TestEmbeddedSounds 音频文件必须能解码且采样率与音频上下文一致（48kHz）
func TestEmbeddedSounds(t *testing.T) {
	initEmbedded(t)

	paths := []string{
		"assets/sounds/gem_collection.au",
		"assets/sounds/music_drift.au",
	}

	for _, path := range paths {
		data, err := embedded.ReadFile(path)
		if err != nil {
			t.Errorf("Failed to read %s: %v", path, err)
			continue
		}
		decoder, err := gemaudio.DecodeAU(bytes.NewReader(data))
		if err != nil {
			t.Errorf("Failed to decode %s: %v", path, err)
			continue
		}
		if decoder.SampleRate() != 48000 {
			t.Errorf("%s sample rate = %d, want 48000", path, decoder.SampleRate())
		}
		if decoder.Length() == 0 {
			t.Errorf("%s decoded to zero samples", path)
		}
	}
}
