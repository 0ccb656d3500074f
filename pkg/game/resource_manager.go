package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	gemaudio "github.com/decker502/gemrun/internal/audio"
	"github.com/decker502/gemrun/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images and audio assets,
// ensuring that resources are loaded only once and reused throughout the game.
//
// All resources are read from the embedded filesystem (see pkg/embedded), so
// embedded.Init must be called before any Load method.
//
// The ResourceManager implements the following key features:
// - Image loading and caching (PNG format support)
// - Audio loading and caching (AU/MP3/OGG format support)
// - Error handling for missing or corrupted resources
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps,
// which are not safe for concurrent access. For the current single-threaded game
// loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	img, err := rm.LoadImage("assets/images/rug.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // Cache for loaded images: path -> Image
	audioCache   map[string]*audio.Player // Cache for loaded audio players: path -> Player
	audioContext *audio.Context           // Global audio context for audio decoding

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback.
// It should be created once at game startup with a sample rate of 48000 Hz.
//
// Parameters:
//   - audioContext: The global audio context used for decoding and playing audio
//     files. May be nil for headless use; audio loading then fails with an error
//     while image loading keeps working.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
//
// Example:
//
//	audioContext := audio.NewContext(48000)
//	resourceManager := NewResourceManager(audioContext)
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG (via image/png decoder).
//
// Parameters:
//   - path: The embedded file path of the image resource (e.g., "assets/images/rug.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read, decoded, or converted.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	// Read the image file from the embedded filesystem
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	// Decode the image
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	// Convert to Ebitengine image
	ebitenImg := ebiten.NewImageFromImage(img)

	// Store in cache
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
// Use LoadImage to load and cache an image before calling this method.
//
// Parameters:
//   - path: The file path of the image resource.
//
// Returns:
//   - A pointer to the cached ebiten.Image, or nil if not found in cache.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadAudio loads an audio file from the specified path and caches it for future use.
// If the audio has already been loaded, it returns the cached player.
// Supported formats: Sun AU (.au), MP3 (.mp3) and OGG Vorbis (.ogg).
//
// The audio is automatically wrapped in an infinite loop, making it suitable for
// background music. For one-shot sound effects use LoadSoundEffect instead.
//
// Parameters:
//   - path: The embedded file path of the audio resource (e.g., "assets/sounds/music_drift.au").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be read, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	// Check if the audio is already cached
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context is nil, cannot load audio %s", path)
	}

	// Decode the audio data
	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	// Wrap the stream in an infinite loop for background music
	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	// Create an audio player
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	// Store in cache
	rm.audioCache[path] = player

	return player, nil
}

// LoadSoundEffect loads a sound effect from the specified path and caches it for future use.
// Unlike LoadAudio, this method does NOT wrap the audio in an infinite loop,
// making it suitable for one-shot sound effects like the gem collection chime.
// Supported formats: Sun AU (.au), MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Parameters:
//   - path: The embedded file path of the sound effect (e.g., "assets/sounds/gem_collection.au").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be read, decoded, or the format is unsupported.
//
// Example:
//
//	player, err := rm.LoadSoundEffect("assets/sounds/gem_collection.au")
//	if err != nil {
//	    log.Printf("Failed to load sound effect: %v", err)
//	    return err
//	}
//	player.Play() // Play once
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	// Check if the audio is already cached
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context is nil, cannot load sound effect %s", path)
	}

	// Decode the audio data (without infinite loop)
	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	// Create an audio player WITHOUT infinite loop
	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	// Store in cache
	rm.audioCache[path] = player

	return player, nil
}

// audioStream 是解码后音频流的最小接口
// 所有支持格式的解码器都返回满足该接口的流（16-bit LE PCM）
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio reads an embedded audio file and decodes it by extension.
// The whole file is read into memory so the stream can seek freely.
func (rm *ResourceManager) decodeAudio(path string) (audioStream, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".au":
		decodedStream, err := gemaudio.DecodeAU(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU audio %s: %w", path, err)
		}
		return decodedStream, nil
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return decodedStream, nil
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return decodedStream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .au, .mp3, .ogg)", ext)
	}
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache.
// The key may be either a file path or a resource ID from the YAML configuration.
// If the audio has not been loaded yet, it returns nil.
//
// Parameters:
//   - pathOrID: The file path or resource ID of the audio resource.
//
// Returns:
//   - A pointer to the cached audio.Player, or nil if not found in cache.
func (rm *ResourceManager) GetAudioPlayer(pathOrID string) *audio.Player {
	if player, exists := rm.audioCache[pathOrID]; exists {
		return player
	}

	// Fall back to resource ID lookup
	if filePath, exists := rm.resourceMap[pathOrID]; exists {
		return rm.audioCache[filePath]
	}

	return nil
}

// LoadResourceConfig loads the resource configuration from an embedded YAML file.
// This method should be called once during game initialization, before loading any resources.
//
// The configuration file defines resource groups and their contents, allowing resources
// to be loaded by ID instead of hard-coded paths.
//
// Parameters:
//   - configPath: Path to the YAML configuration file (e.g., "assets/config/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read or parsed
//
// Example:
//
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal("Failed to load resource config:", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	// Read the YAML file from the embedded filesystem
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	// Parse YAML into ResourceConfig struct
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	// Store the parsed configuration
	rm.config = &config

	// Build resource ID -> path mapping for quick lookup
	rm.buildResourceMap()

	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
// This allows fast lookup when loading resources by ID.
//
// The mapping combines the base path with each resource's relative path.
// For example:
//
//	IMAGE_RUG -> assets/images/rug.png
//	SOUND_GEM_COLLECTION -> assets/sounds/gem_collection.au
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	// Clear existing mapping
	rm.resourceMap = make(map[string]string)

	// Iterate through all resource groups
	for _, group := range rm.config.Groups {
		// Process images in this group
		for _, img := range group.Images {
			// Build full path: basePath + relativePath
			fullPath := buildFullPath(rm.config.BasePath, img.Path)

			// Add file extension if not present
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}

			rm.resourceMap[img.ID] = fullPath
		}

		// Process sounds in this group
		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)

			// Add file extension if not present
			if filepath.Ext(fullPath) == "" {
				fullPath += ".au" // Default to AU for sounds
			}

			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// LoadImageByID loads an image resource using its resource ID.
// The resource ID must be defined in the YAML configuration file.
//
// This method first looks up the file path associated with the ID,
// then loads the image using the standard LoadImage method.
//
// Parameters:
//   - resourceID: The resource ID (e.g., "IMAGE_RUG", "IMAGE_GEM")
//
// Returns:
//   - A pointer to the loaded ebiten.Image
//   - An error if the ID is not found or the image cannot be loaded
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	// Check if resource config is loaded
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	// Look up the file path for this resource ID
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	// Load the image using the resolved path
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// If the image has not been loaded yet, it returns nil.
//
// Parameters:
//   - resourceID: The resource ID (e.g., "IMAGE_RUG")
//
// Returns:
//   - A pointer to the cached ebiten.Image, or nil if not found
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	if rm.config == nil {
		return nil
	}

	// Look up the file path
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}

	// Get from cache
	return rm.GetImage(filePath)
}

// LoadResourceGroup loads all resources in a specified group.
// Resource groups are defined in the YAML configuration file.
//
// Parameters:
//   - groupName: The name of the resource group (e.g., "gameplay")
//
// Returns:
//   - An error if the group is not found or any resource fails to load
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	// Check if resource config is loaded
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	// Find the resource group
	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	// Load all images in the group
	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	// Load all sounds in the group
	for _, sound := range group.Sounds {
		// Look up the file path
		filePath, exists := rm.resourceMap[sound.ID]
		if !exists {
			return fmt.Errorf("sound resource ID not found: %s", sound.ID)
		}

		// 以 SOUND_MUSIC 开头的资源按背景音乐处理（无限循环流），
		// 其余按一次性音效处理
		var err error
		if strings.HasPrefix(sound.ID, "SOUND_MUSIC") {
			_, err = rm.LoadAudio(filePath)
		} else {
			_, err = rm.LoadSoundEffect(filePath)
		}
		if err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	return nil
}

// LoadAllResources loads every resource group defined in the configuration.
// This is suitable for small asset sets where up-front loading is cheap.
//
// Returns:
//   - An error if any group fails to load
func (rm *ResourceManager) LoadAllResources() error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	for groupName := range rm.config.Groups {
		if err := rm.LoadResourceGroup(groupName); err != nil {
			return fmt.Errorf("failed to load resource group %s: %w", groupName, err)
		}
	}

	return nil
}
