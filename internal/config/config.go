// Package config loads configuration for go-lookout commands.
//
// Configuration is read once at process start from the environment
// (optionally seeded from a .env file) and passed explicitly into
// component constructors. Nothing re-reads the environment after Load.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment does not override them.
// Prompt, voice and model match the behavior the tool shipped with.
const (
	DefaultPrompt      = "Describe this image in about two sentences"
	DefaultVisionModel = "gpt-4o"
	DefaultTTSModel    = "tts-1"
	DefaultVoice       = "nova"
	DefaultCameraID    = 0
)

// Config holds everything the commands need, loaded once at startup.
type Config struct {
	// OpenAIKey authenticates both the description and narration calls.
	OpenAIKey string

	// ElevenLabsKey enables the alternate narration backend when set.
	ElevenLabsKey string

	// ElevenLabsVoice is the voice ID for the ElevenLabs backend.
	ElevenLabsVoice string

	// StabilityKey authenticates image-to-video generation.
	StabilityKey string

	// CameraID is the capture device index.
	CameraID int

	// Prompt is the instruction sent with the captured frame.
	Prompt string

	// VisionModel and TTSModel select the remote models.
	VisionModel string
	TTSModel    string

	// Voice selects the OpenAI narration voice.
	Voice string

	// SaveFrames writes the committed frame to photo-<uuid>.png.
	SaveFrames bool

	// LogLevel is debug, info, warn or error.
	LogLevel string
}

// Error reports missing or invalid configuration.
type Error struct {
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
//
// A missing OPENAI_API_KEY is the one fatal condition: the first
// service call cannot succeed without it, so it is surfaced here
// before any camera interaction.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ElevenLabsKey:   os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoice: os.Getenv("ELEVENLABS_VOICE_ID"),
		StabilityKey:    os.Getenv("STABILITY_API_KEY"),
		CameraID:        DefaultCameraID,
		Prompt:          envOr("LOOKOUT_PROMPT", DefaultPrompt),
		VisionModel:     envOr("LOOKOUT_VISION_MODEL", DefaultVisionModel),
		TTSModel:        envOr("LOOKOUT_TTS_MODEL", DefaultTTSModel),
		Voice:           envOr("LOOKOUT_VOICE", DefaultVoice),
		LogLevel:        envOr("LOOKOUT_LOG_LEVEL", "info"),
	}

	if cfg.OpenAIKey == "" {
		return nil, &Error{Key: "OPENAI_API_KEY", Reason: "not set"}
	}

	if v := os.Getenv("LOOKOUT_CAMERA"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id < 0 {
			return nil, &Error{Key: "LOOKOUT_CAMERA", Reason: "must be a non-negative device index"}
		}
		cfg.CameraID = id
	}

	if v := os.Getenv("LOOKOUT_SAVE_FRAMES"); v != "" {
		save, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &Error{Key: "LOOKOUT_SAVE_FRAMES", Reason: "must be a boolean"}
		}
		cfg.SaveFrames = save
	}

	return cfg, nil
}

// LoadVideo reads configuration for the animate command, which talks to
// Stability instead of OpenAI. STABILITY_API_KEY is the one required
// credential there.
func LoadVideo() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		StabilityKey: os.Getenv("STABILITY_API_KEY"),
		LogLevel:     envOr("LOOKOUT_LOG_LEVEL", "info"),
	}

	if cfg.StabilityKey == "" {
		return nil, &Error{Key: "STABILITY_API_KEY", Reason: "not set"}
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
