package video

import (
	"log/slog"
	"time"
)

// Config holds video client configuration.
// Use functional options (WithXxx) to set these values.
type Config struct {
	// Connection
	BaseURL string
	APIKey  string

	// Generation parameters
	Seed         int64
	CfgScale     float64
	MotionBucket int

	// Timeouts
	Timeout      time.Duration
	PollInterval time.Duration

	// Observability
	Logger *slog.Logger
}

// Option is a functional option for configuring the client.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) { c.BaseURL = url }
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) Option {
	return func(c *Config) { c.APIKey = key }
}

// WithSeed fixes the generation seed. Zero means a fresh random seed
// per generation.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithCfgScale sets how closely the video sticks to the source image.
func WithCfgScale(scale float64) Option {
	return func(c *Config) { c.CfgScale = scale }
}

// WithMotionBucket sets the amount of motion in the generated video.
func WithMotionBucket(bucket int) Option {
	return func(c *Config) { c.MotionBucket = bucket }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithPollInterval sets the delay between result polls.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) { c.PollInterval = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// DefaultConfig returns sensible defaults for Stability image-to-video.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      "https://api.stability.ai/v2alpha",
		CfgScale:     4,
		MotionBucket: 200,
		Timeout:      50 * time.Second,
		PollInterval: 10 * time.Second,
		Logger:       slog.Default(),
	}
}

// Apply applies functional options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}
	return nil
}
