// Package narrator wires the single-shot pipeline: capture a frame,
// describe it, synthesize the description, play the audio.
//
// Every collaborator is an interface so the flow can be exercised in
// tests without a camera, network or audio device. The pipeline is
// strictly sequential and fails fast: the first error ends the run,
// and a cancelled capture skips the service calls entirely.
package narrator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/awilder/go-lookout/pkg/audio"
	"github.com/awilder/go-lookout/pkg/capture"
	"github.com/awilder/go-lookout/pkg/tts"
	"github.com/awilder/go-lookout/pkg/vision"
)

// ErrIncomplete is returned by New when a collaborator is missing.
var ErrIncomplete = errors.New("narrator: source, vision, tts and player are all required")

// Player plays a clip through the local audio output.
// *audio.Player satisfies this.
type Player interface {
	Play(ctx context.Context, clip *audio.Clip) error
}

// Config holds the pipeline's collaborators and settings.
type Config struct {
	Source capture.Source
	Vision vision.Provider
	TTS    tts.Provider
	Player Player

	// Prompt is the instruction sent with the captured frame.
	// Empty means the vision client's default.
	Prompt string

	// SaveFramesDir, when non-empty, saves the committed frame there.
	SaveFramesDir string

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Narrator runs the capture → describe → narrate → play pipeline.
type Narrator struct {
	cfg    Config
	logger *slog.Logger
}

// New validates the collaborators and builds a Narrator.
func New(cfg Config) (*Narrator, error) {
	if cfg.Source == nil || cfg.Vision == nil || cfg.TTS == nil || cfg.Player == nil {
		return nil, ErrIncomplete
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Narrator{
		cfg:    cfg,
		logger: logger.With("component", "narrator"),
	}, nil
}

// Run executes the pipeline once and returns the spoken description.
//
// Returns capture.ErrCancelled (unwrapped) when the user quits the
// preview without committing a frame; no service call is made in that
// case. Any service error ends the run before the next stage starts.
func (n *Narrator) Run(ctx context.Context) (string, error) {
	frame, err := n.cfg.Source.Capture(ctx)
	if err != nil {
		return "", err
	}

	if n.cfg.SaveFramesDir != "" {
		path, err := capture.SaveFrame(frame, n.cfg.SaveFramesDir)
		if err != nil {
			// Saving is a convenience, not a pipeline stage.
			n.logger.Warn("could not save frame", "error", err)
		} else {
			n.logger.Info("frame saved", "path", path)
		}
	}

	n.logger.Info("describing frame", "width", frame.Width, "height", frame.Height)

	desc, err := n.cfg.Vision.Describe(ctx, &vision.Request{
		Image:  frame.Image,
		Prompt: n.cfg.Prompt,
	})
	if err != nil {
		return "", err
	}

	n.logger.Info("description received",
		"chars", len(desc.Text),
		"model", desc.Model,
		"latency_ms", desc.LatencyMs,
	)

	result, err := n.cfg.TTS.Synthesize(ctx, desc.Text)
	if err != nil {
		return desc.Text, err
	}

	n.logger.Info("narration synthesized",
		"bytes", len(result.Audio),
		"latency_ms", result.LatencyMs,
	)

	if err := n.cfg.Player.Play(ctx, clipFrom(result)); err != nil {
		return desc.Text, err
	}

	return desc.Text, nil
}

// clipFrom converts a synthesis result into a playable clip.
func clipFrom(result *tts.AudioResult) *audio.Clip {
	return &audio.Clip{
		Data:       result.Audio,
		PCM:        result.Format.Encoding != tts.EncodingMP3,
		SampleRate: result.Format.SampleRate,
		Channels:   result.Format.Channels,
	}
}
