// Package audio plays synthesized narration through the local output
// device. Playback shells out to the first available system player
// binary and blocks until it exits, so the caller's run does not end
// before the audio finishes.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// ErrNoPlayer is returned when no supported player binary is installed.
var ErrNoPlayer = errors.New("audio: no player binary found")

// Clip is a playable audio payload.
type Clip struct {
	// Data is the audio bytes.
	Data []byte

	// PCM is true for raw s16le audio, false for MP3.
	PCM bool

	// SampleRate and Channels describe raw PCM data.
	SampleRate int
	Channels   int
}

// mp3Players are tried in order for compressed audio.
var mp3Players = []string{"afplay", "mpg123", "mpg321", "ffplay", "mpv"}

// Player plays clips through the local audio output.
type Player struct {
	dir    string
	logger *slog.Logger

	// Injection points for tests.
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewPlayer creates a player that stages narration files in the system
// temp directory.
func NewPlayer(logger *slog.Logger) *Player {
	return &Player{
		dir:      os.TempDir(),
		logger:   logger.With("component", "audio.player"),
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// Play writes the clip to a temporary narration file, plays it to
// completion and removes the file. Blocks until playback finishes.
func (p *Player) Play(ctx context.Context, clip *Clip) error {
	if clip == nil || len(clip.Data) == 0 {
		return nil
	}

	ext := ".mp3"
	if clip.PCM {
		ext = ".pcm"
	}

	path := filepath.Join(p.dir, fmt.Sprintf("narration-%s%s", uuid.NewString(), ext))
	if err := os.WriteFile(path, clip.Data, 0o644); err != nil {
		return fmt.Errorf("audio: write narration file: %w", err)
	}
	defer os.Remove(path)

	name, args, err := p.playerCommand(clip, path)
	if err != nil {
		return err
	}

	p.logger.Debug("playing narration",
		"player", name,
		"bytes", len(clip.Data),
	)

	if err := p.run(ctx, name, args...); err != nil {
		return fmt.Errorf("audio: %s: %w", name, err)
	}

	return nil
}

// playerCommand picks the first installed player and builds its argv.
func (p *Player) playerCommand(clip *Clip, path string) (string, []string, error) {
	if clip.PCM {
		// Raw PCM needs explicit format flags; only ffplay handles it.
		bin, err := p.lookPath("ffplay")
		if err != nil {
			return "", nil, fmt.Errorf("%w (raw PCM requires ffplay)", ErrNoPlayer)
		}
		return bin, []string{
			"-loglevel", "quiet", "-nodisp", "-autoexit",
			"-f", "s16le",
			"-ar", strconv.Itoa(clip.SampleRate),
			"-ch_layout", channelLayout(clip.Channels),
			path,
		}, nil
	}

	for _, candidate := range mp3Players {
		bin, err := p.lookPath(candidate)
		if err != nil {
			continue
		}
		switch candidate {
		case "ffplay":
			return bin, []string{"-loglevel", "quiet", "-nodisp", "-autoexit", path}, nil
		case "mpv":
			return bin, []string{"--no-video", "--really-quiet", path}, nil
		case "mpg123", "mpg321":
			return bin, []string{"-q", path}, nil
		default:
			return bin, []string{path}, nil
		}
	}

	return "", nil, fmt.Errorf("%w (tried %v)", ErrNoPlayer, mp3Players)
}

func channelLayout(channels int) string {
	if channels == 2 {
		return "stereo"
	}
	return "mono"
}
