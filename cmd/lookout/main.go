// Lookout captures a webcam frame, describes it and speaks the
// description.
//
// Flow: preview window opens, 'c' commits the frame on screen, 'q' or
// closing the window quits. The committed frame goes to the
// description API, the returned text goes to the narration API, and
// the audio plays to completion before the program exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/awilder/go-lookout/internal/config"
	"github.com/awilder/go-lookout/internal/log"
	"github.com/awilder/go-lookout/pkg/audio"
	"github.com/awilder/go-lookout/pkg/capture"
	"github.com/awilder/go-lookout/pkg/narrator"
	"github.com/awilder/go-lookout/pkg/tts"
	"github.com/awilder/go-lookout/pkg/vision"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: OPENAI_API_KEY=sk-... lookout")
		return 1
	}

	log.Init(cfg.LogLevel)
	logger := log.L()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cam, err := capture.NewWebcam(cfg.CameraID, logger)
	if err != nil {
		logger.Error("camera unavailable", "device", cfg.CameraID, "error", err)
		return 1
	}
	defer cam.Close()

	visionClient, err := vision.NewClient(
		vision.WithAPIKey(cfg.OpenAIKey),
		vision.WithModel(cfg.VisionModel),
		vision.WithPrompt(cfg.Prompt),
		vision.WithLogger(logger),
	)
	if err != nil {
		logger.Error("vision client", "error", err)
		return 1
	}
	defer visionClient.Close()

	speech, err := buildTTS(cfg, logger)
	if err != nil {
		logger.Error("tts provider", "error", err)
		return 1
	}
	defer speech.Close()

	saveDir := ""
	if cfg.SaveFrames {
		saveDir = "."
	}

	n, err := narrator.New(narrator.Config{
		Source:        cam,
		Vision:        visionClient,
		TTS:           speech,
		Player:        audio.NewPlayer(logger),
		Prompt:        cfg.Prompt,
		SaveFramesDir: saveDir,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("pipeline setup", "error", err)
		return 1
	}

	text, err := n.Run(ctx)
	if errors.Is(err, capture.ErrCancelled) {
		logger.Info("no frame captured, exiting")
		return 0
	}
	if err != nil {
		logger.Error("run failed", "error", err)
		return 1
	}

	fmt.Println("--------------------")
	fmt.Println(text)
	fmt.Println("--------------------")

	return 0
}

// buildTTS returns the narration backend: OpenAI by default, with
// ElevenLabs tried first when its key is configured.
func buildTTS(cfg *config.Config, logger *slog.Logger) (tts.Provider, error) {
	openai, err := tts.NewOpenAI(
		tts.WithAPIKey(cfg.OpenAIKey),
		tts.WithVoice(cfg.Voice),
		tts.WithModel(cfg.TTSModel),
		tts.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	if cfg.ElevenLabsKey == "" {
		return openai, nil
	}

	eleven, err := tts.NewElevenLabs(
		tts.WithAPIKey(cfg.ElevenLabsKey),
		tts.WithVoice(cfg.ElevenLabsVoice),
		tts.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return tts.NewChainWithLogger(logger, eleven, openai)
}
