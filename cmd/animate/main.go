// Animate turns a square still image into a short video.
//
// The source image is resized to the API's 768x768 edge, submitted to
// the image-to-video endpoint, and the result is polled until the video
// is ready. Requires STABILITY_API_KEY.
package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"os/signal"
	"syscall"

	"github.com/awilder/go-lookout/internal/config"
	"github.com/awilder/go-lookout/internal/log"
	"github.com/awilder/go-lookout/pkg/video"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "Usage: animate <image> [output.mp4]")
		return 1
	}
	imagePath := os.Args[1]
	outputPath := "video.mp4"
	if len(os.Args) == 3 {
		outputPath = os.Args[2]
	}

	cfg, err := config.LoadVideo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: STABILITY_API_KEY=sk-... animate <image>")
		return 1
	}

	log.Init(cfg.LogLevel)
	logger := log.L()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	resized, err := loadResized(imagePath)
	if err != nil {
		logger.Error("prepare image", "image", imagePath, "error", err)
		return 1
	}

	client, err := video.NewClient(
		video.WithAPIKey(cfg.StabilityKey),
		video.WithLogger(logger),
	)
	if err != nil {
		logger.Error("video client", "error", err)
		return 1
	}
	defer client.Close()

	id, err := client.Start(ctx, resized)
	if err != nil {
		logger.Error("start generation", "error", err)
		return 1
	}

	data, err := client.Await(ctx, id)
	if err != nil {
		logger.Error("generation failed", "id", id, "error", err)
		return 1
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		logger.Error("write video", "path", outputPath, "error", err)
		return 1
	}

	logger.Info("video written", "path", outputPath, "bytes", len(data))
	return 0
}

// loadResized reads a square source image and returns it as a 768x768 PNG.
func loadResized(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized, err := video.ResizeSquare(src, video.DefaultEdge)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
