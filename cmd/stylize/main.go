// Stylize renders one image per catalog style for a base prompt.
//
// Each style's image is saved as <style>.png in the output directory,
// and an index.html table records the original and revised prompt per
// image. A style that fails is logged and skipped so one rejection does
// not waste the rest of the batch.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/awilder/go-lookout/internal/config"
	"github.com/awilder/go-lookout/internal/log"
	"github.com/awilder/go-lookout/pkg/imagegen"
)

// rateLimitDelay spaces out generation requests.
const rateLimitDelay = time.Second

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: stylize <prompt> <output-dir>")
		return 1
	}
	prompt, dir := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log.Init(cfg.LogLevel)
	logger := log.L()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("create output dir", "dir", dir, "error", err)
		return 1
	}

	client, err := imagegen.NewClient(
		imagegen.WithAPIKey(cfg.OpenAIKey),
		imagegen.WithLogger(logger),
	)
	if err != nil {
		logger.Error("imagegen client", "error", err)
		return 1
	}
	defer client.Close()

	var generated []imagegen.Image
	for _, style := range imagegen.Styles {
		select {
		case <-ctx.Done():
			logger.Info("interrupted", "generated", len(generated))
			return 1
		case <-time.After(rateLimitDelay):
		}

		logger.Info("generating", "style", style)

		img, err := client.Generate(ctx, imagegen.StyledPrompt(prompt, style))
		if err != nil {
			logger.Warn("style failed, skipping", "style", style, "error", err)
			continue
		}

		data, err := client.Download(ctx, img.URL)
		if err != nil {
			logger.Warn("download failed, skipping", "style", style, "error", err)
			continue
		}

		path := filepath.Join(dir, styleFileName(style))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			logger.Error("save image", "path", path, "error", err)
			return 1
		}
		img.LocalPath = filepath.Base(path)
		generated = append(generated, *img)

		logger.Info("saved", "path", path)
	}

	indexPath := filepath.Join(dir, "index.html")
	if err := imagegen.WriteHTMLIndex(indexPath, generated); err != nil {
		logger.Error("write index", "error", err)
		return 1
	}

	logger.Info("done",
		"generated", len(generated),
		"skipped", len(imagegen.Styles)-len(generated),
		"index", indexPath,
	)
	return 0
}

// styleFileName maps a catalog style to a safe file name.
// "Rennaissance/Baroque" must not become a subdirectory.
func styleFileName(style string) string {
	return strings.ReplaceAll(style, "/", "-") + ".png"
}
