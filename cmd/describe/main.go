// Describe generates text descriptions for every image in a directory.
//
// For each .jpg/.jpeg/.png file it writes <name>_desc.txt next to the
// image, skipping images that already have one. Batch companion to the
// lookout command; no camera or audio involved.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/awilder/go-lookout/internal/config"
	"github.com/awilder/go-lookout/internal/log"
	"github.com/awilder/go-lookout/pkg/vision"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: describe <directory>")
		return 1
	}
	dir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log.Init(cfg.LogLevel)
	logger := log.L()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := vision.NewClient(
		vision.WithAPIKey(cfg.OpenAIKey),
		vision.WithModel(cfg.VisionModel),
		vision.WithPrompt(cfg.Prompt),
		vision.WithLogger(logger),
	)
	if err != nil {
		logger.Error("vision client", "error", err)
		return 1
	}
	defer client.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("read directory", "dir", dir, "error", err)
		return 1
	}

	var described, skipped int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		mime, err := vision.MIMETypeForPath(path)
		if err != nil {
			continue // not an image
		}

		out := descriptionPath(path)
		if _, err := os.Stat(out); err == nil {
			logger.Debug("already described", "image", path)
			skipped++
			continue
		}

		logger.Info("describing", "image", path)

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read image", "image", path, "error", err)
			return 1
		}

		desc, err := client.Describe(ctx, &vision.Request{
			ImageData: data,
			MIMEType:  mime,
		})
		if err != nil {
			logger.Error("describe failed", "image", path, "error", err)
			return 1
		}

		if err := os.WriteFile(out, []byte(desc.Text), 0o644); err != nil {
			logger.Error("write description", "path", out, "error", err)
			return 1
		}
		described++
	}

	logger.Info("done", "described", described, "skipped", skipped)
	return 0
}

// descriptionPath maps photo.jpg to photo_desc.txt.
func descriptionPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + "_desc.txt"
}
