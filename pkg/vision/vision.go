// Package vision turns images into natural-language descriptions.
//
// The package wraps an OpenAI-compatible chat completions API behind a
// small Provider interface so callers can swap the real client for a
// mock in tests.
//
// Example usage:
//
//	client, _ := vision.NewClient(
//	    vision.WithAPIKey(cfg.OpenAIKey),
//	    vision.WithModel("gpt-4o"),
//	)
//	defer client.Close()
//
//	desc, _ := client.Describe(ctx, &vision.Request{
//	    Image:  frame,
//	    Prompt: "Describe this image in about two sentences",
//	})
package vision

import (
	"context"
	"image"
)

// Provider is the image description interface.
type Provider interface {
	// Describe analyzes an image and returns a text description.
	Describe(ctx context.Context, req *Request) (*Description, error)

	// Health checks provider connectivity and API key validity.
	Health(ctx context.Context) error

	// Close releases any resources held by the provider.
	Close() error
}

// Request describes a single image.
type Request struct {
	// Image is the frame to describe. Takes precedence over ImageData.
	Image image.Image

	// ImageData is pre-encoded image bytes (JPEG or PNG) with its MIME
	// type, for describing files without decoding them first.
	ImageData []byte
	MIMEType  string

	// Prompt is the instruction sent alongside the image.
	Prompt string

	// Model overrides the default vision model.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls randomness.
	Temperature float64
}

// Description is the result of describing an image.
type Description struct {
	// Text is the natural-language description.
	Text string

	// Model used for the description.
	Model string

	// Usage tracks token consumption.
	Usage Usage

	// LatencyMs is the response time in milliseconds.
	LatencyMs int64
}

// Usage tracks token consumption for billing and limits.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
