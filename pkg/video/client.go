package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/awilder/go-lookout/internal/httpc"
)

const providerStability = "stability"

// Client calls the Stability image-to-video API.
type Client struct {
	baseURL string
	apiKey  string
	config  *Config
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a new video client.
func NewClient(opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	cfg.Apply(opts...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		config:  cfg,
		http:    httpc.NewClient(cfg.Timeout),
		logger:  cfg.Logger.With("component", "video.client"),
	}, nil
}

// Start submits a square source image and returns the generation ID.
func (c *Client) Start(ctx context.Context, image []byte) (string, error) {
	seed := c.config.Seed
	if seed == 0 {
		seed = RandomSeed()
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("image", "image.png")
	if err != nil {
		return "", WrapError(providerStability, fmt.Errorf("build form: %w", err))
	}
	if _, err := part.Write(image); err != nil {
		return "", WrapError(providerStability, fmt.Errorf("build form: %w", err))
	}

	fields := map[string]string{
		"seed":             strconv.FormatInt(seed, 10),
		"cfg_scale":        strconv.FormatFloat(c.config.CfgScale, 'f', -1, 64),
		"motion_bucket_id": strconv.Itoa(c.config.MotionBucket),
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return "", WrapError(providerStability, fmt.Errorf("build form: %w", err))
		}
	}

	if err := form.Close(); err != nil {
		return "", WrapError(providerStability, fmt.Errorf("build form: %w", err))
	}

	url := c.baseURL + "/generation/image-to-video"
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return "", WrapError(providerStability, fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", WrapError(providerStability, fmt.Errorf("start generation: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.parseError(resp)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", WrapError(providerStability, fmt.Errorf("decode response: %w", err))
	}
	if result.ID == "" {
		return "", WrapError(providerStability, fmt.Errorf("no generation ID returned"))
	}

	c.logger.Info("generation started", "id", result.ID, "seed", seed)

	return result.ID, nil
}

// Result fetches the generation outcome once. Returns ErrInProgress
// while the service is still rendering; the video bytes when done.
func (c *Client) Result(ctx context.Context, id string) ([]byte, error) {
	url := c.baseURL + "/generation/image-to-video/result/" + id
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, WrapError(providerStability, fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "video/*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, WrapError(providerStability, fmt.Errorf("fetch result: %w", err))
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusAccepted:
		return nil, ErrInProgress
	case http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, WrapError(providerStability, fmt.Errorf("read video: %w", err))
		}
		return data, nil
	default:
		return nil, c.parseError(resp)
	}
}

// Await polls Result until the video is ready or ctx ends.
func (c *Client) Await(ctx context.Context, id string) ([]byte, error) {
	for {
		data, err := c.Result(ctx, id)
		if err == nil {
			c.logger.Info("generation complete", "id", id, "bytes", len(data))
			return data, nil
		}
		if err != ErrInProgress {
			return nil, err
		}

		c.logger.Debug("generation in progress", "id", id)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.config.PollInterval):
		}
	}
}

// Close releases resources.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// parseError reads and parses an error response.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	// Try to parse Stability-style error
	var errResp struct {
		Name   string   `json:"name"`
		Errors []string `json:"errors"`
	}

	message := string(body)
	if json.Unmarshal(body, &errResp) == nil && len(errResp.Errors) > 0 {
		message = strings.Join(errResp.Errors, "; ")
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Provider:   providerStability,
	}
}
