package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAISynthesize(t *testing.T) {
	audioPayload := []byte("mp3 audio bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Expected Bearer test-key, got %s", auth)
		}

		var reqBody struct {
			Model string `json:"model"`
			Voice string `json:"voice"`
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		if reqBody.Model != ModelTTS1 {
			t.Errorf("Expected model tts-1, got %s", reqBody.Model)
		}
		if reqBody.Voice != VoiceNova {
			t.Errorf("Expected voice nova, got %s", reqBody.Voice)
		}
		if reqBody.Input != "Hello world" {
			t.Errorf("Unexpected input: %s", reqBody.Input)
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audioPayload)
	}))
	defer server.Close()

	provider, err := NewOpenAI(
		WithAPIKey("test-key"),
		WithBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	result, err := provider.Synthesize(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if string(result.Audio) != string(audioPayload) {
		t.Errorf("Unexpected audio payload: %q", result.Audio)
	}
	if result.Format.Encoding != EncodingMP3 {
		t.Errorf("Expected MP3 encoding, got %s", result.Format.Encoding)
	}
	if result.CharCount != 11 {
		t.Errorf("Expected 11 chars, got %d", result.CharCount)
	}
}

func TestOpenAISynthesizeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": "Incorrect API key provided",
				"code":    "invalid_api_key",
			},
		})
	}))
	defer server.Close()

	provider, err := NewOpenAI(WithAPIKey("bad-key"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	_, err = provider.Synthesize(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Code != "invalid_api_key" {
		t.Errorf("Expected code invalid_api_key, got %s", apiErr.Code)
	}
	if apiErr.Provider != "openai" {
		t.Errorf("Expected provider openai, got %s", apiErr.Provider)
	}
}

func TestOpenAIRetriesServerErrors(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("audio"))
	}))
	defer server.Close()

	provider, err := NewOpenAI(
		WithAPIKey("test-key"),
		WithBaseURL(server.URL),
		WithRetry(2, 1),
	)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	result, err := provider.Synthesize(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(result.Audio) != "audio" {
		t.Errorf("Unexpected audio: %q", result.Audio)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestOpenAIRetryExhaustionKeepsErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": "model overloaded",
				"code":    "server_error",
			},
		})
	}))
	defer server.Close()

	provider, err := NewOpenAI(
		WithAPIKey("test-key"),
		WithBaseURL(server.URL),
		WithRetry(1, 1),
	)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	_, err = provider.Synthesize(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Message != "model overloaded" {
		t.Errorf("Expected message from final response, got %q", apiErr.Message)
	}
	if apiErr.Code != "server_error" {
		t.Errorf("Expected code server_error, got %q", apiErr.Code)
	}
}

func TestOpenAINoAPIKey(t *testing.T) {
	_, err := NewOpenAI()
	if err != ErrNoAPIKey {
		t.Errorf("Expected ErrNoAPIKey, got %v", err)
	}
}

func TestOpenAIDefaultVoice(t *testing.T) {
	provider, err := NewOpenAI(WithAPIKey("test-key"))
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	if provider.VoiceID() != VoiceNova {
		t.Errorf("Expected default voice nova, got %s", provider.VoiceID())
	}
}

func TestElevenLabsSynthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text-to-speech/test-voice" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if key := r.Header.Get("xi-api-key"); key != "test-key" {
			t.Errorf("Expected xi-api-key test-key, got %s", key)
		}

		var reqBody struct {
			Text          string `json:"text"`
			ModelID       string `json:"model_id"`
			VoiceSettings struct {
				Stability float64 `json:"stability"`
			} `json:"voice_settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		if reqBody.Text != "Hello world" {
			t.Errorf("Unexpected text: %s", reqBody.Text)
		}
		if reqBody.ModelID != ModelTurboV2_5 {
			t.Errorf("Expected turbo model, got %s", reqBody.ModelID)
		}
		if reqBody.VoiceSettings.Stability != 0.5 {
			t.Errorf("Expected stability 0.5, got %f", reqBody.VoiceSettings.Stability)
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("elevenlabs audio"))
	}))
	defer server.Close()

	provider, err := NewElevenLabs(
		WithAPIKey("test-key"),
		WithVoice("test-voice"),
		WithBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	result, err := provider.Synthesize(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(result.Audio) != "elevenlabs audio" {
		t.Errorf("Unexpected audio: %q", result.Audio)
	}
	if result.Format.Encoding != EncodingMP3 {
		t.Errorf("Expected MP3 encoding, got %s", result.Format.Encoding)
	}
}

func TestElevenLabsSynthesizeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detail": map[string]interface{}{
				"message": "Invalid voice ID",
				"status":  "invalid_voice",
			},
		})
	}))
	defer server.Close()

	provider, err := NewElevenLabs(
		WithAPIKey("test-key"),
		WithVoice("bad-voice"),
		WithBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	_, err = provider.Synthesize(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("Expected 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid voice ID" {
		t.Errorf("Unexpected message: %s", apiErr.Message)
	}
}

func TestElevenLabsRetryExhaustionKeepsErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detail": map[string]interface{}{
				"message": "quota exceeded",
				"status":  "too_many_requests",
			},
		})
	}))
	defer server.Close()

	provider, err := NewElevenLabs(
		WithAPIKey("test-key"),
		WithVoice("test-voice"),
		WithBaseURL(server.URL),
		WithRetry(1, 1),
	)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	_, err = provider.Synthesize(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != 429 {
		t.Errorf("Expected 429, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "quota exceeded" {
		t.Errorf("Expected message from final response, got %q", apiErr.Message)
	}
}

func TestElevenLabsRequiresVoice(t *testing.T) {
	_, err := NewElevenLabs(WithAPIKey("test-key"))
	if err != ErrNoVoiceID {
		t.Errorf("Expected ErrNoVoiceID, got %v", err)
	}
}

func TestElevenLabsHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("Expected /user, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"subscription": "free"})
	}))
	defer server.Close()

	provider, err := NewElevenLabs(
		WithAPIKey("test-key"),
		WithVoice("test-voice"),
		WithBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	if err := provider.Health(context.Background()); err != nil {
		t.Errorf("Health check failed: %v", err)
	}
}
