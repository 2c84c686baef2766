package video

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientStart(t *testing.T) {
	imageBytes := []byte("png payload")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generation/image-to-video" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Expected Bearer test-key, got %s", auth)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse form: %v", err)
		}

		file, _, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("image part missing: %v", err)
		}
		defer file.Close()

		if r.FormValue("seed") != "42" {
			t.Errorf("Expected seed 42, got %s", r.FormValue("seed"))
		}
		if r.FormValue("cfg_scale") != "4" {
			t.Errorf("Expected cfg_scale 4, got %s", r.FormValue("cfg_scale"))
		}
		if r.FormValue("motion_bucket_id") != "200" {
			t.Errorf("Expected motion_bucket_id 200, got %s", r.FormValue("motion_bucket_id"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "gen-123"})
	}))
	defer server.Close()

	client, err := NewClient(
		WithAPIKey("test-key"),
		WithBaseURL(server.URL),
		WithSeed(42),
	)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	id, err := client.Start(context.Background(), imageBytes)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if id != "gen-123" {
		t.Errorf("Expected gen-123, got %s", id)
	}
}

func TestClientStartError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"name":   "bad_request",
			"errors": []string{"image dimensions must be 768x768"},
		})
	}))
	defer server.Close()

	client, _ := NewClient(WithAPIKey("test-key"), WithBaseURL(server.URL))
	defer client.Close()

	_, err := client.Start(context.Background(), []byte("png"))
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("Expected 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "image dimensions must be 768x768" {
		t.Errorf("Unexpected message: %s", apiErr.Message)
	}
}

func TestClientResult(t *testing.T) {
	t.Run("in progress", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/generation/image-to-video/result/gen-123" {
				t.Errorf("Unexpected path: %s", r.URL.Path)
			}
			if accept := r.Header.Get("Accept"); accept != "video/*" {
				t.Errorf("Expected Accept video/*, got %s", accept)
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client, _ := NewClient(WithAPIKey("test-key"), WithBaseURL(server.URL))
		defer client.Close()

		_, err := client.Result(context.Background(), "gen-123")
		if err != ErrInProgress {
			t.Errorf("Expected ErrInProgress, got %v", err)
		}
	})

	t.Run("complete", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "video/mp4")
			w.Write([]byte("mp4 bytes"))
		}))
		defer server.Close()

		client, _ := NewClient(WithAPIKey("test-key"), WithBaseURL(server.URL))
		defer client.Close()

		data, err := client.Result(context.Background(), "gen-123")
		if err != nil {
			t.Fatalf("Result failed: %v", err)
		}
		if string(data) != "mp4 bytes" {
			t.Errorf("Unexpected payload: %q", data)
		}
	})

	t.Run("failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"name":   "not_found",
				"errors": []string{"generation not found"},
			})
		}))
		defer server.Close()

		client, _ := NewClient(WithAPIKey("test-key"), WithBaseURL(server.URL))
		defer client.Close()

		_, err := client.Result(context.Background(), "gen-999")
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("Expected APIError, got %T", err)
		}
		if apiErr.Message != "generation not found" {
			t.Errorf("Unexpected message: %s", apiErr.Message)
		}
	})
}

func TestClientAwait(t *testing.T) {
	var polls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		if polls < 3 {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		w.Write([]byte("mp4 bytes"))
	}))
	defer server.Close()

	client, _ := NewClient(
		WithAPIKey("test-key"),
		WithBaseURL(server.URL),
		WithPollInterval(time.Millisecond),
	)
	defer client.Close()

	data, err := client.Await(context.Background(), "gen-123")
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if string(data) != "mp4 bytes" {
		t.Errorf("Unexpected payload: %q", data)
	}
	if polls != 3 {
		t.Errorf("Expected 3 polls, got %d", polls)
	}
}

func TestClientAwaitContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, _ := NewClient(
		WithAPIKey("test-key"),
		WithBaseURL(server.URL),
		WithPollInterval(time.Minute),
	)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Await(ctx, "gen-123")
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestClientNoAPIKey(t *testing.T) {
	_, err := NewClient()
	if err != ErrNoAPIKey {
		t.Errorf("Expected ErrNoAPIKey, got %v", err)
	}
}

func TestRandomSeedRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		seed := RandomSeed()
		if seed < 1 || seed > 4294967294 {
			t.Fatalf("seed %d out of range", seed)
		}
	}
}
