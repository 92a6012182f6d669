package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q", req.Model)
		}
		json.NewEncoder(w).Encode(generateResponse{Response: "hello", Done: true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model")
	out, err := c.Generate(context.Background(), "say hello", false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello" {
		t.Errorf("response = %q, want hello", out)
	}
}

func TestClientGenerateStream(t *testing.T) {
	parts := []string{"{\"title\"", ":", "\"x\"}"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i, p := range parts {
			frame, _ := json.Marshal(generateResponse{Response: p, Done: i == len(parts)-1})
			fmt.Fprintf(w, "%s\n", frame)
		}
	}))
	defer srv.Close()

	var progress []int
	c := NewClient(srv.URL, "test-model")
	out, err := c.Generate(context.Background(), "stream it", true, func(n int) {
		progress = append(progress, n)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"title":"x"}` {
		t.Errorf("concatenated response = %q", out)
	}
	if len(progress) != len(parts) {
		t.Fatalf("got %d progress calls, want %d", len(progress), len(parts))
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] <= progress[i-1] {
			t.Errorf("progress not increasing: %v", progress)
		}
	}
}

func TestClientGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model")
	_, err := c.Generate(context.Background(), "anything", false, nil)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("got %v, want ErrBackendUnavailable", err)
	}
}

func TestClientGenerateUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "test-model")
	_, err := c.Generate(context.Background(), "anything", false, nil)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("got %v, want ErrBackendUnavailable", err)
	}
}

func TestClientGenerateCancelled(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server's background read detects the
		// client disconnect and cancels r.Context().
		io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c := NewClient(srv.URL, "test-model")
	_, err := c.Generate(ctx, "anything", false, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"fenced block", "noise ```json\n{\"a\":1}\n``` more", `{"a":1}`, true},
		{"fence without language tag", "```\n[1,2]\n```", "[1,2]", true},
		{"bare object", `the answer is {"a":1} obviously`, `{"a":1}`, true},
		{"bare array", `lead [1,2,3] tail`, `[1,2,3]`, true},
		{"nothing", "just words", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSON(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
