package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatStreams(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/x-ndjson")
		flusher := w.(http.Flusher)
		for _, chunk := range []string{
			`{"message":{"content":"Your resting"},"done":false}`,
			`{"message":{"content":" HR looks fine."},"done":false}`,
			`{"message":{"content":""},"done":true}`,
		} {
			w.Write([]byte(chunk + "\n"))
			flusher.Flush()
		}
	}))
	defer srv.Close()

	var fragments []string
	c := New(srv.URL)
	got, err := c.Chat(context.Background(), "deepseek-r1", "analyze this", func(s string) {
		fragments = append(fragments, s)
	})
	require.NoError(t, err)
	assert.Equal(t, "Your resting HR looks fine.", got)
	assert.Equal(t, []string{"Your resting", " HR looks fine."}, fragments)

	// Fixed request framing: system role, generation options, streaming on.
	assert.Equal(t, "deepseek-r1", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "analyze this", gotReq.Messages[1].Content)
	assert.True(t, gotReq.Stream)
	assert.Equal(t, 0.3, gotReq.Options["temperature"])
	assert.Equal(t, float64(6144), gotReq.Options["num_ctx"])
}

func TestChatKeepsCollectedOnStreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"content":"partial"},"done":false}` + "\n"))
		w.Write([]byte(`{"error":"model ran out of memory"}` + "\n"))
	}))
	defer srv.Close()

	got, err := New(srv.URL).Chat(context.Background(), "m", "p", nil)
	assert.EqualError(t, err, "model ran out of memory")
	assert.Equal(t, "partial", got)
}

func TestChatModelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model 'nope' not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Chat(context.Background(), "nope", "p", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestChatUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Chat(context.Background(), "m", "p", nil)
	assert.Error(t, err)
}

func TestChatTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"content":"slow"},"done":false}` + "\n"))
		w.(http.Flusher).Flush()
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	got, err := New(srv.URL).Chat(ctx, "m", "p", nil)
	assert.Error(t, err)
	assert.Equal(t, "slow", got)
}

func TestAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.Write([]byte(`{"models":[]}`))
	}))
	defer srv.Close()

	assert.True(t, New(srv.URL).Available(time.Second))
	assert.False(t, New("http://127.0.0.1:1").Available(100*time.Millisecond))
}

func TestHostResolution(t *testing.T) {
	assert.Equal(t, "http://myhost:11434", Host("http://myhost:11434/"))

	t.Setenv("OLLAMA_HOST", "http://envhost:11434")
	assert.Equal(t, "http://envhost:11434", Host(""))

	t.Setenv("OLLAMA_HOST", "")
	assert.Equal(t, DefaultHost, Host(""))
}
