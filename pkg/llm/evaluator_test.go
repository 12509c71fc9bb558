package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/topicscope/pkg/config"
	"github.com/umputun/topicscope/pkg/domain"
)

// newTestServer returns a server answering chat completions with the content returned by respond
func newTestServer(t *testing.T, respond func(req openai.ChatCompletionRequest) string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: respond(req)}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(url string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:        url + "/v1",
		APIKey:          "test-key",
		Model:           "gpt-4o-mini",
		Temperature:     0.7,
		IdeaTemperature: 0.8,
		MaxTokens:       2000,
	}
}

func TestEvaluator_Evaluate(t *testing.T) {
	t.Run("text response", func(t *testing.T) {
		server := newTestServer(t, func(req openai.ChatCompletionRequest) string {
			assert.Equal(t, "gpt-4o-mini", req.Model)
			assert.InDelta(t, 0.7, req.Temperature, 0.001)
			assert.Equal(t, 2000, req.MaxTokens)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
			assert.Contains(t, req.Messages[1].Content, "TOPIC: Go generics explained")
			assert.Nil(t, req.ResponseFormat)
			return fullResponse
		})

		ev := NewEvaluator(testConfig(server.URL))
		res := ev.Evaluate(context.Background(), EvaluateRequest{Topic: "Go generics explained"})
		assert.InDelta(t, 77.85, res.TotalScore, 0.001)
		assert.Equal(t, domain.CompetitionHigh, res.CompetitionLevel)
		assert.False(t, res.Fallback)
	})

	t.Run("json mode", func(t *testing.T) {
		server := newTestServer(t, func(req openai.ChatCompletionRequest) string {
			require.NotNil(t, req.ResponseFormat)
			assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, req.ResponseFormat.Type)
			return `{"importance": 100, "watchability": 100, "monetization": 100, "popularity": 100, "innovation": 100, "competition_level": "low"}`
		})

		cfg := testConfig(server.URL)
		cfg.UseJSONMode = true
		res := NewEvaluator(cfg).Evaluate(context.Background(), EvaluateRequest{Topic: "x"})
		assert.InDelta(t, 100.0, res.TotalScore, 1e-9)
		assert.Equal(t, domain.CompetitionLow, res.CompetitionLevel)
	})

	t.Run("json mode falls back to text", func(t *testing.T) {
		server := newTestServer(t, func(openai.ChatCompletionRequest) string { return fullResponse })
		cfg := testConfig(server.URL)
		cfg.UseJSONMode = true
		res := NewEvaluator(cfg).Evaluate(context.Background(), EvaluateRequest{Topic: "x"})
		assert.InDelta(t, 77.85, res.TotalScore, 0.001)
	})

	t.Run("unparseable response is zero, not fallback", func(t *testing.T) {
		server := newTestServer(t, func(openai.ChatCompletionRequest) string { return "no idea" })
		res := NewEvaluator(testConfig(server.URL)).Evaluate(context.Background(), EvaluateRequest{Topic: "x"})
		assert.Zero(t, res.TotalScore)
		assert.False(t, res.Fallback)
		assert.Equal(t, domain.CompetitionMedium, res.CompetitionLevel)
	})

	t.Run("server error gives default scores", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": {"message": "boom"}}`))
		}))
		defer server.Close()

		res := NewEvaluator(testConfig(server.URL)).Evaluate(context.Background(), EvaluateRequest{Topic: "x"})
		assert.True(t, res.Fallback)
		assert.InDelta(t, 50.0, res.TotalScore, 1e-9)
	})

	t.Run("empty choices gives default scores", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
		}))
		defer server.Close()

		res := NewEvaluator(testConfig(server.URL)).Evaluate(context.Background(), EvaluateRequest{Topic: "x"})
		assert.True(t, res.Fallback)
	})
}

func TestEvaluator_BatchEvaluate(t *testing.T) {
	scores := map[string]string{
		"first":  "IMPORTANCE: 60\nWATCHABILITY: 60\nMONETIZATION: 60\nPOPULARITY: 60\nINNOVATION: 60",
		"second": "IMPORTANCE: 90\nWATCHABILITY: 90\nMONETIZATION: 90\nPOPULARITY: 90\nINNOVATION: 90",
		"third":  "IMPORTANCE: 60\nWATCHABILITY: 60\nMONETIZATION: 60\nPOPULARITY: 60\nINNOVATION: 60",
	}
	var calls int32
	server := newTestServer(t, func(req openai.ChatCompletionRequest) string {
		atomic.AddInt32(&calls, 1)
		for k, v := range scores {
			if strings.Contains(req.Messages[1].Content, "TOPIC: "+k+"\n") {
				return v
			}
		}
		return ""
	})

	res := NewEvaluator(testConfig(server.URL)).BatchEvaluate(context.Background(),
		[]string{"first", "second", "third"}, domain.ChannelContext{}, nil, nil)
	require.Len(t, res, 3)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, "second", res[0].Title)
	assert.Equal(t, "first", res[1].Title, "ties keep input order")
	assert.Equal(t, "third", res[2].Title)
}

func TestEvaluator_GenerateTopicIdeas(t *testing.T) {
	t.Run("parses numbered lines", func(t *testing.T) {
		server := newTestServer(t, func(req openai.ChatCompletionRequest) string {
			assert.InDelta(t, 0.8, req.Temperature, 0.001)
			assert.Contains(t, req.Messages[1].Content, "Generate 3 high-potential video topic ideas")
			return "Here are some ideas:\n\n1. Building a CLI in Go from scratch\n2) Docker &amp; Kubernetes for <b>beginners</b>\n3. Short\n- Testing Go services with testify\n4. Fourth idea that will be truncated"
		})

		ideas, err := NewEvaluator(testConfig(server.URL)).GenerateTopicIdeas(context.Background(),
			domain.ChannelContext{ChannelTitle: "Code Lab"}, 3, []string{"go"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Here are some ideas:",
			"Building a CLI in Go from scratch",
			"Docker & Kubernetes for beginners",
		}, ideas)
	})

	t.Run("zero count", func(t *testing.T) {
		ideas, err := NewEvaluator(testConfig("http://127.0.0.1:1")).GenerateTopicIdeas(context.Background(), domain.ChannelContext{}, 0, nil)
		require.NoError(t, err)
		assert.Empty(t, ideas)
	})

	t.Run("call error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewEvaluator(testConfig(server.URL)).GenerateTopicIdeas(context.Background(), domain.ChannelContext{}, 5, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generate topic ideas")
	})
}
