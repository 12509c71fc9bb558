package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/topicscope/pkg/domain"
)

func TestBuildEvaluationPrompt(t *testing.T) {
	req := EvaluateRequest{
		Topic: "FastAPI in 30 minutes",
		Channel: domain.ChannelContext{
			ChannelTitle:    "Code Lab",
			SubscriberCount: 1234567,
			AvgViews:        45000.7,
			Niche:           domain.NicheTechnology,
			RecentThemes:    []string{"python", "api", "docker", "k8s", "go", "rust"},
		},
		Trends:      []string{"t1", "t2", "t3", "t4", "t5", "t6"},
		Competitors: []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"},
	}

	t.Run("text format", func(t *testing.T) {
		prompt := BuildEvaluationPrompt(req, false)
		assert.Contains(t, prompt, "TOPIC: FastAPI in 30 minutes")
		assert.Contains(t, prompt, "- Channel: Code Lab")
		assert.Contains(t, prompt, "- Subscribers: 1,234,567")
		assert.Contains(t, prompt, "- Average Views: 45,000")
		assert.Contains(t, prompt, "- Niche: Technology")
		assert.Contains(t, prompt, "- Recent Video Themes: python, api, docker, k8s, go\n")
		assert.Contains(t, prompt, "CURRENT TRENDS: t1, t2, t3, t4, t5\n")
		assert.Contains(t, prompt, "TOP COMPETITOR TOPICS: c1, c2, c3, c4, c5\n")
		assert.Contains(t, prompt, "IMPORTANCE: [score]/100")
		assert.Contains(t, prompt, "COMPETITION LEVEL: [Low/Medium/High]")
		assert.NotContains(t, prompt, "t6")
		assert.NotContains(t, prompt, "c6")
		assert.Equal(t, prompt, BuildEvaluationPrompt(req, false), "deterministic")
	})

	t.Run("json format", func(t *testing.T) {
		prompt := BuildEvaluationPrompt(req, true)
		assert.Contains(t, prompt, `"recommended_angle"`)
		assert.NotContains(t, prompt, "IMPORTANCE: [score]/100")
	})

	t.Run("empty context", func(t *testing.T) {
		prompt := BuildEvaluationPrompt(EvaluateRequest{Topic: "x"}, false)
		assert.Contains(t, prompt, "- Channel: Unknown")
		assert.Contains(t, prompt, "- Subscribers: 0")
		assert.Contains(t, prompt, "- Niche: General")
		assert.NotContains(t, prompt, "CURRENT TRENDS")
		assert.NotContains(t, prompt, "TOP COMPETITOR TOPICS")
	})
}

func TestBuildIdeasPrompt(t *testing.T) {
	trends := make([]string, 20)
	for i := range trends {
		trends[i] = "trend" + string(rune('a'+i))
	}
	prompt := BuildIdeasPrompt(domain.ChannelContext{ChannelTitle: "Code Lab", Niche: domain.NicheTechnology}, 7, trends)
	assert.Contains(t, prompt, "Generate 7 high-potential video topic ideas")
	assert.Contains(t, prompt, "CHANNEL: Code Lab")
	assert.Contains(t, prompt, "NICHE: Technology")
	assert.Contains(t, prompt, "trendo")
	assert.NotContains(t, prompt, "trendp", "only first 15 trends")
	assert.True(t, strings.HasSuffix(prompt, "Topics:"))
}

func TestThousands(t *testing.T) {
	tbl := []struct {
		in   int64
		want string
	}{
		{0, "0"}, {999, "999"}, {1000, "1,000"}, {1234567, "1,234,567"}, {-12345, "-12,345"},
	}
	for _, tt := range tbl {
		assert.Equal(t, tt.want, thousands(tt.in))
	}
}
