package llm

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/topicscope/pkg/config"
	"github.com/umputun/topicscope/pkg/domain"
)

// minIdeaLength is the minimal length of a generated idea line to be kept
const minIdeaLength = 10

var ideaMarkerRe = regexp.MustCompile(`^(?:\d+[\.\)]|[-*•])\s*`)

// Evaluator uses LLM to score topics and generate topic ideas
type Evaluator struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
	sanitizer *bluemonday.Policy
}

// EvaluateRequest contains all parameters for a single topic evaluation
type EvaluateRequest struct {
	Topic       string
	Channel     domain.ChannelContext
	Trends      []string // trending titles, up to 5 are used
	Competitors []string // competitor video titles, up to 5 are used
}

// Scored is a topic title with its evaluation
type Scored struct {
	Title string
	domain.Evaluation
}

// NewEvaluator creates a new LLM evaluator
func NewEvaluator(cfg config.LLMConfig) *Evaluator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Evaluator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Evaluate scores a single topic. It never fails: a failed call returns DefaultEvaluation,
// an unparseable response returns zero scores with the parsed fields reported.
func (e *Evaluator) Evaluate(ctx context.Context, req EvaluateRequest) domain.Evaluation {
	prompt := BuildEvaluationPrompt(req, e.config.UseJSONMode)

	content, err := e.complete(ctx, prompt, e.config.Temperature, e.config.UseJSONMode)
	if err != nil {
		lgr.Printf("[ERROR] evaluation of %q failed, using default scores: %v", req.Topic, err)
		return DefaultEvaluation()
	}

	if e.config.UseJSONMode {
		if res, ok := ParseJSONEvaluation(content); ok {
			lgr.Printf("[DEBUG] evaluated %q: total %.1f, fields %v", req.Topic, res.TotalScore, res.ParsedFields)
			return res
		}
		lgr.Printf("[DEBUG] json evaluation of %q not decodable, parsing as text", req.Topic)
	}

	res := ParseEvaluation(content)
	if missing := missingScores(res.ParsedFields); len(missing) > 0 {
		lgr.Printf("[WARN] partial evaluation of %q, missing %s", req.Topic, strings.Join(missing, ", "))
	}
	lgr.Printf("[DEBUG] evaluated %q: total %.1f, fields %v", req.Topic, res.TotalScore, res.ParsedFields)
	return res
}

// BatchEvaluate evaluates topics one by one and returns them sorted by total score, descending.
// Topics with equal scores keep their input order.
func (e *Evaluator) BatchEvaluate(ctx context.Context, topics []string, ch domain.ChannelContext, trends, competitors []string) []Scored {
	res := make([]Scored, 0, len(topics))
	for i, t := range topics {
		lgr.Printf("[INFO] evaluating topic %d/%d: %s", i+1, len(topics), t)
		ev := e.Evaluate(ctx, EvaluateRequest{Topic: t, Channel: ch, Trends: trends, Competitors: competitors})
		res = append(res, Scored{Title: t, Evaluation: ev})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].TotalScore > res[j].TotalScore })
	return res
}

// GenerateTopicIdeas asks the LLM for count new topic titles for the channel
func (e *Evaluator) GenerateTopicIdeas(ctx context.Context, ch domain.ChannelContext, count int, trends []string) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	content, err := e.complete(ctx, BuildIdeasPrompt(ch, count, trends), e.config.IdeaTemperature, false)
	if err != nil {
		return nil, fmt.Errorf("generate topic ideas: %w", err)
	}

	ideas := e.parseIdeas(content)
	if len(ideas) > count {
		ideas = ideas[:count]
	}
	lgr.Printf("[INFO] generated %d topic ideas", len(ideas))
	return ideas, nil
}

// parseIdeas extracts one idea per line, strips enumeration markers and markup, drops short lines
func (e *Evaluator) parseIdeas(content string) []string {
	var res []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = ideaMarkerRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(html.UnescapeString(e.sanitizer.Sanitize(line)))
		line = strings.Trim(line, "*")
		if len([]rune(line)) <= minIdeaLength {
			continue
		}
		res = append(res, line)
	}
	return res
}

// complete sends a single chat completion request and returns the text of the first choice
func (e *Evaluator) complete(ctx context.Context, prompt string, temperature float64, jsonMode bool) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(temperature),
		MaxTokens:   e.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: e.systemMsg,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	// add JSON response format if enabled
	if jsonMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := e.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

func missingScores(parsed []string) []string {
	found := make(map[string]bool, len(parsed))
	for _, p := range parsed {
		found[p] = true
	}
	var res []string
	for _, f := range scoreFields {
		if !found[f.label] {
			res = append(res, f.label)
		}
	}
	return res
}
