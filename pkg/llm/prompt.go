package llm

import (
	"fmt"
	"strings"

	"github.com/umputun/topicscope/pkg/domain"
)

const (
	maxPromptTrends      = 5
	maxPromptCompetitors = 5
	maxPromptThemes      = 5
	maxIdeaThemes        = 10
	maxIdeaTrends        = 15
)

// default system prompt for topic evaluation
const defaultSystemPrompt = `You are a YouTube content strategy expert. You evaluate video topic ideas for creators and always answer in the exact format requested.`

const evaluationDimensions = `Rate this topic on these 5 dimensions (0-100 scale):

1. IMPORTANCE (0-100): How relevant and important is this to the channel's niche and audience?
   - Alignment with channel's existing content
   - Audience interest and demand
   - Strategic fit for channel growth

2. WATCHABILITY (0-100): How likely will people watch and engage with this content?
   - Entertainment value
   - Educational value
   - Curiosity factor
   - Video length appeal

3. MONETIZATION (0-100): What's the revenue potential?
   - CPM potential for the niche
   - Sponsorship opportunities
   - Affiliate marketing potential
   - Product tie-in possibilities
   - Evergreen vs trending value

4. POPULARITY (0-100): How trending and popular is this topic right now?
   - Current search volume
   - Social media buzz
   - Seasonal relevance
   - Growth trajectory

5. INNOVATION (0-100): How unique and cutting-edge is this angle?
   - Uniqueness of approach
   - State-of-the-art appeal
   - Differentiation from competitors
   - Fresh perspective potential
`

const textResponseFormat = `Provide your response in this EXACT format:

IMPORTANCE: [score]/100
[2-3 sentence justification]

WATCHABILITY: [score]/100
[2-3 sentence justification]

MONETIZATION: [score]/100
[2-3 sentence justification]

POPULARITY: [score]/100
[2-3 sentence justification]

INNOVATION: [score]/100
[2-3 sentence justification]

RECOMMENDED ANGLE: [Your recommended angle or hook for this topic]

KEYWORDS: [5-7 relevant keywords, comma-separated]

COMPETITION LEVEL: [Low/Medium/High]

NOTES: [Any additional strategic insights]`

const jsonResponseFormat = `Respond with a single JSON object with these fields:
{"importance": 0-100, "watchability": 0-100, "monetization": 0-100, "popularity": 0-100, "innovation": 0-100,
"recommended_angle": "angle or hook", "keywords": ["5-7 keywords"], "competition_level": "Low|Medium|High", "notes": "strategic insights"}`

// BuildEvaluationPrompt creates the evaluation prompt for a single topic. The output is deterministic
// for the same input.
func BuildEvaluationPrompt(req EvaluateRequest, jsonMode bool) string {
	var sb strings.Builder
	ch := req.Channel

	sb.WriteString("You are a YouTube content strategy expert. Evaluate this content topic for a YouTube channel.\n\n")
	sb.WriteString(fmt.Sprintf("TOPIC: %s\n\n", req.Topic))

	sb.WriteString("CHANNEL CONTEXT:\n")
	sb.WriteString(fmt.Sprintf("- Channel: %s\n", valueOr(ch.ChannelTitle, "Unknown")))
	sb.WriteString(fmt.Sprintf("- Subscribers: %s\n", thousands(ch.SubscriberCount)))
	sb.WriteString(fmt.Sprintf("- Average Views: %s\n", thousands(int64(ch.AvgViews))))
	sb.WriteString(fmt.Sprintf("- Niche: %s\n", valueOr(string(ch.Niche), string(domain.NicheGeneral))))
	sb.WriteString(fmt.Sprintf("- Recent Video Themes: %s\n\n", strings.Join(head(ch.RecentThemes, maxPromptThemes), ", ")))

	if len(req.Trends) > 0 {
		sb.WriteString(fmt.Sprintf("CURRENT TRENDS: %s\n\n", strings.Join(head(req.Trends, maxPromptTrends), ", ")))
	}
	if len(req.Competitors) > 0 {
		sb.WriteString(fmt.Sprintf("TOP COMPETITOR TOPICS: %s\n\n", strings.Join(head(req.Competitors, maxPromptCompetitors), ", ")))
	}

	sb.WriteString(evaluationDimensions)
	sb.WriteString("\n")
	if jsonMode {
		sb.WriteString(jsonResponseFormat)
	} else {
		sb.WriteString(textResponseFormat)
	}
	return sb.String()
}

// BuildIdeasPrompt creates the prompt asking for count new topic ideas
func BuildIdeasPrompt(ch domain.ChannelContext, count int, trends []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are a YouTube content strategist. Generate %d high-potential video topic ideas for this channel:\n\n", count))
	sb.WriteString(fmt.Sprintf("CHANNEL: %s\n", valueOr(ch.ChannelTitle, "Unknown")))
	sb.WriteString(fmt.Sprintf("NICHE: %s\n", valueOr(string(ch.Niche), string(domain.NicheGeneral))))
	sb.WriteString(fmt.Sprintf("SUBSCRIBERS: %s\n", thousands(ch.SubscriberCount)))
	sb.WriteString(fmt.Sprintf("RECENT THEMES: %s\n\n", strings.Join(head(ch.RecentThemes, maxIdeaThemes), ", ")))
	if len(trends) > 0 {
		sb.WriteString(fmt.Sprintf("CURRENT TRENDS: %s\n\n", strings.Join(head(trends, maxIdeaTrends), ", ")))
	}
	sb.WriteString(fmt.Sprintf("Generate %d specific, actionable video topics that:\n", count))
	sb.WriteString("1. Align with the channel's niche and audience\n")
	sb.WriteString("2. Have high watch potential\n")
	sb.WriteString("3. Are monetizable\n")
	sb.WriteString("4. Include trending elements\n")
	sb.WriteString("5. Offer unique angles\n\n")
	sb.WriteString("Format: One topic per line, numbered.\n")
	sb.WriteString("Make each topic specific and compelling (not generic).\n\n")
	sb.WriteString("Topics:")
	return sb.String()
}

func head(vals []string, n int) []string {
	if len(vals) > n {
		return vals[:n]
	}
	return vals
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// thousands formats n with comma separators, e.g. 1234567 -> 1,234,567
func thousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
