package llm

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/umputun/topicscope/pkg/domain"
)

// response field labels
const (
	FieldImportance   = "IMPORTANCE"
	FieldWatchability = "WATCHABILITY"
	FieldMonetization = "MONETIZATION"
	FieldPopularity   = "POPULARITY"
	FieldInnovation   = "INNOVATION"
	FieldAngle        = "RECOMMENDED ANGLE"
	FieldKeywords     = "KEYWORDS"
	FieldCompetition  = "COMPETITION LEVEL"
	FieldNotes        = "NOTES"
)

// scoreField describes a numeric dimension, missing values stay 0
type scoreField struct {
	label string
	re    *regexp.Regexp
	set   func(e *domain.Evaluation, v float64)
}

var scoreFields = []scoreField{
	{FieldImportance, scoreRe(FieldImportance), func(e *domain.Evaluation, v float64) { e.Importance = v }},
	{FieldWatchability, scoreRe(FieldWatchability), func(e *domain.Evaluation, v float64) { e.Watchability = v }},
	{FieldMonetization, scoreRe(FieldMonetization), func(e *domain.Evaluation, v float64) { e.Monetization = v }},
	{FieldPopularity, scoreRe(FieldPopularity), func(e *domain.Evaluation, v float64) { e.Popularity = v }},
	{FieldInnovation, scoreRe(FieldInnovation), func(e *domain.Evaluation, v float64) { e.Innovation = v }},
}

var (
	angleRe       = regexp.MustCompile(`(?i)RECOMMENDED ANGLE:[ \t]*(.+)`)
	keywordsRe    = regexp.MustCompile(`(?i)KEYWORDS:[ \t]*(.+)`)
	competitionRe = regexp.MustCompile(`(?i)COMPETITION LEVEL:\s*(\w+)`)
	notesRe       = regexp.MustCompile(`(?is)NOTES:\s*(.+?)(?:\n[ \t]*\n|$)`)
)

func scoreRe(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + label + `:\s*(\d+)`)
}

// ParseEvaluation extracts the labeled fields from a free-text evaluation response.
// Missing scores are 0, a missing competition level is Medium, missing text fields are empty.
// The total score is always computed from whatever was found.
func ParseEvaluation(text string) domain.Evaluation {
	res := domain.Evaluation{CompetitionLevel: domain.CompetitionMedium, RawResponse: text}

	for _, f := range scoreFields {
		m := f.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		f.set(&res, clampScore(v))
		res.ParsedFields = append(res.ParsedFields, f.label)
	}

	if m := angleRe.FindStringSubmatch(text); m != nil {
		res.RecommendedAngle = strings.TrimSpace(m[1])
		res.ParsedFields = append(res.ParsedFields, FieldAngle)
	}
	if m := keywordsRe.FindStringSubmatch(text); m != nil {
		res.Keywords = splitKeywords(m[1])
		res.ParsedFields = append(res.ParsedFields, FieldKeywords)
	}
	if m := competitionRe.FindStringSubmatch(text); m != nil {
		res.CompetitionLevel = normalizeCompetition(m[1])
		res.ParsedFields = append(res.ParsedFields, FieldCompetition)
	}
	if m := notesRe.FindStringSubmatch(text); m != nil {
		res.Notes = strings.TrimSpace(m[1])
		res.ParsedFields = append(res.ParsedFields, FieldNotes)
	}

	res.TotalScore = TotalScore(res)
	return res
}

// jsonEvaluation is the structured response requested in JSON mode, pointers detect missing fields
type jsonEvaluation struct {
	Importance       *float64 `json:"importance"`
	Watchability     *float64 `json:"watchability"`
	Monetization     *float64 `json:"monetization"`
	Popularity       *float64 `json:"popularity"`
	Innovation       *float64 `json:"innovation"`
	RecommendedAngle *string  `json:"recommended_angle"`
	Keywords         []string `json:"keywords"`
	CompetitionLevel *string  `json:"competition_level"`
	Notes            *string  `json:"notes"`
}

// ParseJSONEvaluation decodes a structured evaluation response. Returns false if the text holds
// no decodable JSON object with at least one score, the caller should fall back to ParseEvaluation.
func ParseJSONEvaluation(text string) (domain.Evaluation, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start >= end {
		return domain.Evaluation{}, false
	}

	var je jsonEvaluation
	if err := json.Unmarshal([]byte(text[start:end+1]), &je); err != nil {
		return domain.Evaluation{}, false
	}

	res := domain.Evaluation{CompetitionLevel: domain.CompetitionMedium, RawResponse: text}
	scores := []struct {
		label string
		val   *float64
		dst   *float64
	}{
		{FieldImportance, je.Importance, &res.Importance},
		{FieldWatchability, je.Watchability, &res.Watchability},
		{FieldMonetization, je.Monetization, &res.Monetization},
		{FieldPopularity, je.Popularity, &res.Popularity},
		{FieldInnovation, je.Innovation, &res.Innovation},
	}
	for _, s := range scores {
		if s.val == nil {
			continue
		}
		*s.dst = clampScore(*s.val)
		res.ParsedFields = append(res.ParsedFields, s.label)
	}
	if len(res.ParsedFields) == 0 {
		return domain.Evaluation{}, false
	}

	if je.RecommendedAngle != nil {
		res.RecommendedAngle = strings.TrimSpace(*je.RecommendedAngle)
		res.ParsedFields = append(res.ParsedFields, FieldAngle)
	}
	if je.Keywords != nil {
		for _, k := range je.Keywords {
			if k = strings.TrimSpace(k); k != "" {
				res.Keywords = append(res.Keywords, k)
			}
		}
		res.ParsedFields = append(res.ParsedFields, FieldKeywords)
	}
	if je.CompetitionLevel != nil {
		res.CompetitionLevel = normalizeCompetition(*je.CompetitionLevel)
		res.ParsedFields = append(res.ParsedFields, FieldCompetition)
	}
	if je.Notes != nil {
		res.Notes = strings.TrimSpace(*je.Notes)
		res.ParsedFields = append(res.ParsedFields, FieldNotes)
	}

	res.TotalScore = TotalScore(res)
	return res, true
}

// TotalScore returns the weighted composite of the five dimensions: importance 25%, watchability,
// monetization and popularity 20% each, innovation 15%.
func TotalScore(e domain.Evaluation) float64 {
	return (e.Importance*25 + e.Watchability*20 + e.Monetization*20 + e.Popularity*20 + e.Innovation*15) / 100
}

// DefaultEvaluation is used when the evaluation call itself failed
func DefaultEvaluation() domain.Evaluation {
	res := domain.Evaluation{
		Importance:       50,
		Watchability:     50,
		Monetization:     50,
		Popularity:       50,
		Innovation:       50,
		RecommendedAngle: "Standard approach",
		Keywords:         []string{},
		CompetitionLevel: domain.CompetitionMedium,
		Notes:            "Evaluation failed - using default scores",
		Fallback:         true,
	}
	res.TotalScore = TotalScore(res)
	return res
}

func splitKeywords(s string) []string {
	var res []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			res = append(res, k)
		}
	}
	return res
}

func normalizeCompetition(s string) domain.CompetitionLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return domain.CompetitionLow
	case "high":
		return domain.CompetitionHigh
	default:
		return domain.CompetitionMedium
	}
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
