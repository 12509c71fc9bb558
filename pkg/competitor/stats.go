package competitor

import (
	"math"
	"sort"
	"strings"

	"github.com/umputun/topicscope/pkg/domain"
)

const (
	maxThemes    = 10
	maxTopVideos = 5
	minThemeLen  = 5
)

// upload consistency labels
const (
	ConsistencyDaily      = "daily"
	ConsistencyFrequent   = "frequent"
	ConsistencyWeekly     = "weekly"
	ConsistencyOccasional = "occasional"
	ConsistencyUnknown    = "unknown"
)

// FormatOther is the format of videos matching no rule, FormatUnknown is reported for no videos
const (
	FormatOther   = "other"
	FormatUnknown = "unknown"
)

type formatRule struct {
	format   string
	keywords []string
}

// formatRules is the ordered format taxonomy, first match wins
var formatRules = []formatRule{
	{"tutorial", []string{"tutorial"}},
	{"how-to", []string{"how to", "how-to"}},
	{"review", []string{"review"}},
	{"comparison", []string{"vs", "versus", "comparison"}},
	{"tips", []string{"tips", "tricks"}},
	{"guide", []string{"guide"}},
}

type performance struct {
	avgViews      float64
	medianViews   float64
	avgEngagement float64
	topVideos     []domain.VideoSummary
}

// analyzePerformance computes view and engagement stats over videos with non-zero views
func analyzePerformance(videos []domain.Video) performance {
	res := performance{topVideos: []domain.VideoSummary{}}
	if len(videos) == 0 {
		return res
	}

	var views, engagement []float64
	for _, v := range videos {
		if v.ViewCount <= 0 {
			continue
		}
		views = append(views, float64(v.ViewCount))
		engagement = append(engagement, EngagementRate(v))
	}
	res.avgViews = mean(views)
	res.medianViews = median(views)
	res.avgEngagement = mean(engagement)

	sorted := append([]domain.Video(nil), videos...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ViewCount > sorted[j].ViewCount })
	for _, v := range sorted[:min(maxTopVideos, len(sorted))] {
		res.topVideos = append(res.topVideos, domain.VideoSummary{ID: v.ID, Title: v.Title, ViewCount: v.ViewCount})
	}
	return res
}

// EngagementRate returns (likes+comments)/views in percents, 0 for videos without views
func EngagementRate(v domain.Video) float64 {
	if v.ViewCount <= 0 {
		return 0
	}
	return float64(v.LikeCount+v.CommentCount) / float64(v.ViewCount) * 100
}

// contentThemes ranks title words longer than 4 characters by frequency, ties by first appearance
func contentThemes(videos []domain.Video, limit int) []string {
	counts := map[string]int{}
	var order []string
	for _, v := range videos {
		for _, w := range strings.Fields(strings.ToLower(v.Title)) {
			if len([]rune(w)) < minThemeLen {
				continue
			}
			if _, ok := counts[w]; !ok {
				order = append(order, w)
			}
			counts[w]++
		}
	}
	return topByCount(order, counts, limit, 0)
}

// commonThemes returns themes found in more than one snapshot, ranked by how many snapshots have them
func commonThemes(snapshots []domain.CompetitorSnapshot, limit int) []string {
	counts := map[string]int{}
	var order []string
	for _, s := range snapshots {
		for _, th := range s.ContentThemes {
			if _, ok := counts[th]; !ok {
				order = append(order, th)
			}
			counts[th]++
		}
	}
	return topByCount(order, counts, limit, 1)
}

// topByCount sorts keys by count descending (stable) keeping keys with count above minCount
func topByCount(order []string, counts map[string]int, limit, minCount int) []string {
	res := make([]string, 0, len(order))
	for _, k := range order {
		if counts[k] > minCount {
			res = append(res, k)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return counts[res[i]] > counts[res[j]] })
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

// uploadFrequency computes videos per week over the span between the first and the last upload.
// Less than two dated videos or a span shorter than a day gives zero rate and unknown consistency.
func uploadFrequency(videos []domain.Video) domain.UploadFrequency {
	unknown := domain.UploadFrequency{VideosPerWeek: 0, Consistency: ConsistencyUnknown}
	if len(videos) < 2 {
		return unknown
	}

	var first, last = videos[0].PublishedAt, videos[0].PublishedAt
	dated := 0
	for _, v := range videos {
		if v.PublishedAt.IsZero() {
			continue
		}
		if dated == 0 || v.PublishedAt.Before(first) {
			first = v.PublishedAt
		}
		if dated == 0 || v.PublishedAt.After(last) {
			last = v.PublishedAt
		}
		dated++
	}
	if dated < 2 {
		return unknown
	}

	spanDays := int(last.Sub(first).Hours() / 24)
	if spanDays <= 0 {
		return unknown
	}

	perWeek := float64(len(videos)) / (float64(spanDays) / 7)
	res := domain.UploadFrequency{VideosPerWeek: math.Round(perWeek*10) / 10}
	switch {
	case perWeek >= 7:
		res.Consistency = ConsistencyDaily
	case perWeek >= 3:
		res.Consistency = ConsistencyFrequent
	case perWeek >= 1:
		res.Consistency = ConsistencyWeekly
	default:
		res.Consistency = ConsistencyOccasional
	}
	return res
}

// FormatOf returns the format of a title using the ordered taxonomy
func FormatOf(title string) string {
	lower := strings.ToLower(title)
	for _, r := range formatRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.format
			}
		}
	}
	return FormatOther
}

// bestFormat picks the format with the highest mean views, ties go to the taxonomy order
func bestFormat(videos []domain.Video) domain.FormatPerformance {
	if len(videos) == 0 {
		return domain.FormatPerformance{Format: FormatUnknown}
	}

	views := map[string][]float64{}
	for _, v := range videos {
		f := FormatOf(v.Title)
		views[f] = append(views[f], float64(v.ViewCount))
	}

	var best domain.FormatPerformance
	order := make([]string, 0, len(formatRules)+1)
	for _, r := range formatRules {
		order = append(order, r.format)
	}
	order = append(order, FormatOther)
	for _, f := range order {
		vals := views[f]
		if len(vals) == 0 {
			continue
		}
		if avg := mean(vals); best.Format == "" || avg > best.AvgViews {
			best = domain.FormatPerformance{Format: f, AvgViews: avg, Count: len(vals)}
		}
	}
	return best
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
