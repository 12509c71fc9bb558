// Package report renders research results to the console and exports topics to files.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/umputun/topicscope/pkg/domain"
)

const (
	maxTitleLen   = 60
	detailsTopN   = 5
	goodScore     = 80
	passableScore = 60
)

// Console prints topics, session summaries, analytics and competitor comparisons
type Console struct {
	out    io.Writer
	header *color.Color
	good   *color.Color
	warn   *color.Color
	bad    *color.Color
	dim    *color.Color
}

// NewConsole creates a console reporter writing to out
func NewConsole(out io.Writer, noColor bool) *Console {
	c := &Console{
		out:    out,
		header: color.New(color.FgCyan, color.Bold),
		good:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		bad:    color.New(color.FgRed),
		dim:    color.New(color.Faint),
	}
	if noColor {
		for _, cl := range []*color.Color{c.header, c.good, c.warn, c.bad, c.dim} {
			cl.DisableColor()
		}
	}
	return c
}

// Topics prints ranked topics as a table, with details of the top topics if requested
func (c *Console) Topics(topics []domain.Topic, details bool) {
	c.section("Research Results")
	if len(topics) == 0 {
		c.warn.Fprintln(c.out, "no topics passed the quality threshold")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Topic", "Score", "Category", "Competition", "Source"})
	for i, tp := range topics {
		t.AppendRow(table.Row{i + 1, truncate(tp.Title, maxTitleLen), c.score(tp.TotalScore),
			string(tp.Category), string(tp.CompetitionLevel), tp.Source})
	}
	t.Render()

	if !details {
		return
	}
	for i, tp := range topics[:min(detailsTopN, len(topics))] {
		c.details(i+1, tp)
	}
}

func (c *Console) details(rank int, tp domain.Topic) {
	c.section(fmt.Sprintf("#%d %s", rank, tp.Title))
	fmt.Fprintf(c.out, "  total:        %s\n", c.score(tp.TotalScore))
	fmt.Fprintf(c.out, "  importance:   %.0f\n", tp.Importance)
	fmt.Fprintf(c.out, "  watchability: %.0f\n", tp.Watchability)
	fmt.Fprintf(c.out, "  monetization: %.0f\n", tp.Monetization)
	fmt.Fprintf(c.out, "  popularity:   %.0f\n", tp.Popularity)
	fmt.Fprintf(c.out, "  innovation:   %.0f\n", tp.Innovation)
	if tp.RecommendedAngle != "" {
		fmt.Fprintf(c.out, "  angle:        %s\n", tp.RecommendedAngle)
	}
	if len(tp.Keywords) > 0 {
		fmt.Fprintf(c.out, "  keywords:     %s\n", strings.Join(tp.Keywords, ", "))
	}
	fmt.Fprintf(c.out, "  competition:  %s\n", tp.CompetitionLevel)
	if tp.Notes != "" {
		fmt.Fprintf(c.out, "  notes:        %s\n", tp.Notes)
	}
	if tp.Fallback {
		c.warn.Fprintln(c.out, "  scores are defaults, evaluation failed")
	}
}

// Summary prints the session statistics
func (c *Console) Summary(s domain.Session) {
	c.section("Session Summary")
	fmt.Fprintf(c.out, "  session:             %s\n", c.dim.Sprint(s.ID))
	fmt.Fprintf(c.out, "  duration:            %v\n", s.Duration.Round(time.Second))
	fmt.Fprintf(c.out, "  topics researched:   %d\n", s.TopicsResearched)
	fmt.Fprintf(c.out, "  high quality topics: %s\n", c.good.Sprint(s.HighQualityCount))
	fmt.Fprintf(c.out, "  success rate:        %.1f%%\n", s.SuccessRate()*100)
	fmt.Fprintf(c.out, "  videos analyzed:     %d\n", s.VideosAnalyzed)
	if s.CompetitorsChecked > 0 {
		fmt.Fprintf(c.out, "  competitors checked: %d\n", s.CompetitorsChecked)
	}
}

// Analytics prints aggregated statistics of recent sessions
func (c *Console) Analytics(a domain.Analytics) {
	c.section(fmt.Sprintf("Analytics, last %d days", a.Days))
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Sessions", a.TotalSessions},
		{"Topics researched", a.TopicsResearched},
		{"High quality topics", a.HighQualityTopics},
		{"Average score", fmt.Sprintf("%.1f", a.AvgScore)},
		{"Topics per session", fmt.Sprintf("%.1f", a.AvgTopicsPerSession)},
		{"Total duration", (time.Duration(a.TotalDuration * float64(time.Second))).Round(time.Second).String()},
		{"Favorites", a.FavoriteCount},
	})
	t.Render()
}

// Competitors prints the comparison of competitor channels
func (c *Console) Competitors(s domain.ComparativeSummary) {
	c.section("Competitor Analysis")
	if len(s.Competitors) == 0 {
		c.warn.Fprintln(c.out, "no competitors analyzed")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Channel", "Subscribers", "Recent", "Avg Views", "Engagement", "Per Week", "Best Format"})
	for _, cs := range s.Competitors {
		t.AppendRow(table.Row{truncate(cs.ChannelTitle, 40), cs.SubscriberCount, cs.RecentVideos,
			fmt.Sprintf("%.0f", cs.AvgViews), fmt.Sprintf("%.2f%%", cs.AvgEngagementRate),
			fmt.Sprintf("%.1f (%s)", cs.UploadFrequency.VideosPerWeek, cs.UploadFrequency.Consistency),
			cs.BestFormat.Format})
	}
	t.Render()

	fmt.Fprintf(c.out, "  best engagement: %s\n", c.good.Sprint(s.BestEngagement))
	fmt.Fprintf(c.out, "  most views:      %s\n", c.good.Sprint(s.MostViews))
	fmt.Fprintf(c.out, "  most frequent:   %s\n", c.good.Sprint(s.MostFrequent))
	fmt.Fprintf(c.out, "  avg subscribers: %.0f\n", s.AvgSubscriberCount)
	if len(s.CommonThemes) > 0 {
		fmt.Fprintf(c.out, "  common themes:   %s\n", strings.Join(s.CommonThemes, ", "))
	}
}

// KeywordCompetition prints keyword saturation levels, lower is easier to rank for
func (c *Console) KeywordCompetition(list []domain.KeywordCompetition) {
	c.section("Keyword Competition")
	if len(list) == 0 {
		c.warn.Fprintln(c.out, "no keywords analyzed")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Keyword", "Level", "Videos", "Avg Views", "Top Views", "Top Channels"})
	for _, k := range list {
		level := fmt.Sprintf("%.1f", k.Level)
		switch {
		case k.Error != "":
			level = c.bad.Sprint("error")
		case k.Level < 4:
			level = c.good.Sprint(level)
		case k.Level < 7:
			level = c.warn.Sprint(level)
		default:
			level = c.bad.Sprint(level)
		}
		t.AppendRow(table.Row{truncate(k.Keyword, 40), level, k.VideoCount, k.AvgViews, k.TopPerformerViews,
			truncate(strings.Join(k.TopChannels, ", "), 50)})
	}
	t.Render()
}

// Trends prints a trend snapshot with its emerging keywords
func (c *Console) Trends(s domain.TrendSnapshot) {
	c.section(fmt.Sprintf("Trends (%s)", strings.Join(s.Regions, ", ")))
	r := s.Report
	fmt.Fprintf(c.out, "  videos: %d, avg views: %.0f, avg likes: %.0f, engagement: %.2f%%\n",
		r.TotalVideos, r.AvgViews, r.AvgLikes, r.AvgEngagement)
	if len(s.Emerging) > 0 {
		fmt.Fprintf(c.out, "  emerging: %s\n", c.good.Sprint(strings.Join(s.Emerging, ", ")))
	}
	if len(r.TopTags) > 0 {
		tags := make([]string, 0, len(r.TopTags))
		for _, tg := range r.TopTags[:min(10, len(r.TopTags))] {
			tags = append(tags, tg.Term)
		}
		fmt.Fprintf(c.out, "  top tags: %s\n", strings.Join(tags, ", "))
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Keyword", "Count"})
	for _, k := range r.TopKeywords[:min(10, len(r.TopKeywords))] {
		t.AppendRow(table.Row{k.Term, k.Count})
	}
	t.Render()

	if len(r.Categories) > 0 {
		cats := make([]string, 0, len(r.Categories))
		for _, cat := range r.Categories {
			cats = append(cats, fmt.Sprintf("%s (%d)", cat.Name, cat.Count))
		}
		fmt.Fprintf(c.out, "  categories: %s\n", strings.Join(cats, ", "))
	}
	for i, v := range r.TopPerforming {
		fmt.Fprintf(c.out, "  %d. %s - %d views\n", i+1, truncate(v.Title, 70), v.ViewCount)
	}
}

func (c *Console) section(title string) {
	fmt.Fprintln(c.out)
	c.header.Fprintln(c.out, title)
}

// score formats a score colored by quality
func (c *Console) score(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	switch {
	case v >= goodScore:
		return c.good.Sprint(s)
	case v >= passableScore:
		return c.warn.Sprint(s)
	default:
		return c.bad.Sprint(s)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
