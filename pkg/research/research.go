package research

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/topicscope/pkg/domain"
	"github.com/umputun/topicscope/pkg/llm"
	"github.com/umputun/topicscope/pkg/topic"
)

const (
	maxSearchKeywords   = 5  // niche-focused keywords expanded per run
	maxSearchVariations = 2  // keyword suggestions queried per keyword
	maxIdeaTrends       = 15 // discovered titles passed to idea generation
	maxChannelKeywords  = 50
	maxChannelThemes    = 10
)

// research runs all stages, updating the session stats
func (p *Pipeline) research(ctx context.Context, req Request, sess *domain.Session) (Result, error) {
	tracker := &stageTracker{}
	res := Result{SessionID: sess.ID, Evaluated: []domain.Topic{}, Topics: []domain.Topic{}}
	step := func(s Stage) error {
		if err := tracker.advance(s); err != nil {
			return err
		}
		res.Stage = s
		lgr.Printf("[DEBUG] research %s reached %s", sess.ID, s)
		return nil
	}

	res.Channel = p.BuildChannelContext(ctx, sess)
	if err := step(StageContextBuilt); err != nil {
		return res, err
	}

	var trending []domain.Video
	trendingFetched := false
	if !req.SkipTrending && res.Channel.SubscriberCount == 0 {
		trending, trendingFetched = p.trending(ctx), true
	}
	candidates := p.discover(ctx, req, res.Channel, trending)
	res.Discovered = len(candidates)
	if err := step(StageDiscovered); err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("interrupted after discovery: %w", err)
	}

	unique := p.skipRecent(ctx, topic.Dedupe(candidates))
	res.Unique = len(unique)
	lgr.Printf("[INFO] discovered %d candidates, %d unique", res.Discovered, res.Unique)
	if err := step(StageDeduplicated); err != nil {
		return res, err
	}

	maxTopics := p.Config.MaxTopics
	if req.MaxTopics > 0 {
		maxTopics = req.MaxTopics
	}
	if len(unique) > maxTopics {
		unique = unique[:maxTopics]
	}

	if !trendingFetched {
		trending = p.trending(ctx)
	}
	trends := titles(trending)
	competitors := p.competitorTitles(ctx)

	for i, c := range unique {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("interrupted after %d evaluations: %w", i, err)
		}
		lgr.Printf("[INFO] evaluating %d/%d: %s", i+1, len(unique), c.Title)
		ev := p.Evaluator.Evaluate(ctx, llm.EvaluateRequest{Topic: c.Title, Channel: res.Channel,
			Trends: trends, Competitors: competitors})
		if err := ctx.Err(); err != nil {
			// evaluation cut short, its fallback result is not a real score
			return res, fmt.Errorf("interrupted after %d evaluations: %w", i, err)
		}
		t := domain.Topic{Candidate: c, Evaluation: ev, Category: topic.Categorize(c.Title)}
		if p.Store != nil {
			if err := p.Store.SaveTopic(ctx, &t); err != nil {
				lgr.Printf("[WARN] can't save topic %q: %v", c.Title, err)
			}
		}
		sess.TopicsResearched++
		res.Evaluated = append(res.Evaluated, t)
	}
	if err := step(StageEvaluated); err != nil {
		return res, err
	}

	for _, t := range res.Evaluated {
		if t.TotalScore >= p.Config.MinScore {
			res.Topics = append(res.Topics, t)
		}
	}
	sess.HighQualityCount = len(res.Topics)
	if err := step(StageFiltered); err != nil {
		return res, err
	}

	sort.SliceStable(res.Topics, func(i, j int) bool { return res.Topics[i].TotalScore > res.Topics[j].TotalScore })
	if err := step(StageRanked); err != nil {
		return res, err
	}
	lgr.Printf("[INFO] %d of %d topics scored %.0f or above", len(res.Topics), len(res.Evaluated), p.Config.MinScore)
	return res, nil
}

// BuildChannelContext derives the channel context from the configured channel and its recent uploads.
// Missing channel id or lookup failures result in an "Unknown" channel with General niche.
func (p *Pipeline) BuildChannelContext(ctx context.Context, sess *domain.Session) domain.ChannelContext {
	res := domain.ChannelContext{ChannelID: p.Config.ChannelID, ChannelTitle: "Unknown",
		Niche: domain.NicheGeneral, RecentThemes: []string{}}
	if p.Config.ChannelID == "" {
		lgr.Printf("[WARN] no channel id configured, using generic channel context")
		return res
	}

	ch, err := p.Videos.Channel(ctx, p.Config.ChannelID)
	if err != nil {
		lgr.Printf("[WARN] can't get channel %s, using generic channel context: %v", p.Config.ChannelID, err)
		return res
	}
	res.ChannelTitle = ch.Title
	res.SubscriberCount = ch.SubscriberCount
	lgr.Printf("[INFO] researching for channel %q, %d subscribers", ch.Title, ch.SubscriberCount)

	videos, err := p.Uploads.RecentUploads(ctx, ch.UploadsPlaylist, p.Config.LookbackDays, p.Config.ChannelVideos)
	if err != nil {
		lgr.Printf("[WARN] can't get recent uploads of %s: %v", p.Config.ChannelID, err)
		return res
	}
	if len(videos) == 0 {
		return res
	}

	var views int64
	for _, v := range videos {
		views += v.ViewCount
	}
	res.AvgViews = float64(views) / float64(len(videos))

	keywords := topic.ExtractKeywords(videos, maxChannelKeywords)
	res.RecentThemes = append(res.RecentThemes, keywords[:min(maxChannelThemes, len(keywords))]...)
	res.Niche = topic.IdentifyNiche(keywords)
	sess.VideosAnalyzed += len(videos)
	lgr.Printf("[INFO] channel niche %s, themes: %v", res.Niche, res.RecentThemes)
	return res
}

// discover collects candidates from trending videos, search and AI ideas in this order
func (p *Pipeline) discover(ctx context.Context, req Request, cc domain.ChannelContext, trending []domain.Video) []domain.Candidate {
	var res []domain.Candidate

	if req.SkipTrending || cc.SubscriberCount > 0 {
		lgr.Printf("[DEBUG] trending discovery skipped")
	} else {
		for _, v := range trending {
			res = append(res, domain.Candidate{Title: v.Title, Source: domain.SourceTrending,
				ViewsPotential: v.ViewCount, ReferenceVideoID: v.ID})
		}
		lgr.Printf("[INFO] found %d trending topics", len(trending))
	}

	search := p.searchCandidates(ctx, req, cc)
	lgr.Printf("[INFO] found %d search topics", len(search))
	res = append(res, search...)

	if !req.SkipAI {
		ideas, err := p.Evaluator.GenerateTopicIdeas(ctx, cc, p.Config.AIIdeas, candidateTitles(res, maxIdeaTrends))
		if err != nil {
			lgr.Printf("[WARN] can't generate topic ideas: %v", err)
		}
		for _, idea := range ideas {
			res = append(res, domain.Candidate{Title: idea, Source: domain.SourceAIGenerated})
		}
	}
	return res
}

// searchCandidates expands niche-focused seed keywords into queries and keeps relevant results
func (p *Pipeline) searchCandidates(ctx context.Context, req Request, cc domain.ChannelContext) []domain.Candidate {
	seeds := topic.SeedKeywords(req.Keywords, cc)
	focused := topic.NicheFocusedKeywords(seeds, cc.Niche)
	focused = focused[:min(maxSearchKeywords, len(focused))]
	lgr.Printf("[INFO] search keywords: %v", focused)

	var res []domain.Candidate
	for _, kw := range focused {
		variations := topic.KeywordSuggestions(kw)
		for _, q := range variations[:min(maxSearchVariations, len(variations))] {
			videos, err := p.Videos.Search(ctx, domain.SearchRequest{Query: q, Order: "relevance", MaxResults: p.Config.SearchResults})
			if err != nil {
				lgr.Printf("[WARN] search %q failed: %v", q, err)
				continue
			}
			for _, v := range videos {
				if !topic.IsRelevant(v.Title) {
					continue
				}
				res = append(res, domain.Candidate{Title: v.Title, Source: domain.SourceSearch + kw,
					ViewsPotential: v.ViewCount, ReferenceVideoID: v.ID})
			}
		}
	}
	return res
}

// trending returns trending videos, failures result in no videos
func (p *Pipeline) trending(ctx context.Context) []domain.Video {
	videos, err := p.Videos.Trending(ctx, p.Config.RegionCode, p.Config.TrendingMax)
	if err != nil {
		lgr.Printf("[WARN] can't get trending videos: %v", err)
		return nil
	}
	return videos
}

// competitorTitles collects recent titles of configured competitors, failed feeds are skipped
func (p *Pipeline) competitorTitles(ctx context.Context) []string {
	if p.CompetitorFeed == nil {
		return nil
	}
	var res []string
	for _, id := range p.Config.Competitors {
		ts, err := p.CompetitorFeed.RecentTitles(ctx, id, p.Config.CompetitorTitles)
		if err != nil {
			lgr.Printf("[WARN] can't get recent titles of competitor %s: %v", id, err)
			continue
		}
		res = append(res, ts...)
	}
	return res
}

// skipRecent drops candidates already researched within SkipRecentDays
func (p *Pipeline) skipRecent(ctx context.Context, candidates []domain.Candidate) []domain.Candidate {
	if p.Config.SkipRecentDays <= 0 || p.Store == nil {
		return candidates
	}
	res := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		exists, err := p.Store.TopicExists(ctx, c.Title, p.Config.SkipRecentDays)
		if err != nil {
			lgr.Printf("[WARN] can't check topic %q: %v", c.Title, err)
		}
		if exists {
			lgr.Printf("[DEBUG] skip recently researched %q", c.Title)
			continue
		}
		res = append(res, c)
	}
	return res
}

func titles(videos []domain.Video) []string {
	res := make([]string, 0, len(videos))
	for _, v := range videos {
		res = append(res, v.Title)
	}
	return res
}

func candidateTitles(candidates []domain.Candidate, limit int) []string {
	res := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		res = append(res, c.Title)
	}
	return res
}
