package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/topicscope/pkg/domain"
	"github.com/umputun/topicscope/pkg/repository"
	"github.com/umputun/topicscope/pkg/research"
)

const (
	defaultDays  = 7
	defaultLimit = 50
)

// topicResponse is the API view of a topic
type topicResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Source           string    `json:"source"`
	Category         string    `json:"category"`
	TotalScore       float64   `json:"total_score"`
	Importance       float64   `json:"importance"`
	Watchability     float64   `json:"watchability"`
	Monetization     float64   `json:"monetization"`
	Popularity       float64   `json:"popularity"`
	Innovation       float64   `json:"innovation"`
	RecommendedAngle string    `json:"recommended_angle"`
	Keywords         []string  `json:"keywords"`
	CompetitionLevel string    `json:"competition_level"`
	Notes            string    `json:"notes,omitempty"`
	ViewsPotential   int64     `json:"views_potential,omitempty"`
	ReferenceVideoID string    `json:"reference_video_id,omitempty"`
	Fallback         bool      `json:"fallback,omitempty"`
	Favorited        bool      `json:"favorited"`
	CreatedAt        time.Time `json:"created_at,omitzero"`
}

type researchRequest struct {
	Keywords     []string `json:"keywords"`
	MaxTopics    int      `json:"max_topics"`
	SkipTrending bool     `json:"skip_trending"`
	SkipAI       bool     `json:"skip_ai"`
}

type researchResponse struct {
	Success   bool            `json:"success"`
	SessionID string          `json:"session_id"`
	Count     int             `json:"count"`
	Topics    []topicResponse `json:"topics"`
}

type competitorsRequest struct {
	ChannelIDs []string `json:"channel_ids"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if s.schedule != nil {
		if next := s.schedule.NextRun(); !next.IsZero() {
			status["next_run"] = next.UTC()
		}
		if last, err := s.schedule.LastRun(); !last.IsZero() {
			status["last_run"] = last.UTC()
			if err != nil {
				status["last_error"] = err.Error()
			}
		}
	}
	renderJSON(w, r, http.StatusOK, status)
}

// researchHandler runs a research session and returns ranked topics
func (s *Server) researchHandler(w http.ResponseWriter, r *http.Request) {
	var req researchRequest
	// empty body runs with defaults
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.MaxTopics < 0 {
		renderError(w, r, errors.New("max_topics must not be negative"), http.StatusBadRequest)
		return
	}

	// a disconnected client should not abort a run which already spent api quota
	ctx := context.WithoutCancel(r.Context())
	res, err := s.researcher.Run(ctx, research.Request{
		Keywords:     req.Keywords,
		MaxTopics:    req.MaxTopics,
		SkipTrending: req.SkipTrending,
		SkipAI:       req.SkipAI,
	})
	if errors.Is(err, research.ErrRunInProgress) {
		renderError(w, r, err, http.StatusConflict)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] research run failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, researchResponse{
		Success:   true,
		SessionID: res.SessionID,
		Count:     len(res.Topics),
		Topics:    toTopicResponses(res.Topics),
	})
}

// topicsHandler returns saved topics matching query filters
func (s *Server) topicsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.TopicFilter{Days: defaultDays, Limit: defaultLimit, Category: domain.Category(q.Get("category"))}

	var err error
	if filter.Days, err = intParam(q.Get("days"), defaultDays); err != nil {
		renderError(w, r, fmt.Errorf("invalid days: %w", err), http.StatusBadRequest)
		return
	}
	if filter.Limit, err = intParam(q.Get("limit"), defaultLimit); err != nil {
		renderError(w, r, fmt.Errorf("invalid limit: %w", err), http.StatusBadRequest)
		return
	}
	if v := q.Get("min_score"); v != "" {
		if filter.MinScore, err = strconv.ParseFloat(v, 64); err != nil {
			renderError(w, r, fmt.Errorf("invalid min_score: %w", err), http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("favorited"); v != "" {
		if filter.FavoritedOnly, err = strconv.ParseBool(v); err != nil {
			renderError(w, r, fmt.Errorf("invalid favorited: %w", err), http.StatusBadRequest)
			return
		}
	}

	topics, err := s.store.GetTopics(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to get topics: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"topics": toTopicResponses(topics), "count": len(topics)})
}

// favoriteHandler toggles the favorite flag of a topic
func (s *Server) favoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid topic ID"), http.StatusBadRequest)
		return
	}

	favorited, err := s.store.ToggleFavorite(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to toggle favorite: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "favorited": favorited})
}

// analyticsHandler returns aggregated statistics of recent sessions
func (s *Server) analyticsHandler(w http.ResponseWriter, r *http.Request) {
	days, err := intParam(r.URL.Query().Get("days"), defaultDays)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid days: %w", err), http.StatusBadRequest)
		return
	}

	analytics, err := s.store.GetAnalytics(r.Context(), days)
	if err != nil {
		lgr.Printf("[ERROR] failed to get analytics: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, analytics)
}

// competitorsHandler compares competitor channels
func (s *Server) competitorsHandler(w http.ResponseWriter, r *http.Request) {
	var req competitorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if len(req.ChannelIDs) == 0 {
		renderError(w, r, errors.New("channel_ids is required"), http.StatusBadRequest)
		return
	}

	summary, err := s.researcher.AnalyzeCompetitors(context.WithoutCancel(r.Context()), req.ChannelIDs)
	if errors.Is(err, research.ErrRunInProgress) {
		renderError(w, r, err, http.StatusConflict)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] competitor analysis failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, summary)
}

// competitionHandler rates competition of keywords passed as repeated or comma separated keyword params
func (s *Server) competitionHandler(w http.ResponseWriter, r *http.Request) {
	var keywords []string
	for _, v := range r.URL.Query()["keyword"] {
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
	}
	if len(keywords) == 0 {
		renderError(w, r, errors.New("keyword is required"), http.StatusBadRequest)
		return
	}

	res, err := s.researcher.AnalyzeKeywords(r.Context(), keywords)
	if err != nil {
		lgr.Printf("[ERROR] keyword competition failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// captureTrendsHandler takes a new multi-region trend snapshot
func (s *Server) captureTrendsHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := s.researcher.CaptureTrends(context.WithoutCancel(r.Context()))
	if errors.Is(err, research.ErrRunInProgress) {
		renderError(w, r, err, http.StatusConflict)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] trend capture failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, snap)
}

// trendsHandler lists trend snapshots of the last days
func (s *Server) trendsHandler(w http.ResponseWriter, r *http.Request) {
	days, err := intParam(r.URL.Query().Get("days"), defaultDays)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid days: %w", err), http.StatusBadRequest)
		return
	}

	trends, err := s.researcher.RecentTrends(r.Context(), days)
	if err != nil {
		lgr.Printf("[ERROR] failed to get trends: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if trends == nil {
		trends = []domain.TrendSnapshot{}
	}
	renderJSON(w, r, http.StatusOK, trends)
}

func toTopicResponses(topics []domain.Topic) []topicResponse {
	res := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		keywords := t.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		res = append(res, topicResponse{
			ID:               t.ID,
			Title:            t.Title,
			Source:           t.Source,
			Category:         string(t.Category),
			TotalScore:       t.TotalScore,
			Importance:       t.Importance,
			Watchability:     t.Watchability,
			Monetization:     t.Monetization,
			Popularity:       t.Popularity,
			Innovation:       t.Innovation,
			RecommendedAngle: t.RecommendedAngle,
			Keywords:         keywords,
			CompetitionLevel: string(t.CompetitionLevel),
			Notes:            t.Notes,
			ViewsPotential:   t.ViewsPotential,
			ReferenceVideoID: t.ReferenceVideoID,
			Fallback:         t.Fallback,
			Favorited:        t.Favorited,
			CreatedAt:        t.CreatedAt,
		})
	}
	return res
}

// intParam parses a non-negative integer query parameter, empty value gives def
func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
