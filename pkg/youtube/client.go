// Package youtube implements the video data provider on top of the YouTube Data API v3.
// All calls are paced by a token bucket limiter and retried with exponential backoff
// on quota, rate limit and server errors.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/umputun/topicscope/pkg/domain"
)

// MaxBatchSize is the maximum number of video ids per statistics request, enforced by the API
const MaxBatchSize = 50

// maxPageSize is the maximum page size of list and search requests
const maxPageSize = 50

var (
	// ErrNotFound returned when a requested channel does not exist
	ErrNotFound = errors.New("not found")
	// ErrBatchTooLarge returned when more than MaxBatchSize ids requested at once
	ErrBatchTooLarge = errors.New("batch too large")
)

var (
	videoParts   = []string{"snippet", "statistics", "contentDetails"}
	channelParts = []string{"snippet", "statistics", "contentDetails"}
)

// Config defines client settings
type Config struct {
	APIKey            string
	Endpoint          string // optional API base URL override
	RequestsPerSecond float64
	Burst             int
	RetryAttempts     int
	RetryDelay        time.Duration
	Timeout           time.Duration
}

// Client wraps the YouTube Data API service
type Client struct {
	svc        *yt.Service
	limiter    *rate.Limiter
	retries    int
	retryDelay time.Duration
}

// New creates a YouTube API client
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("youtube api key is required")
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 5
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: cfg.Timeout, Transport: &transport.APIKey{Key: cfg.APIKey}}
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		svc:        svc,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		retries:    cfg.RetryAttempts,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Channel returns channel metadata by id
func (c *Client) Channel(ctx context.Context, channelID string) (*domain.Channel, error) {
	var resp *yt.ChannelListResponse
	err := c.call(ctx, "get channel", func() (err error) {
		resp, err = c.svc.Channels.List(channelParts).Id(channelID).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("channel %s: %w", channelID, ErrNotFound)
	}
	return toChannel(resp.Items[0]), nil
}

// PlaylistItems returns a single page of playlist items and the next page token, empty on the last page
func (c *Client) PlaylistItems(ctx context.Context, playlistID, pageToken string, maxResults int) ([]domain.PlaylistItem, string, error) {
	var resp *yt.PlaylistItemListResponse
	err := c.call(ctx, "list playlist items", func() (err error) {
		call := c.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(playlistID).MaxResults(int64(pageSize(maxResults))).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err = call.Do()
		return err
	})
	if err != nil {
		return nil, "", err
	}

	items := make([]domain.PlaylistItem, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.Snippet == nil {
			continue
		}
		item := domain.PlaylistItem{Title: it.Snippet.Title}
		published := it.Snippet.PublishedAt
		if it.ContentDetails != nil {
			item.VideoID = it.ContentDetails.VideoId
			if it.ContentDetails.VideoPublishedAt != "" {
				published = it.ContentDetails.VideoPublishedAt
			}
		}
		if item.VideoID == "" && it.Snippet.ResourceId != nil {
			item.VideoID = it.Snippet.ResourceId.VideoId
		}
		item.PublishedAt = parseTime(published)
		items = append(items, item)
	}
	return items, resp.NextPageToken, nil
}

// VideoStats returns videos with statistics for up to MaxBatchSize ids
func (c *Client) VideoStats(ctx context.Context, ids []string) ([]domain.Video, error) {
	if len(ids) == 0 {
		return []domain.Video{}, nil
	}
	if len(ids) > MaxBatchSize {
		return nil, fmt.Errorf("video stats for %d ids: %w", len(ids), ErrBatchTooLarge)
	}

	var resp *yt.VideoListResponse
	err := c.call(ctx, "get video stats", func() (err error) {
		resp, err = c.svc.Videos.List(videoParts).Id(ids...).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	res := make([]domain.Video, 0, len(resp.Items))
	for _, v := range resp.Items {
		res = append(res, toVideo(v))
	}
	return res, nil
}

// Search finds videos by keyword and enriches them with statistics. Results keep the search order.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Video, error) {
	if req.MaxResults <= 0 {
		req.MaxResults = 10
	}
	if req.Order == "" {
		req.Order = "relevance"
	}

	var ids []string
	pageToken := ""
	for len(ids) < req.MaxResults {
		var resp *yt.SearchListResponse
		err := c.call(ctx, "search videos", func() (err error) {
			call := c.svc.Search.List([]string{"snippet"}).Q(req.Query).Type("video").Order(req.Order).
				MaxResults(int64(pageSize(req.MaxResults - len(ids)))).Context(ctx)
			if !req.PublishedAfter.IsZero() {
				call = call.PublishedAfter(req.PublishedAfter.UTC().Format(time.RFC3339))
			}
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			resp, err = call.Do()
			return err
		})
		if err != nil {
			return nil, err
		}
		for _, it := range resp.Items {
			if it.Id != nil && it.Id.VideoId != "" {
				ids = append(ids, it.Id.VideoId)
			}
		}
		if resp.NextPageToken == "" || len(resp.Items) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}
	if len(ids) > req.MaxResults {
		ids = ids[:req.MaxResults]
	}

	return c.videosInOrder(ctx, ids)
}

// Trending returns the most popular videos for the region
func (c *Client) Trending(ctx context.Context, regionCode string, maxResults int) ([]domain.Video, error) {
	if maxResults <= 0 {
		maxResults = 20
	}

	var res []domain.Video
	pageToken := ""
	for len(res) < maxResults {
		var resp *yt.VideoListResponse
		err := c.call(ctx, "get trending videos", func() (err error) {
			call := c.svc.Videos.List(videoParts).Chart("mostPopular").
				MaxResults(int64(pageSize(maxResults - len(res)))).Context(ctx)
			if regionCode != "" {
				call = call.RegionCode(regionCode)
			}
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			resp, err = call.Do()
			return err
		})
		if err != nil {
			return nil, err
		}
		for _, v := range resp.Items {
			res = append(res, toVideo(v))
		}
		if resp.NextPageToken == "" || len(resp.Items) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}
	if len(res) > maxResults {
		res = res[:maxResults]
	}
	return res, nil
}

// videosInOrder fetches statistics in batches and returns videos in the order of ids
func (c *Client) videosInOrder(ctx context.Context, ids []string) ([]domain.Video, error) {
	byID := make(map[string]domain.Video, len(ids))
	for start := 0; start < len(ids); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(ids))
		videos, err := c.VideoStats(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		for _, v := range videos {
			byID[v.ID] = v
		}
	}

	res := make([]domain.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			res = append(res, v)
		}
	}
	return res, nil
}

// call waits for the rate limiter and runs fn, retrying with backoff while the error is retryable
func (c *Client) call(ctx context.Context, op string, fn func() error) error {
	retrier := repeater.NewBackoff(c.retries, c.retryDelay, repeater.WithMaxDelay(30*time.Second))
	attempt := 0
	err := retrier.Do(ctx, func() error {
		attempt++
		if err := c.limiter.Wait(ctx); err != nil {
			return &permanentError{err: err}
		}
		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return &permanentError{err: err}
		}
		lgr.Printf("[DEBUG] %s attempt %d failed, retrying: %v", op, attempt, err)
		return err
	}, errPermanent)

	var pe *permanentError
	if errors.As(err, &pe) {
		err = pe.err
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

var errPermanent = errors.New("permanent error")

// permanentError wraps an error to signal repeater to stop retrying
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Is(target error) bool { return target == errPermanent }

func (e *permanentError) Unwrap() error { return e.err }

// isRetryable checks for quota, rate limit and server side errors
func isRetryable(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	switch {
	case gerr.Code == http.StatusTooManyRequests, gerr.Code >= 500:
		return true
	case gerr.Code == http.StatusForbidden:
		for _, e := range gerr.Errors {
			switch e.Reason {
			case "quotaExceeded", "rateLimitExceeded", "userRateLimitExceeded":
				return true
			}
		}
	}
	return false
}

func pageSize(n int) int {
	if n <= 0 || n > maxPageSize {
		return maxPageSize
	}
	return n
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toChannel(ch *yt.Channel) *domain.Channel {
	res := &domain.Channel{ID: ch.Id}
	if ch.Snippet != nil {
		res.Title = ch.Snippet.Title
		res.Description = ch.Snippet.Description
	}
	if ch.Statistics != nil {
		res.SubscriberCount = int64(ch.Statistics.SubscriberCount) //nolint:gosec // counts fit int64
		res.VideoCount = int64(ch.Statistics.VideoCount)           //nolint:gosec // counts fit int64
		res.ViewCount = int64(ch.Statistics.ViewCount)             //nolint:gosec // counts fit int64
	}
	if ch.ContentDetails != nil && ch.ContentDetails.RelatedPlaylists != nil {
		res.UploadsPlaylist = ch.ContentDetails.RelatedPlaylists.Uploads
	}
	return res
}

func toVideo(v *yt.Video) domain.Video {
	res := domain.Video{ID: v.Id}
	if v.Snippet != nil {
		res.Title = v.Snippet.Title
		res.Description = v.Snippet.Description
		res.ChannelID = v.Snippet.ChannelId
		res.ChannelTitle = v.Snippet.ChannelTitle
		res.PublishedAt = parseTime(v.Snippet.PublishedAt)
		res.Tags = v.Snippet.Tags
		res.CategoryID = v.Snippet.CategoryId
	}
	if v.Statistics != nil {
		res.ViewCount = int64(v.Statistics.ViewCount)       //nolint:gosec // counts fit int64
		res.LikeCount = int64(v.Statistics.LikeCount)       //nolint:gosec // counts fit int64
		res.CommentCount = int64(v.Statistics.CommentCount) //nolint:gosec // counts fit int64
	}
	if v.ContentDetails != nil {
		res.Duration = v.ContentDetails.Duration
	}
	return res
}
