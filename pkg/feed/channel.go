// Package feed reads YouTube channel RSS feeds. It gives cheap access to the latest uploads
// of a channel without spending API quota.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/topicscope/pkg/domain"
)

// DefaultBaseURL is the channel feed endpoint, channel_id query parameter selects the channel
const DefaultBaseURL = "https://www.youtube.com/feeds/videos.xml"

// ChannelFeed fetches and parses channel feeds
type ChannelFeed struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewChannelFeed creates a new channel feed reader
func NewChannelFeed(baseURL string, timeout time.Duration) *ChannelFeed {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ChannelFeed{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:   baseURL,
		userAgent: "Mozilla/5.0 (compatible; topicscope/1.0)",
	}
}

// RecentVideos returns up to limit latest uploads of the channel, newest first as published by the feed
func (f *ChannelFeed) RecentVideos(ctx context.Context, channelID string, limit int) ([]domain.Video, error) {
	feedURL := f.baseURL + "?channel_id=" + url.QueryEscape(channelID)

	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch channel feed %s: %w", channelID, err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse channel feed %s: %w", channelID, err)
	}

	res := make([]domain.Video, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		v := domain.Video{
			ID:           videoID(item),
			Title:        strings.TrimSpace(item.Title),
			Description:  item.Description,
			ChannelID:    channelID,
			ChannelTitle: parsed.Title,
		}
		if item.PublishedParsed != nil {
			v.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			v.PublishedAt = *item.UpdatedParsed
		}
		if v.Title == "" {
			continue
		}
		res = append(res, v)
		if limit > 0 && len(res) >= limit {
			break
		}
	}
	return res, nil
}

// RecentTitles returns titles of up to limit latest uploads of the channel
func (f *ChannelFeed) RecentTitles(ctx context.Context, channelID string, limit int) ([]string, error) {
	videos, err := f.RecentVideos(ctx, channelID, limit)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(videos))
	for _, v := range videos {
		res = append(res, v.Title)
	}
	return res, nil
}

// fetch performs HTTP request for the feed
func (f *ChannelFeed) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// videoID extracts the video id from the feed entry, yt:videoId extension first, then the entry id
func videoID(item *gofeed.Item) string {
	if ext, ok := item.Extensions["yt"]; ok {
		if vals, ok := ext["videoId"]; ok && len(vals) > 0 && vals[0].Value != "" {
			return vals[0].Value
		}
	}
	return strings.TrimPrefix(item.GUID, "yt:video:")
}
