package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/spacesedan/ytsentiment/internal/models"
)

var ErrMissingAPIKey = errors.New("[YouTubeClient] API key is missing")

// YouTubeClient wraps the two Data API v3 calls the analysis needs.
type YouTubeClient struct {
	service *youtube.Service
	policy  CallPolicy
}

// NewYouTubeClient authenticates with apiKey; extra options are appended, so
// tests and YOUTUBE_API_ENDPOINT can redirect the service.
func NewYouTubeClient(ctx context.Context, apiKey string, policy CallPolicy, opts ...option.ClientOption) (*YouTubeClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	clientOpts := append([]option.ClientOption{
		option.WithAPIKey(apiKey),
		option.WithUserAgent(USER_AGENT),
	}, opts...)

	service, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("[YouTubeClient] failed to create service: %w", err)
	}

	slog.Info("[YouTubeClient] Initialized",
		slog.Int("maxAttempts", policy.MaxAttempts),
		slog.Duration("timeout", policy.Timeout))

	return &YouTubeClient{service: service, policy: policy}, nil
}

// VideoInfo returns the snippet metadata for id, or nil when the API has no
// matching video.
func (c *YouTubeClient) VideoInfo(ctx context.Context, id string) (*models.VideoInfo, error) {
	var resp *youtube.VideoListResponse
	err := c.policy.Do(ctx, "videos.list", func(ctx context.Context) error {
		var err error
		resp, err = c.service.Videos.List([]string{"snippet"}).
			Id(id).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("[YouTubeClient] videos.list failed: %w", err)
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, nil
	}

	return videoInfoFromSnippet(resp.Items[0].Snippet), nil
}

func videoInfoFromSnippet(snippet *youtube.VideoSnippet) *models.VideoInfo {
	info := &models.VideoInfo{
		Title:       snippet.Title,
		Channel:     snippet.ChannelTitle,
		PublishedAt: snippet.PublishedAt,
	}
	if info.Title == "" {
		info.Title = models.TITLE_UNAVAILABLE
	}
	if info.Channel == "" {
		info.Channel = models.CHANNEL_UNAVAILABLE
	}
	if snippet.Thumbnails != nil && snippet.Thumbnails.Medium != nil {
		info.Thumbnail = snippet.Thumbnails.Medium.Url
	}
	return info
}

// Comments pages through top-level comment threads until MAX_COMMENTS are
// collected or the API stops returning a page token.
func (c *YouTubeClient) Comments(ctx context.Context, id string) ([]string, error) {
	comments := make([]string, 0, MAX_COMMENTS)
	pageToken := ""

	for len(comments) < MAX_COMMENTS {
		var resp *youtube.CommentThreadListResponse
		err := c.policy.Do(ctx, "commentThreads.list", func(ctx context.Context) error {
			call := c.service.CommentThreads.List([]string{"snippet"}).
				VideoId(id).
				MaxResults(COMMENT_PAGE_SIZE).
				TextFormat("plainText").
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var err error
			resp, err = call.Do()
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("[YouTubeClient] commentThreads.list failed: %w", err)
		}

		for _, item := range resp.Items {
			if text, ok := topLevelText(item); ok {
				comments = append(comments, text)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(comments) > MAX_COMMENTS {
		comments = comments[:MAX_COMMENTS]
	}

	slog.Debug("[YouTubeClient] Fetched comments",
		slog.String("videoId", id), slog.Int("count", len(comments)))

	return comments, nil
}

func topLevelText(thread *youtube.CommentThread) (string, bool) {
	if thread == nil || thread.Snippet == nil || thread.Snippet.TopLevelComment == nil ||
		thread.Snippet.TopLevelComment.Snippet == nil {
		return "", false
	}
	return thread.Snippet.TopLevelComment.Snippet.TextDisplay, true
}
