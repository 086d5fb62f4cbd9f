package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/ytsentiment/internal/models"
	"github.com/spacesedan/ytsentiment/internal/sentiment"
)

// VideoSource is the YouTube side of an analysis.
type VideoSource interface {
	VideoInfo(ctx context.Context, id string) (*models.VideoInfo, error)
	Comments(ctx context.Context, id string) ([]string, error)
}

// MetadataCache is an optional best-effort store for video metadata.
type MetadataCache interface {
	GetVideoInfo(ctx context.Context, id string) (*models.VideoInfo, bool)
	SetVideoInfo(ctx context.Context, id string, info *models.VideoInfo)
}

// Service runs metadata, comments, classification and response assembly in
// sequence for a single video. A nil source means no API key was configured.
type Service struct {
	source VideoSource
	scorer sentiment.Scorer
	cache  MetadataCache
}

type Option func(*Service)

func WithMetadataCache(cache MetadataCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func NewService(source VideoSource, scorer sentiment.Scorer, opts ...Option) *Service {
	s := &Service{source: source, scorer: scorer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Analyze(ctx context.Context, videoID string) (*models.AnalysisResponse, error) {
	start := time.Now()

	info := s.fetchMetadata(ctx, videoID)

	comments, err := s.fetchComments(ctx, videoID)
	if err != nil {
		return nil, err
	}

	counts, classified := sentiment.Classify(s.scorer, comments)

	slog.Info("[Analysis] Video analyzed",
		slog.String("videoId", videoID),
		slog.Int("comments", len(comments)),
		slog.Int("positive", counts[models.SentimentPositive]),
		slog.Int("neutral", counts[models.SentimentNeutral]),
		slog.Int("negative", counts[models.SentimentNegative]),
		slog.Duration("elapsed", time.Since(start)))

	return &models.AnalysisResponse{
		VideoID:       videoID,
		VideoInfo:     info,
		TotalComments: len(comments),
		Sentiments:    counts,
		Comments:      classified,
	}, nil
}

// fetchMetadata never fails; any problem yields nil metadata.
func (s *Service) fetchMetadata(ctx context.Context, videoID string) *models.VideoInfo {
	if s.source == nil {
		return nil
	}

	if s.cache != nil {
		if info, ok := s.cache.GetVideoInfo(ctx, videoID); ok {
			return info
		}
	}

	info, err := s.source.VideoInfo(ctx, videoID)
	if err != nil {
		slog.Error("[Analysis] Failed to fetch video info",
			slog.String("videoId", videoID),
			slog.String("error", err.Error()))
		return nil
	}
	if info == nil {
		slog.Warn("[Analysis] Video not found", slog.String("videoId", videoID))
		return nil
	}

	if s.cache != nil {
		s.cache.SetVideoInfo(ctx, videoID, info)
	}
	return info
}

func (s *Service) fetchComments(ctx context.Context, videoID string) ([]string, error) {
	if s.source == nil {
		slog.Error("[Analysis] Cannot fetch comments without an API key", slog.String("videoId", videoID))
		return nil, ErrConfigurationMissing
	}

	comments, err := s.source.Comments(ctx, videoID)
	if err != nil {
		slog.Error("[Analysis] Failed to fetch comments",
			slog.String("videoId", videoID),
			slog.String("error", err.Error()))
		return nil, &UpstreamError{Cause: err}
	}
	if len(comments) == 0 {
		return nil, ErrNoComments
	}
	return comments, nil
}
