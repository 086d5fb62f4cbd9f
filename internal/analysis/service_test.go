package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/ytsentiment/internal/models"
)

type stubScorer map[string]float64

func (s stubScorer) Compound(text string) float64 {
	return s[text]
}

type fakeSource struct {
	info        *models.VideoInfo
	infoErr     error
	comments    []string
	commentsErr error

	infoCalls     int
	commentsCalls int
}

func (f *fakeSource) VideoInfo(context.Context, string) (*models.VideoInfo, error) {
	f.infoCalls++
	return f.info, f.infoErr
}

func (f *fakeSource) Comments(context.Context, string) ([]string, error) {
	f.commentsCalls++
	return f.comments, f.commentsErr
}

type memoryCache struct {
	entries map[string]*models.VideoInfo
	sets    int
}

func (m *memoryCache) GetVideoInfo(_ context.Context, id string) (*models.VideoInfo, bool) {
	info, ok := m.entries[id]
	return info, ok
}

func (m *memoryCache) SetVideoInfo(_ context.Context, id string, info *models.VideoInfo) {
	m.sets++
	m.entries[id] = info
}

var scenarioScorer = stubScorer{"I love this!": 0.6, "I hate this.": -0.6, "It's ok.": 0.0}

func TestAnalyzeScenario(t *testing.T) {
	info := &models.VideoInfo{Title: "Never Gonna Give You Up", Channel: "Rick Astley"}
	source := &fakeSource{info: info, comments: []string{"I love this!", "I hate this.", "It's ok."}}

	resp, err := NewService(source, scenarioScorer).Analyze(context.Background(), "dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", resp.VideoID)
	assert.Same(t, info, resp.VideoInfo)
	assert.Equal(t, 3, resp.TotalComments)
	assert.Equal(t, models.SentimentCounts{
		models.SentimentPositive: 1,
		models.SentimentNeutral:  1,
		models.SentimentNegative: 1,
	}, resp.Sentiments)
	assert.Equal(t, []models.ClassifiedComment{
		{Comment: "I love this!", Label: models.SentimentPositive},
		{Comment: "I hate this.", Label: models.SentimentNegative},
		{Comment: "It's ok.", Label: models.SentimentNeutral},
	}, resp.Comments)
}

func TestAnalyzeMetadataFailureIsSwallowed(t *testing.T) {
	source := &fakeSource{infoErr: errors.New("quota exceeded"), comments: []string{"It's ok."}}

	resp, err := NewService(source, scenarioScorer).Analyze(context.Background(), "dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Nil(t, resp.VideoInfo)
	assert.Equal(t, 1, resp.TotalComments)
}

func TestAnalyzeMissingMetadata(t *testing.T) {
	source := &fakeSource{comments: []string{"It's ok."}}

	resp, err := NewService(source, scenarioScorer).Analyze(context.Background(), "dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Nil(t, resp.VideoInfo)
}

func TestAnalyzeWithoutSource(t *testing.T) {
	resp, err := NewService(nil, scenarioScorer).Analyze(context.Background(), "dQw4w9WgXcQ")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
}

func TestAnalyzeUpstreamError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	source := &fakeSource{infoErr: errors.New("also down"), commentsErr: cause}

	resp, err := NewService(source, scenarioScorer).Analyze(context.Background(), "dQw4w9WgXcQ")

	assert.Nil(t, resp)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.Equal(t, 1, source.commentsCalls)
}

func TestAnalyzeNoComments(t *testing.T) {
	source := &fakeSource{comments: []string{}}

	resp, err := NewService(source, scenarioScorer).Analyze(context.Background(), "dQw4w9WgXcQ")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoComments)
}

func TestAnalyzeUsesMetadataCache(t *testing.T) {
	info := &models.VideoInfo{Title: "cached"}
	cache := &memoryCache{entries: map[string]*models.VideoInfo{}}
	source := &fakeSource{info: info, comments: []string{"It's ok."}}
	svc := NewService(source, scenarioScorer, WithMetadataCache(cache))

	first, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, info, first.VideoInfo)
	assert.Equal(t, info, second.VideoInfo)
	assert.Equal(t, 1, source.infoCalls)
	assert.Equal(t, 2, source.commentsCalls)
	assert.Equal(t, 1, cache.sets)
}

func TestAnalyzeDoesNotCacheMissingMetadata(t *testing.T) {
	cache := &memoryCache{entries: map[string]*models.VideoInfo{}}
	source := &fakeSource{comments: []string{"It's ok."}}

	_, err := NewService(source, scenarioScorer, WithMetadataCache(cache)).Analyze(context.Background(), "dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Zero(t, cache.sets)
}
