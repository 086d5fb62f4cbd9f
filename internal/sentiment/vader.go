package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/ytsentiment/internal/models"
)

const (
	POSITIVE_THRESHOLD = 0.05
	NEGATIVE_THRESHOLD = -0.05
)

// Scorer returns a compound polarity score in [-1, 1].
type Scorer interface {
	Compound(text string) float64
}

// VaderScorer holds no per-call state and is safe to share between requests.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Compound(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return v.analyzer.PolarityScores(text).Compound
}

// LabelFor maps a compound score to a label; both thresholds are inclusive.
func LabelFor(score float64) models.SentimentLabel {
	switch {
	case score >= POSITIVE_THRESHOLD:
		return models.SentimentPositive
	case score <= NEGATIVE_THRESHOLD:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Classify labels every comment in input order and tallies the labels.
func Classify(scorer Scorer, comments []string) (models.SentimentCounts, []models.ClassifiedComment) {
	counts := models.NewSentimentCounts()
	classified := make([]models.ClassifiedComment, 0, len(comments))

	for _, comment := range comments {
		label := LabelFor(scorer.Compound(comment))
		counts[label]++
		classified = append(classified, models.ClassifiedComment{
			Comment: comment,
			Label:   label,
		})
	}

	return counts, classified
}
