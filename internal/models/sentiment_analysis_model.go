package models

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positivo"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentNegative SentimentLabel = "Negativo"
)

// SentimentLabels lists every label in response order.
var SentimentLabels = []SentimentLabel{SentimentPositive, SentimentNeutral, SentimentNegative}

// SentimentCounts always carries all three labels once built with NewSentimentCounts.
type SentimentCounts map[SentimentLabel]int

func NewSentimentCounts() SentimentCounts {
	counts := make(SentimentCounts, len(SentimentLabels))
	for _, label := range SentimentLabels {
		counts[label] = 0
	}
	return counts
}

func (c SentimentCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

type ClassifiedComment struct {
	Comment string         `json:"comentario"`
	Label   SentimentLabel `json:"sentimiento"`
}

type AnalysisResponse struct {
	VideoID       string              `json:"video_id"`
	VideoInfo     *VideoInfo          `json:"video_info"`
	TotalComments int                 `json:"total_comentarios"`
	Sentiments    SentimentCounts     `json:"sentimientos"`
	Comments      []ClassifiedComment `json:"lista_comentarios"`
}
