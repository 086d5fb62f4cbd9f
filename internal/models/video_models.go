package models

const (
	TITLE_UNAVAILABLE   = "Título no disponible"
	CHANNEL_UNAVAILABLE = "Canal no disponible"
)

// VideoInfo is the snippet subset returned alongside an analysis.
type VideoInfo struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"published_at"`
}
