package models

type Playlist struct {
	Model
	UserID            uint   `gorm:"not null;index" json:"user_id"`
	Title             string `gorm:"not null" json:"title"`
	YoutubePlaylistID string `gorm:"not null" json:"youtube_playlist_id"`
	ThumbnailURL      string `json:"thumbnail_url,omitempty"`
}
