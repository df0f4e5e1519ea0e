package db

import "gorm.io/gorm"

// MediaItem references one uploaded object of the public gallery.
// Type is classified once at upload time and never changes. StoryID is a
// nullable back-reference; deleting a Story leaves its media rows in place.
type MediaItem struct {
	gorm.Model
	URL     string `gorm:"not null" json:"url"`
	Type    string `gorm:"size:20;default:image" json:"type"` // image, video
	Caption string `gorm:"type:text" json:"caption"`
	Section string `gorm:"size:50;index" json:"section"`
	StoryID *uint  `gorm:"index" json:"story_id"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// TableName keeps the table name aligned with the hosted schema.
func (MediaItem) TableName() string {
	return "site_media"
}

const (
	// MediaTypeImage marks a still image.
	MediaTypeImage = "image"
	// MediaTypeVideo marks a video file.
	MediaTypeVideo = "video"
)
