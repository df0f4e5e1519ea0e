package db

import "gorm.io/gorm"

// Story is a dated narrative aggregating zero or more MediaItem rows via
// their StoryID back-reference. There is no cascade: deleting a story
// leaves its media rows dangling.
type Story struct {
	gorm.Model
	Title       string `gorm:"size:300;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Section     string `gorm:"size:50;index;default:transparency" json:"section"`
}

// TableName keeps the table name aligned with the hosted schema.
func (Story) TableName() string {
	return "stories"
}
