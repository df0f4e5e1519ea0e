package db

import "gorm.io/gorm"

// ChildProfile is one featured child shown on the home timeline.
// Age is free text on purpose ("7 ans", "bientôt 5"...).
type ChildProfile struct {
	gorm.Model
	Name          string `gorm:"size:200;not null" json:"name"`
	Age           string `gorm:"size:100" json:"age"`
	Story         string `gorm:"type:text" json:"story"`
	ImageURL      string `json:"image_url"`
	ImagePosition string `gorm:"size:50;default:object-top" json:"image_position"`
	VideoURL      string `json:"video_url"`
}

// TableName keeps the table name aligned with the hosted schema.
func (ChildProfile) TableName() string {
	return "children"
}

const (
	// ImagePositionTop crops the portrait towards the face.
	ImagePositionTop = "object-top"
	// ImagePositionCenter centers the portrait crop.
	ImagePositionCenter = "object-center"
	// ImagePositionBottom crops the portrait towards the bottom.
	ImagePositionBottom = "object-bottom"
)

// NormalizeImagePosition maps any value outside the closed position set
// back to the default top crop.
func NormalizeImagePosition(position string) string {
	switch position {
	case ImagePositionTop, ImagePositionCenter, ImagePositionBottom:
		return position
	default:
		return ImagePositionTop
	}
}
