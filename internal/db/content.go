package db

import "gorm.io/gorm"

// ContentEntry stores one editable text block of the public site.
// Rows are seeded at startup; the admin editor only ever updates Content.
type ContentEntry struct {
	gorm.Model
	Key     string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Section string `gorm:"size:50;index;not null" json:"section"`
	Label   string `gorm:"size:200" json:"label"`
	Content string `gorm:"type:text" json:"content"`
}

// TableName keeps the table name aligned with the hosted schema.
func (ContentEntry) TableName() string {
	return "site_content"
}

const (
	// SectionHome groups content shown on the home page.
	SectionHome = "home"
	// SectionActions groups content shown on the actions page.
	SectionActions = "actions"
	// SectionTransparency groups content shown on the transparency page.
	SectionTransparency = "transparency"
)

// Sections lists the valid content sections.
var Sections = []string{SectionHome, SectionActions, SectionTransparency}

// IsValidSection reports whether section belongs to the closed section set.
func IsValidSection(section string) bool {
	for _, s := range Sections {
		if s == section {
			return true
		}
	}
	return false
}
