package service

import (
	"errors"
	"strings"

	"github.com/petitspas/backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContentSectionInvalid = errors.New("content section is invalid")
	ErrContentKeyUnknown     = errors.New("content key is unknown")
)

// ContentService reads and updates the editable site texts.
type ContentService struct {
	db *gorm.DB
}

// NewContentService creates a ContentService instance.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// List returns the entries of one section ordered by key.
func (s *ContentService) List(section string) ([]db.ContentEntry, error) {
	if !db.IsValidSection(section) {
		return nil, ErrContentSectionInvalid
	}

	var entries []db.ContentEntry
	if err := s.db.Where("section = ?", section).Order("key").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update overwrites the content of an existing key. The key set is fixed:
// updating never creates rows, an unknown key is rejected.
func (s *ContentService) Update(key, content string) (*db.ContentEntry, error) {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return nil, ErrContentKeyUnknown
	}

	var entry db.ContentEntry
	if err := s.db.Where("key = ?", trimmedKey).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentKeyUnknown
		}
		return nil, err
	}

	entry.Content = content
	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// SeedDefaults installs any missing entry of the fixed key set without
// touching values already edited by the admin.
func (s *ContentService) SeedDefaults() error {
	for _, entry := range defaultContentEntries {
		var existing db.ContentEntry
		err := s.db.Where("key = ?", entry.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		record := entry
		if err := s.db.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}
