package service

import (
	"errors"
	"strings"

	"github.com/petitspas/backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrStoryNotFound     = errors.New("story not found")
	ErrStoryTitleMissing = errors.New("story title is required")
)

// storySection is the only section stories live in today.
const storySection = db.SectionTransparency

// StoryService manages the dated narratives of the transparency page.
type StoryService struct {
	db *gorm.DB
}

// NewStoryService creates a StoryService instance.
func NewStoryService(gdb *gorm.DB) *StoryService {
	return &StoryService{db: gdb}
}

// List returns all stories, newest first.
func (s *StoryService) List() ([]db.Story, error) {
	var stories []db.Story
	if err := s.db.Order("created_at desc").Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// Get fetches one story by id.
func (s *StoryService) Get(id uint) (*db.Story, error) {
	var story db.Story
	if err := s.db.First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}
	return &story, nil
}

// Create inserts a story with the given title, an empty description and
// the fixed section. The admin fills in details afterwards.
func (s *StoryService) Create(title string) (*db.Story, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrStoryTitleMissing
	}

	story := db.Story{
		Title:       trimmed,
		Description: "",
		Section:     storySection,
	}
	if err := s.db.Create(&story).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// Update overwrites title and description of an existing story.
func (s *StoryService) Update(id uint, title, description string) (*db.Story, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrStoryTitleMissing
	}

	var story db.Story
	if err := s.db.First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}

	story.Title = trimmed
	story.Description = description
	if err := s.db.Save(&story).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// Delete removes a story. Its media rows are left in place with a
// dangling story reference; there is no cascade and no bucket cleanup.
func (s *StoryService) Delete(id uint) error {
	var story db.Story
	if err := s.db.First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoryNotFound
		}
		return err
	}
	return s.db.Delete(&story).Error
}
