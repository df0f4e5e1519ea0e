package service

import (
	"errors"
	"strings"

	"github.com/petitspas/backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrChildNotFound    = errors.New("child profile not found")
	ErrChildNameMissing = errors.New("child name is required")
)

// childWriteSchemas lists the field sets tried in order when writing a
// profile. The hosted schema may predate the optional columns
// (image_position, video_url); a missing-column failure on the preferred
// set retries the safe subset and flags the result degraded.
var childWriteSchemas = [][]string{
	{"Name", "Age", "Story", "ImageURL", "ImagePosition", "VideoURL"},
	{"Name", "Age", "Story", "ImageURL"},
}

// ChildService manages the featured-child profiles of the home timeline.
type ChildService struct {
	db *gorm.DB
}

// NewChildService creates a ChildService instance.
func NewChildService(gdb *gorm.DB) *ChildService {
	return &ChildService{db: gdb}
}

// ChildInput carries the editable fields of a profile.
type ChildInput struct {
	Name          string
	Age           string
	Story         string
	ImageURL      string
	ImagePosition string
	VideoURL      string
}

// ChildWriteResult reports a saved profile. Degraded means the optional
// columns were dropped because the store schema does not have them yet.
type ChildWriteResult struct {
	Child    *db.ChildProfile
	Degraded bool
}

// List returns all profiles, newest first.
func (s *ChildService) List() ([]db.ChildProfile, error) {
	var children []db.ChildProfile
	if err := s.db.Order("created_at desc").Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

// Get fetches one profile by id.
func (s *ChildService) Get(id uint) (*db.ChildProfile, error) {
	var child db.ChildProfile
	if err := s.db.First(&child, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}
	return &child, nil
}

// Create inserts a new profile, falling back to the safe field subset on
// a missing-column failure. Any other failure is returned without retry.
func (s *ChildService) Create(input ChildInput) (ChildWriteResult, error) {
	if strings.TrimSpace(input.Name) == "" {
		return ChildWriteResult{}, ErrChildNameMissing
	}

	var lastErr error
	for i, fields := range childWriteSchemas {
		child := s.fromInput(input)
		if err := s.db.Select(fields).Create(&child).Error; err != nil {
			lastErr = err
			if !isMissingColumnErr(err) {
				return ChildWriteResult{}, err
			}
			continue
		}
		return ChildWriteResult{Child: &child, Degraded: i > 0}, nil
	}
	return ChildWriteResult{}, lastErr
}

// Update overwrites an existing profile with the same schema fallback as
// Create.
func (s *ChildService) Update(id uint, input ChildInput) (ChildWriteResult, error) {
	if strings.TrimSpace(input.Name) == "" {
		return ChildWriteResult{}, ErrChildNameMissing
	}

	var child db.ChildProfile
	if err := s.db.First(&child, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ChildWriteResult{}, ErrChildNotFound
		}
		return ChildWriteResult{}, err
	}

	values := s.fromInput(input)
	var lastErr error
	for i, fields := range childWriteSchemas {
		err := s.db.Model(&child).Select(fields).Updates(values).Error
		if err != nil {
			lastErr = err
			if !isMissingColumnErr(err) {
				return ChildWriteResult{}, err
			}
			continue
		}
		updated, err := s.Get(id)
		if err != nil {
			return ChildWriteResult{}, err
		}
		return ChildWriteResult{Child: updated, Degraded: i > 0}, nil
	}
	return ChildWriteResult{}, lastErr
}

// Delete removes a profile. The stored portrait stays in its bucket.
func (s *ChildService) Delete(id uint) error {
	var child db.ChildProfile
	if err := s.db.First(&child, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChildNotFound
		}
		return err
	}
	return s.db.Delete(&child).Error
}

func (s *ChildService) fromInput(input ChildInput) db.ChildProfile {
	return db.ChildProfile{
		Name:          strings.TrimSpace(input.Name),
		Age:           strings.TrimSpace(input.Age),
		Story:         input.Story,
		ImageURL:      strings.TrimSpace(input.ImageURL),
		ImagePosition: db.NormalizeImagePosition(strings.TrimSpace(input.ImagePosition)),
		VideoURL:      strings.TrimSpace(input.VideoURL),
	}
}

// isMissingColumnErr recognizes schema-drift failures across the sqlite
// and hosted Postgres backends.
func isMissingColumnErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "has no column named") ||
		strings.Contains(msg, "SQLSTATE 42703") ||
		strings.Contains(msg, "Could not find the")
}
