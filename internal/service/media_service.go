package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"golang.org/x/sync/errgroup"

	"github.com/petitspas/backend/internal/db"
	"github.com/petitspas/backend/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrMediaNotFound = errors.New("media item not found")
	ErrMediaNoFiles  = errors.New("no files to upload")
)

// uploadParallelism bounds how many files are pushed to storage at once.
const uploadParallelism = 4

// MediaService manages the media records behind the public gallery and
// the per-story photo sets.
type MediaService struct {
	db    *gorm.DB
	store storage.Store
}

// NewMediaService creates a MediaService backed by the given object store.
func NewMediaService(gdb *gorm.DB, store storage.Store) *MediaService {
	return &MediaService{db: gdb, store: store}
}

// UploadFile is one file of an upload batch, decoupled from the HTTP
// layer so tests can feed plain readers.
type UploadFile struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// UploadFailure records why one file of a batch was not stored.
type UploadFailure struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// BatchResult reports the outcome of an upload batch per file, so a
// partially failed batch no longer hides the files that did make it.
type BatchResult struct {
	Items  []db.MediaItem  `json:"items"`
	Failed []UploadFailure `json:"failed"`
}

// List returns the media of a section, newest first. A non-nil storyID
// narrows the list to one story's attachments; storyID pointing at zero
// selects unattached media.
func (s *MediaService) List(section string, storyID *uint) ([]db.MediaItem, error) {
	query := s.db.Model(&db.MediaItem{})
	if section = strings.TrimSpace(section); section != "" {
		query = query.Where("section = ?", section)
	}
	if storyID != nil {
		if *storyID == 0 {
			query = query.Where("story_id IS NULL")
		} else {
			query = query.Where("story_id = ?", *storyID)
		}
	}

	var items []db.MediaItem
	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UploadBatch stores the files concurrently and inserts one media row per
// stored object. The media type is classified once from the declared
// content type; files failing to store are reported individually while
// the rest of the batch proceeds.
func (s *MediaService) UploadBatch(ctx context.Context, files []UploadFile, section string, storyID *uint) (BatchResult, error) {
	if len(files) == 0 {
		return BatchResult{}, ErrMediaNoFiles
	}

	type outcome struct {
		item db.MediaItem
		err  error
	}
	outcomes := make([]outcome, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadParallelism)
	for i := range files {
		idx := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[idx].err = err
				return nil
			}
			outcomes[idx].item, outcomes[idx].err = s.storeOne(files[idx], section, storyID)
			return nil
		})
	}
	// Goroutines report per-file outcomes instead of errors, so Wait
	// never fails and one bad file cannot abort its siblings.
	_ = g.Wait()

	result := BatchResult{}
	for i, file := range files {
		if outcomes[i].err != nil {
			result.Failed = append(result.Failed, UploadFailure{Filename: file.Name, Reason: outcomes[i].err.Error()})
			continue
		}
		item := outcomes[i].item
		if err := s.db.Create(&item).Error; err != nil {
			result.Failed = append(result.Failed, UploadFailure{Filename: file.Name, Reason: err.Error()})
			continue
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}

func (s *MediaService) storeOne(file UploadFile, section string, storyID *uint) (db.MediaItem, error) {
	src, err := file.Open()
	if err != nil {
		return db.MediaItem{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return db.MediaItem{}, err
	}

	mediaType := ClassifyMediaType(file.ContentType)

	item := db.MediaItem{
		Type:    mediaType,
		Caption: "",
		Section: section,
		StoryID: storyID,
	}

	if mediaType == db.MediaTypeImage {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			item.Width = cfg.Width
			item.Height = cfg.Height
		}
	}

	url, err := s.store.Save(storage.BucketGallery, storage.NewObjectName(file.Name), bytes.NewReader(data))
	if err != nil {
		return db.MediaItem{}, err
	}
	item.URL = url

	return item, nil
}

// Delete removes the media row only. The stored object stays behind;
// cleaning the bucket is an accepted orphan, deliberately deferred.
func (s *MediaService) Delete(id uint) error {
	var item db.MediaItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

// UpdateCaption overwrites one caption. Callers treat this as a silent
// write and do not surface success to the admin.
func (s *MediaService) UpdateCaption(id uint, caption string) error {
	res := s.db.Model(&db.MediaItem{}).Where("id = ?", id).Update("caption", caption)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

// ClassifyMediaType derives the stored media type from a declared
// content type. The classification happens once, at upload time.
func ClassifyMediaType(contentType string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "video/") {
		return db.MediaTypeVideo
	}
	return db.MediaTypeImage
}
