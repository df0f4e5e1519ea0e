package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bucket names used by the admin panel.
const (
	BucketGallery        = "gallery"
	BucketChildrenPhotos = "children-photos"
)

// Store saves uploaded objects into named buckets and returns their
// public URLs. Deleting objects is deliberately out of scope: removing a
// media record leaves the stored object orphaned.
type Store interface {
	Save(bucket, objectName string, src io.Reader) (string, error)
}

// LocalStore keeps objects on the local disk under baseDir/<bucket> and
// serves them below baseURLPath.
type LocalStore struct {
	baseDir     string
	baseURLPath string
}

// NewLocalStore builds a LocalStore rooted at baseDir with public URLs
// under baseURLPath.
func NewLocalStore(baseDir, baseURLPath string) *LocalStore {
	return &LocalStore{
		baseDir:     baseDir,
		baseURLPath: strings.TrimRight(baseURLPath, "/"),
	}
}

// Save writes the object and returns its public URL.
func (s *LocalStore) Save(bucket, objectName string, src io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, objectName))
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}

	return path.Join(s.baseURLPath, bucket, objectName), nil
}

// NewObjectName generates a collision-free object name keeping the
// original file extension.
func NewObjectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
}
