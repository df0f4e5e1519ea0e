package handler

import (
	"fmt"
	"io"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/db"
	"github.com/petitspas/backend/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// countingStore tracks saves so tests can assert on zero-storage paths.
type countingStore struct {
	mu      sync.Mutex
	saves   int
	objects map[string][]byte
}

func newCountingStore() *countingStore {
	return &countingStore{objects: map[string][]byte{}}
}

func (s *countingStore) Save(bucket, objectName string, src io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	key := path.Join(bucket, objectName)
	s.objects[key] = data
	return "/static/uploads/" + key, nil
}

func setupHandlerTestDB(t *testing.T, name string) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s-%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

// newTestAPI builds an API over an in-memory database and counting store.
func newTestAPI(t *testing.T, name string) (*API, *countingStore, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, cleanup := setupHandlerTestDB(t, name)
	store := newCountingStore()
	api := NewAPI(gdb, store, Options{SiteBaseURL: "https://lespetitspas.org"})
	return api, store, cleanup
}

// newSessionEngine returns a bare engine carrying the session middleware.
func newSessionEngine() *gin.Engine {
	r := gin.New()
	r.Use(sessions.Sessions("petitspas_session", cookie.NewStore([]byte("test-secret"))))
	return r
}

func seedContent(t *testing.T, api *API) {
	t.Helper()
	if err := service.NewContentService(api.DB()).SeedDefaults(); err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}
}
