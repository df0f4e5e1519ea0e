package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/db"
	"github.com/petitspas/backend/internal/handler"
	"github.com/petitspas/backend/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	uploadDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(uploadDir, "example.txt"), []byte("hello uploads"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store := storage.NewLocalStore(uploadDir, "/static/uploads")
	api := handler.NewAPI(gdb, store, handler.Options{SiteBaseURL: "https://lespetitspas.org"})
	return SetupRouter(api, "test-secret", uploadDir, "/static/uploads")
}

func TestRouterServesUploads(t *testing.T) {
	r := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodGet, "/static/uploads/example.txt", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if rr.Body.String() != "hello uploads" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestRouterHealthCheck(t *testing.T) {
	r := setupRouterTest(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected healthy, got %d", rr.Code)
	}
}

func TestRouterGatesAdminAPI(t *testing.T) {
	r := setupRouterTest(t)

	gated := []string{
		"/admin/api/stats",
		"/admin/api/content",
		"/admin/api/media",
		"/admin/api/children",
		"/admin/api/stories",
	}
	for _, path := range gated {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without session, got %d", path, rr.Code)
		}
	}

	// Public reads stay open.
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/children", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected public children listing, got %d", rr.Code)
	}
}
