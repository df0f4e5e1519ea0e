package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/petitspas/backend/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func createAdminUser(t *testing.T, api *API, email, password string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := api.DB().Create(&db.User{Email: email, Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
}

func TestLoginOpensSession(t *testing.T) {
	api, _, cleanup := newTestAPI(t, "admin-login")
	defer cleanup()

	createAdminUser(t, api, "admin@lespetitspas.org", "secret-pass")

	r := newSessionEngine()
	r.POST("/admin/login", api.Login)
	r.GET("/admin/api/stats", AuthRequired(), api.Stats)

	// Without a session the admin API refuses.
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rr.Code)
	}

	body, _ := json.Marshal(map[string]string{
		"email":         "admin@lespetitspas.org",
		"password":      "secret-pass",
		"captcha_token": "token",
	})
	loginReq := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	loginReq.Header.Set("Content-Type", "application/json")
	loginRR := httptest.NewRecorder()
	r.ServeHTTP(loginRR, loginReq)
	if loginRR.Code != http.StatusOK {
		t.Fatalf("expected login to succeed, got %d: %s", loginRR.Code, loginRR.Body.String())
	}

	cookies := loginRR.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie")
	}

	statsReq := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	for _, c := range cookies {
		statsReq.AddCookie(c)
	}
	statsRR := httptest.NewRecorder()
	r.ServeHTTP(statsRR, statsReq)
	if statsRR.Code != http.StatusOK {
		t.Fatalf("expected stats with session, got %d", statsRR.Code)
	}
}

func TestLoginRejectsMissingCaptchaToken(t *testing.T) {
	api, _, cleanup := newTestAPI(t, "admin-captcha")
	defer cleanup()

	createAdminUser(t, api, "admin@lespetitspas.org", "secret-pass")

	r := newSessionEngine()
	r.POST("/admin/login", api.Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@lespetitspas.org",
		"password": "secret-pass",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without captcha token, got %d", rr.Code)
	}
}

func TestRegisterPromptsForMailbox(t *testing.T) {
	api, _, cleanup := newTestAPI(t, "admin-register")
	defer cleanup()

	r := newSessionEngine()
	r.POST("/admin/register", api.Register)

	body, _ := json.Marshal(map[string]string{
		"email":         "new@lespetitspas.org",
		"password":      "longenough",
		"captcha_token": "token",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected register to succeed, got %d: %s", rr.Code, rr.Body.String())
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Message == "" {
		t.Fatalf("expected a check-your-mailbox message")
	}

	var count int64
	api.DB().Model(&db.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one account, got %d", count)
	}
}
