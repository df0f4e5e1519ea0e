package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/petitspas/backend/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrCaptchaTokenMissing = errors.New("captcha token is required")
	ErrCaptchaRejected     = errors.New("captcha verification failed")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailInvalid        = errors.New("email is invalid")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
)

const defaultCaptchaVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AuthService authenticates admin accounts. Every login and register
// submission must carry a proof-of-humanity token; without a configured
// captcha secret the remote verification is skipped (local development).
type AuthService struct {
	db               *gorm.DB
	httpClient       httpDoer
	captchaSecret    string
	captchaVerifyURL string
}

// NewAuthService constructs an AuthService.
func NewAuthService(gdb *gorm.DB, captchaSecret string) *AuthService {
	return &AuthService{
		db:               gdb,
		httpClient:       &http.Client{Timeout: 10 * time.Second},
		captchaSecret:    strings.TrimSpace(captchaSecret),
		captchaVerifyURL: defaultCaptchaVerifyURL,
	}
}

// SetHTTPClient swaps the outbound HTTP client, mainly for tests.
func (s *AuthService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.httpClient = &http.Client{Timeout: 10 * time.Second}
		return
	}
	s.httpClient = client
}

// SetCaptchaVerifyURL overrides the challenge verification endpoint.
func (s *AuthService) SetCaptchaVerifyURL(base string) {
	trimmed := strings.TrimSpace(base)
	if trimmed != "" {
		s.captchaVerifyURL = trimmed
	}
}

// VerifyCaptcha checks the one-time human-verification token. A missing
// token is rejected before any network call.
func (s *AuthService) VerifyCaptcha(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrCaptchaTokenMissing
	}
	if s.captchaSecret == "" {
		return nil
	}

	form := url.Values{}
	form.Set("secret", s.captchaSecret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.captchaVerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := s.httpClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCaptchaRejected, err)
	}
	defer resp.Body.Close()

	var verdict struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&verdict); err != nil {
		return fmt.Errorf("%w: %v", ErrCaptchaRejected, err)
	}
	if !verdict.Success {
		return ErrCaptchaRejected
	}
	return nil
}

// Login verifies the captcha token and the credentials, returning the
// matching admin account.
func (s *AuthService) Login(ctx context.Context, email, password, captchaToken string) (*db.User, error) {
	if err := s.VerifyCaptcha(ctx, captchaToken); err != nil {
		return nil, err
	}

	trimmedEmail := strings.TrimSpace(strings.ToLower(email))

	var user db.User
	if err := s.db.Where("email = ?", trimmedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Register creates a new admin account. The caller is told to check the
// mailbox; no automated verification flow follows.
func (s *AuthService) Register(ctx context.Context, email, password, captchaToken string) error {
	if err := s.VerifyCaptcha(ctx, captchaToken); err != nil {
		return err
	}

	trimmedEmail := strings.TrimSpace(strings.ToLower(email))
	if trimmedEmail == "" || !strings.Contains(trimmedEmail, "@") {
		return ErrEmailInvalid
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	var existing db.User
	err := s.db.Where("email = ?", trimmedEmail).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Create(&db.User{Email: trimmedEmail, Password: string(hashed)}).Error
}
