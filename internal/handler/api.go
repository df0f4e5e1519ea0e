package handler

import (
	"github.com/petitspas/backend/internal/service"
	"github.com/petitspas/backend/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	store    storage.Store
	content  *service.ContentService
	media    *service.MediaService
	children *service.ChildService
	stories  *service.StoryService
	auth     *service.AuthService
	checkout *service.CheckoutService
}

// Options carries the external-service settings handlers depend on.
type Options struct {
	CaptchaSecret   string
	StripeSecretKey string
	SiteBaseURL     string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store storage.Store, opts Options) *API {
	return &API{
		db:       gdb,
		store:    store,
		content:  service.NewContentService(gdb),
		media:    service.NewMediaService(gdb, store),
		children: service.NewChildService(gdb),
		stories:  service.NewStoryService(gdb),
		auth:     service.NewAuthService(gdb, opts.CaptchaSecret),
		checkout: service.NewCheckoutService(opts.StripeSecretKey, opts.SiteBaseURL),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Auth exposes the auth service so tests can rewire its HTTP client.
func (a *API) Auth() *service.AuthService {
	return a.auth
}

// Checkout exposes the checkout service so tests can stub the processor.
func (a *API) Checkout() *service.CheckoutService {
	return a.checkout
}
