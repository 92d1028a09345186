package landing

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

// Endpoints read by the landing page.
const (
	BannersPath         = "/api/banners"
	PopularProductsPath = "/api/products/popular"
	LimitedProductsPath = "/api/products/limited"
)

// Developer-facing warnings, one per endpoint.
const (
	BannersWarning         = "Ошибка при получении баннеров"
	PopularProductsWarning = "Ошибка при получении списка популярных товаров"
	LimitedProductsWarning = "Ошибка при получении списка лимитированных товаров"
)

// Fetcher loads a JSON list from the catalog API.
type Fetcher interface {
	GetData(ctx context.Context, path string) ([]Item, error)
}

// Logger is the subset of the Fiber logger the page writes to.
type Logger interface {
	Info(v ...any)
	Warn(v ...any)
}

// Page owns the landing state and fills it from three independent requests.
// A failed request empties its own list and logs a warning; it never affects
// the other lists and is never returned to the caller.
type Page struct {
	fetcher Fetcher
	logger  Logger

	mu    sync.RWMutex
	state State
}

// NewPage returns a page with empty lists that logs through the default
// Fiber logger.
func NewPage(f Fetcher) *Page {
	return &Page{fetcher: f, logger: log.DefaultLogger(), state: NewState()}
}

// WithLogger replaces the logger and returns the page.
func (p *Page) WithLogger(l Logger) *Page {
	p.logger = l
	return p
}

// State returns a copy of the current lists.
func (p *Page) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.clone()
}

// GetBanners fills Banners from the banners endpoint.
func (p *Page) GetBanners(ctx context.Context) {
	items, err := p.fetcher.GetData(ctx, BannersPath)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state.SetBanners(nil)
		p.logger.Warn(BannersWarning)
		return
	}
	p.state.SetBanners(items)
}

// GetPopularProducts fills PopularCards from the popular products endpoint.
func (p *Page) GetPopularProducts(ctx context.Context) {
	items, err := p.fetcher.GetData(ctx, PopularProductsPath)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.logger.Info("----", err)
		p.state.SetPopularCards(nil)
		p.logger.Warn(PopularProductsWarning)
		return
	}
	p.state.SetPopularCards(items)
}

// GetLimitedProducts fills LimitedCards from the limited products endpoint.
func (p *Page) GetLimitedProducts(ctx context.Context) {
	items, err := p.fetcher.GetData(ctx, LimitedProductsPath)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.logger.Info("----", err)
		p.state.SetLimitedCards(nil)
		p.logger.Warn(LimitedProductsWarning)
		return
	}
	p.state.SetLimitedCards(items)
}

// Load fetches every list exactly once, concurrently, and returns when all
// three requests have settled.
func (p *Page) Load(ctx context.Context) {
	p.run(ctx, p.GetBanners, p.GetPopularProducts, p.GetLimitedProducts)
}

// Created is the creation hook of the legacy component: it fetches the
// limited and popular lists.
func (p *Page) Created(ctx context.Context) {
	p.run(ctx, p.GetLimitedProducts, p.GetPopularProducts)
}

// Mounted is the mount hook of the legacy component: it fetches all three
// lists. Running Created and then Mounted requests the product lists twice.
func (p *Page) Mounted(ctx context.Context) {
	p.Load(ctx)
}

func (p *Page) run(ctx context.Context, fetches ...func(context.Context)) {
	var g errgroup.Group
	for _, fetch := range fetches {
		fetch := fetch
		g.Go(func() error {
			fetch(ctx)
			return nil
		})
	}
	_ = g.Wait()
}
