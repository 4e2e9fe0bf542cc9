package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cybersky/showcase/types"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const userAgent = "showcase-catalog/1.0"

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the embedded catalog.
func Default() (types.Catalog, error) {
	c, _, err := Decode(bytes.NewReader(defaultCatalog), "yaml")
	if err != nil {
		return types.Catalog{}, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// Loader implements types.CatalogSource over the embedded catalog, a local
// data file or a remote URL. The decoded catalog is cached until ClearCache.
type Loader struct {
	source string
	client *resty.Client
	logger *zap.Logger

	mu       sync.RWMutex
	cached   *types.Catalog
	loadedAt time.Time
}

// Compile-time interface check
var _ types.CatalogSource = (*Loader)(nil)

// Option configures a Loader.
type Option func(*Loader)

// WithLogger reports catalog warnings through logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithClient replaces the HTTP client used for remote catalogs.
func WithClient(client *resty.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// New creates a Loader. An empty source selects the embedded catalog;
// http(s) URLs are fetched; anything else is read as a file path.
func New(source string, opts ...Option) *Loader {
	l := &Loader{
		source: strings.TrimSpace(source),
		client: resty.New().
			SetTimeout(10*time.Second).
			SetHeader("User-Agent", userAgent),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source describes where the catalog is read from.
func (l *Loader) Source() string {
	if l.source == "" {
		return "embedded"
	}
	return l.source
}

// GetCatalog returns the cached catalog, loading it on first use.
func (l *Loader) GetCatalog(ctx context.Context) (types.Catalog, error) {
	l.mu.RLock()
	if l.cached != nil {
		c := *l.cached
		l.mu.RUnlock()
		return c, nil
	}
	l.mu.RUnlock()

	return l.Reload(ctx)
}

// Reload loads the catalog from its source and swaps it in. On failure the
// previously cached catalog, if any, stays in place.
func (l *Loader) Reload(ctx context.Context) (types.Catalog, error) {
	c, warnings, err := l.load(ctx)
	if err != nil {
		return types.Catalog{}, err
	}
	for _, w := range warnings {
		l.logger.Warn("catalog warning", zap.String("subject", w.Subject), zap.String("detail", w.Message))
	}
	l.logger.Info("catalog loaded",
		zap.String("source", l.Source()),
		zap.Int("products", len(c.Products())),
		zap.Int("stats", len(c.Stats())),
	)

	l.mu.Lock()
	l.cached = &c
	l.loadedAt = time.Now()
	l.mu.Unlock()
	return c, nil
}

// LoadedAt returns when the cached catalog was loaded; zero when empty.
func (l *Loader) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadedAt
}

// ClearCache drops the cached catalog so the next read reloads it.
func (l *Loader) ClearCache() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cached = nil
	l.loadedAt = time.Time{}
}

func (l *Loader) load(ctx context.Context) (types.Catalog, []Warning, error) {
	switch {
	case l.source == "":
		return Decode(bytes.NewReader(defaultCatalog), "yaml")
	case strings.HasPrefix(l.source, "http://"), strings.HasPrefix(l.source, "https://"):
		return l.fetch(ctx)
	default:
		f, err := os.Open(l.source)
		if err != nil {
			return types.Catalog{}, nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		return Decode(f, FormatFor(l.source))
	}
}

func (l *Loader) fetch(ctx context.Context) (types.Catalog, []Warning, error) {
	resp, err := l.client.R().SetContext(ctx).Get(l.source)
	if err != nil {
		return types.Catalog{}, nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return types.Catalog{}, nil, fmt.Errorf("fetch catalog: unexpected status code: %d", resp.StatusCode())
	}

	format := FormatFor(l.source)
	if ct := resp.Header().Get("Content-Type"); strings.Contains(ct, "json") {
		format = "json"
	}
	c, warnings, err := Decode(bytes.NewReader(resp.Body()), format)
	if err != nil {
		return types.Catalog{}, nil, fmt.Errorf("parse remote catalog: %w", err)
	}
	return c, warnings, nil
}
