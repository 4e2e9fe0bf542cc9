// Package web serves the landing page, its assets and a read-only JSON view
// of the catalog.
package web

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cybersky/showcase/mcpsrv/dto"
	"github.com/cybersky/showcase/render"
	"github.com/cybersky/showcase/types"
)

type Options struct {
	// Assets holds logos and other files referenced by the catalog. Nil
	// disables asset serving.
	Assets         fs.FS
	Page           render.Options
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

type Server struct {
	source  types.CatalogSource
	assets  fs.FS
	page    render.Options
	logger  *zap.Logger
	timeout time.Duration
}

type linkOutput struct {
	Slug        string `json:"slug"`
	Platform    string `json:"platform"`
	Action      string `json:"action"`
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder"`
	Listed      bool   `json:"listed"`
}

func NewServer(source types.CatalogSource, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	page := opts.Page
	if page.StaticPrefix == "" {
		page.StaticPrefix = "/static"
	}
	return &Server{
		source:  source,
		assets:  opts.Assets,
		page:    page,
		logger:  logger,
		timeout: timeout,
	}
}

// Handler returns the router with all routes and middleware mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/", s.handlePage)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	prefix := strings.TrimRight(s.page.StaticPrefix, "/")
	r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.FS(render.Static()))))

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/products", s.handleProducts)
		r.Get("/products/{slug}", s.handleProduct)
		r.Get("/products/{slug}/links/{platform}", s.handleProductLink)
	})

	r.NotFound(s.handleAsset)
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	c, err := s.source.GetCatalog(r.Context())
	if err != nil {
		s.logger.Error("load catalog", zap.Error(err))
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		return
	}
	templ.Handler(render.Page(c, s.page)).ServeHTTP(w, r)
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	if s.assets == nil || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || !fs.ValidPath(name) {
		http.NotFound(w, r)
		return
	}
	info, err := fs.Stat(s.assets, name)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, s.assets, name)
}

func (s *Server) catalog(r *http.Request) (types.Catalog, error) {
	c, err := s.source.GetCatalog(r.Context())
	if err != nil {
		s.logger.Error("load catalog", zap.Error(err))
		return types.Catalog{}, NewUnavailableError(err)
	}
	return c, nil
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromCatalog(c))
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r)
	if err != nil {
		writeError(w, err)
		return
	}

	products := c.Products()
	if raw := strings.TrimSpace(r.URL.Query().Get("platform")); raw != "" {
		platform, err := types.ParsePlatform(raw)
		if err != nil {
			writeError(w, NewValidationError("%v", err))
			return
		}
		products = filterPlatform(products, platform)
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("featured")); raw != "" {
		switch strings.ToLower(raw) {
		case "true", "1":
			products = filterFeatured(products, true)
		case "false", "0":
			products = filterFeatured(products, false)
		default:
			writeError(w, NewValidationError("featured must be true or false"))
			return
		}
	}
	writeJSON(w, http.StatusOK, dto.FromProducts(products))
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r)
	if err != nil {
		writeError(w, err)
		return
	}
	slug := chi.URLParam(r, "slug")
	p, ok := c.Product(slug)
	if !ok {
		writeError(w, NewNotFoundError("product %q not found", slug))
		return
	}
	writeJSON(w, http.StatusOK, dto.FromProductDetail(p))
}

func (s *Server) handleProductLink(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r)
	if err != nil {
		writeError(w, err)
		return
	}
	slug := chi.URLParam(r, "slug")
	p, ok := c.Product(slug)
	if !ok {
		writeError(w, NewNotFoundError("product %q not found", slug))
		return
	}
	platform, err := types.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		writeError(w, NewValidationError("%v", err))
		return
	}

	url := types.ResolveLink(p, platform)
	writeJSON(w, http.StatusOK, linkOutput{
		Slug:        p.Slug(),
		Platform:    platform.String(),
		Action:      platform.Action(),
		URL:         url,
		Placeholder: url == types.PlaceholderLink,
		Listed:      hasPlatform(p, platform),
	})
}

func hasPlatform(p types.Product, platform types.Platform) bool {
	for _, v := range p.Platforms() {
		if v == platform {
			return true
		}
	}
	return false
}

func filterPlatform(products []types.Product, platform types.Platform) []types.Product {
	out := make([]types.Product, 0, len(products))
	for _, p := range products {
		if hasPlatform(p, platform) {
			out = append(out, p)
		}
	}
	return out
}

func filterFeatured(products []types.Product, featured bool) []types.Product {
	out := make([]types.Product, 0, len(products))
	for _, p := range products {
		if p.Featured() == featured {
			out = append(out, p)
		}
	}
	return out
}
