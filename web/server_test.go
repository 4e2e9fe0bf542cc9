package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/cybersky/showcase/catalog"
	"github.com/cybersky/showcase/types"
)

type fakeSource struct {
	catalog types.Catalog
	fail    bool
}

func (f *fakeSource) GetCatalog(context.Context) (types.Catalog, error) {
	if f.fail {
		return types.Catalog{}, errors.New("upstream catalog error")
	}
	return f.catalog, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{catalog: types.NewCatalog(
		types.Site{Name: "Cyber Sky", Logo: "/logo.png", Owner: "Owner"},
		[]types.Product{
			types.NewProduct("Doodle Duel", "Draw", []types.Platform{types.Web}, true, "/doodleduel.png", map[string]string{"website": "https://doodleduel.ai"}),
			types.NewProduct("Snap Search", "Find", []types.Platform{types.IOS, types.Android}, false, "/snapsearch.png", map[string]string{"ios": "https://apps.example/snap", "website": "https://snap.example"}),
			types.NewProduct("Ghost", "Nothing", []types.Platform{types.Mac}, false, "/ghost.png", nil),
		},
		[]types.Statistic{types.NewStatistic(30, "+", "Products")},
		[]types.ContactLink{types.NewContactLink("Email", "mailto:hi@example.com", "mail")},
	)}
}

func startTestServer(source types.CatalogSource) *httptest.Server {
	assets := fstest.MapFS{
		"logo.png":        {Data: []byte("png-logo")},
		"doodleduel.png":  {Data: []byte("png-doodle")},
		"nested/file.txt": {Data: []byte("nested")},
	}
	return httptest.NewServer(NewServer(source, Options{Assets: assets}).Handler())
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(b)
}

func TestPageRoute(t *testing.T) {
	srv := startTestServer(newFakeSource())
	defer srv.Close()

	resp, body := get(t, srv.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}

	page, err := catalog.ParsePage(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParsePage: %v", err)
	}
	if problems := catalog.Verify(newFakeSource().catalog, page); len(problems) != 0 {
		t.Fatalf("page mismatch: %v", problems)
	}
}

func TestPageRouteCatalogFailure(t *testing.T) {
	srv := startTestServer(&fakeSource{fail: true})
	defer srv.Close()

	resp, _ := get(t, srv.URL+"/")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestStaticAndAssets(t *testing.T) {
	srv := startTestServer(newFakeSource())
	defer srv.Close()

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{name: "stylesheet", path: "/static/app.css", status: http.StatusOK},
		{name: "script", path: "/static/app.js", status: http.StatusOK},
		{name: "logo", path: "/logo.png", status: http.StatusOK, body: "png-logo"},
		{name: "nested asset", path: "/nested/file.txt", status: http.StatusOK, body: "nested"},
		{name: "missing asset", path: "/missing.png", status: http.StatusNotFound},
		{name: "directory", path: "/nested", status: http.StatusNotFound},
		{name: "traversal", path: "/../etc/passwd", status: http.StatusNotFound},
		{name: "health", path: "/healthz", status: http.StatusOK, body: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.StatusCode)
			}
			if tt.body != "" && body != tt.body {
				t.Fatalf("body = %q, want %q", body, tt.body)
			}
		})
	}
}

func TestAPICatalog(t *testing.T) {
	srv := startTestServer(newFakeSource())
	defer srv.Close()

	resp, body := get(t, srv.URL+"/api/catalog")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got struct {
		Site struct {
			Name string `json:"name"`
		} `json:"site"`
		Products []struct {
			Slug  string `json:"slug"`
			Links []struct {
				Platform string `json:"platform"`
				URL      string `json:"url"`
			} `json:"links"`
		} `json:"products"`
	}
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Site.Name != "Cyber Sky" || len(got.Products) != 3 {
		t.Fatalf("unexpected catalog: %+v", got)
	}
	snap := got.Products[1]
	if snap.Slug != "snap-search" || snap.Links[1].Platform != "android" || snap.Links[1].URL != "https://snap.example" {
		t.Fatalf("snap search links = %+v", snap.Links)
	}
}

func TestAPIProducts(t *testing.T) {
	srv := startTestServer(newFakeSource())
	defer srv.Close()

	tests := []struct {
		name   string
		query  string
		status int
		slugs  []string
	}{
		{name: "all", query: "", status: http.StatusOK, slugs: []string{"doodle-duel", "snap-search", "ghost"}},
		{name: "platform", query: "?platform=android", status: http.StatusOK, slugs: []string{"snap-search"}},
		{name: "featured", query: "?featured=true", status: http.StatusOK, slugs: []string{"doodle-duel"}},
		{name: "not featured", query: "?featured=0", status: http.StatusOK, slugs: []string{"snap-search", "ghost"}},
		{name: "bad platform", query: "?platform=windows", status: http.StatusBadRequest},
		{name: "bad featured", query: "?featured=maybe", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv.URL+"/api/products"+tt.query)
			if resp.StatusCode != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, resp.StatusCode, body)
			}
			if tt.status != http.StatusOK {
				var apiErr APIError
				if err := json.Unmarshal([]byte(body), &apiErr); err != nil {
					t.Fatalf("decode error: %v", err)
				}
				if apiErr.Type != ErrorTypeValidation {
					t.Fatalf("error type = %q", apiErr.Type)
				}
				return
			}
			var items []struct {
				Slug string `json:"slug"`
			}
			if err := json.Unmarshal([]byte(body), &items); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(items) != len(tt.slugs) {
				t.Fatalf("items = %+v, want %v", items, tt.slugs)
			}
			for i, slug := range tt.slugs {
				if items[i].Slug != slug {
					t.Fatalf("item[%d] = %q, want %q", i, items[i].Slug, slug)
				}
			}
		})
	}
}

func TestAPIProduct(t *testing.T) {
	srv := startTestServer(newFakeSource())
	defer srv.Close()

	resp, _ := get(t, srv.URL+"/api/products/Snap-Search")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, body := get(t, srv.URL+"/api/products/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var apiErr APIError
	if err := json.Unmarshal([]byte(body), &apiErr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if apiErr.Type != ErrorTypeNotFound {
		t.Fatalf("error type = %q", apiErr.Type)
	}
}

func TestAPIProductLink(t *testing.T) {
	srv := startTestServer(newFakeSource())
	defer srv.Close()

	tests := []struct {
		name        string
		path        string
		status      int
		url         string
		placeholder bool
		listed      bool
	}{
		{name: "web", path: "/api/products/doodle-duel/links/web", status: http.StatusOK, url: "https://doodleduel.ai", listed: true},
		{name: "own key", path: "/api/products/snap-search/links/ios", status: http.StatusOK, url: "https://apps.example/snap", listed: true},
		{name: "website fallback", path: "/api/products/snap-search/links/android", status: http.StatusOK, url: "https://snap.example", listed: true},
		{name: "unlisted platform", path: "/api/products/doodle-duel/links/mac", status: http.StatusOK, url: "https://doodleduel.ai"},
		{name: "placeholder", path: "/api/products/ghost/links/mac", status: http.StatusOK, url: "#", placeholder: true, listed: true},
		{name: "unknown platform", path: "/api/products/ghost/links/windows", status: http.StatusBadRequest},
		{name: "unknown product", path: "/api/products/nope/links/web", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, resp.StatusCode, body)
			}
			if tt.status != http.StatusOK {
				return
			}
			var out linkOutput
			if err := json.Unmarshal([]byte(body), &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.URL != tt.url || out.Placeholder != tt.placeholder || out.Listed != tt.listed {
				t.Fatalf("link = %+v", out)
			}
		})
	}
}

func TestAPICatalogFailure(t *testing.T) {
	srv := startTestServer(&fakeSource{fail: true})
	defer srv.Close()

	resp, body := get(t, srv.URL+"/api/catalog")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
	var apiErr APIError
	if err := json.Unmarshal([]byte(body), &apiErr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if apiErr.Type != ErrorTypeUnavailable || apiErr.Details != "upstream catalog error" {
		t.Fatalf("error = %+v", apiErr)
	}
}

func TestWriteErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), string(ErrorTypeInternal)) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
