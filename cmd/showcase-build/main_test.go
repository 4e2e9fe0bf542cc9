package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesSite(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", "")
	out := t.TempDir()
	assets := t.TempDir()
	if err := os.WriteFile(filepath.Join(assets, "doodleduel.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	if err := run(context.Background(), []string{"-out", out, "-assets", assets}, &log); err != nil {
		t.Fatalf("run: %v\n%s", err, log.String())
	}

	for _, name := range []string{"index.html", "static/app.css", "static/app.js", "doodleduel.png"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="static/app.css"`) {
		t.Errorf("index.html should link relative assets")
	}
	if !strings.Contains(log.String(), "missing logo") {
		t.Errorf("expected missing logo warnings, got:\n%s", log.String())
	}
}

func TestRunStrictFailsOnMissingLogos(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", "")
	var log bytes.Buffer
	err := run(context.Background(), []string{"-out", t.TempDir(), "-assets", t.TempDir(), "-strict"}, &log)
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected missing logo error, got %v", err)
	}
}

func TestRunBadCatalog(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", "")
	var log bytes.Buffer
	err := run(context.Background(), []string{"-out", t.TempDir(), "-catalog", filepath.Join(t.TempDir(), "nope.yaml")}, &log)
	if err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestRunRejectsEscapingLogo(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "a", "b", "out")
	assets := filepath.Join(root, "a", "b", "assets")
	for _, dir := range []string{out, assets} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	victim := filepath.Join(root, "a", "escaped.png")
	if err := os.WriteFile(victim, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	catalogPath := filepath.Join(root, "catalog.yaml")
	doc := "site: {name: A}\nproducts:\n  - name: X\n    platforms: [web]\n    logo: /../../escaped.png\n"
	if err := os.WriteFile(catalogPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	err := run(context.Background(), []string{"-out", out, "-assets", assets, "-catalog", catalogPath}, &log)
	if err == nil || !strings.Contains(err.Error(), "assets directory") {
		t.Fatalf("expected logo path error, got %v", err)
	}
	b, err := os.ReadFile(victim)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "x" {
		t.Fatalf("file outside the output dir was modified: %q", b)
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); err == nil {
		t.Fatalf("index.html should not be written for a rejected catalog")
	}
}
