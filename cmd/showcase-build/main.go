// Command showcase-build renders the landing page and its assets into a
// directory that any static file host can serve.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/cybersky/showcase/catalog"
	"github.com/cybersky/showcase/config"
	"github.com/cybersky/showcase/render"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		color.New(color.FgHiRed).Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	common, err := config.LoadCommon()
	if err != nil {
		return err
	}

	fset := flag.NewFlagSet("showcase-build", flag.ContinueOnError)
	fset.SetOutput(out)
	dir := fset.String("out", "dist", "output directory")
	source := fset.String("catalog", common.Catalog, "catalog file or URL (empty for the embedded catalog)")
	assets := fset.String("assets", common.AssetsDir, "directory holding product logos")
	strict := fset.Bool("strict", false, "fail when a logo is missing")
	if err := fset.Parse(args); err != nil {
		return err
	}

	ok := color.New(color.FgHiGreen)
	warn := color.New(color.FgHiYellow)
	info := color.New(color.FgHiWhite)

	loader := catalog.New(*source)
	c, err := loader.GetCatalog(ctx)
	if err != nil {
		return err
	}
	info.Fprintf(out, "catalog: %s (%d products)\n", loader.Source(), len(c.Products()))

	for _, logo := range c.Logos() {
		if !filepath.IsLocal(filepath.FromSlash(strings.TrimPrefix(logo, "/"))) {
			return fmt.Errorf("logo %q is outside the assets directory", logo)
		}
	}

	if err := os.MkdirAll(filepath.Join(*dir, "static"), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var page bytes.Buffer
	opts := render.Options{Counter: common.Counter(), StaticPrefix: "static"}
	if err := render.Page(c, opts).Render(ctx, &page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	parsed, err := catalog.ParsePage(bytes.NewReader(page.Bytes()))
	if err != nil {
		return fmt.Errorf("verify page: %w", err)
	}
	if problems := catalog.Verify(c, parsed); len(problems) > 0 {
		return fmt.Errorf("rendered page does not match catalog: %s", strings.Join(problems, "; "))
	}

	if err := os.WriteFile(filepath.Join(*dir, "index.html"), page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	ok.Fprintf(out, "wrote %s\n", filepath.Join(*dir, "index.html"))

	for _, name := range []string{"app.css", "app.js"} {
		b, err := fs.ReadFile(render.Static(), name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(*dir, "static", name), b, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	ok.Fprintf(out, "wrote %s\n", filepath.Join(*dir, "static"))

	missing := 0
	for _, logo := range c.Logos() {
		rel := filepath.FromSlash(strings.TrimPrefix(logo, "/"))
		err := copyFile(filepath.Join(*assets, rel), filepath.Join(*dir, rel))
		switch {
		case err == nil:
			ok.Fprintf(out, "copied %s\n", logo)
		case errors.Is(err, fs.ErrNotExist):
			missing++
			warn.Fprintf(out, "missing logo %s in %s\n", logo, *assets)
		default:
			return err
		}
	}
	if missing > 0 && *strict {
		return fmt.Errorf("%d logo(s) missing", missing)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	outFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(outFile, in); err != nil {
		outFile.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return outFile.Close()
}
