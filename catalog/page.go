package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cybersky/showcase/types"
)

// PageProduct is a product card read back from a rendered page.
type PageProduct struct {
	Slug     string
	Name     string
	Logo     string
	LogoAlt  string
	Featured bool
	Links    []PageLink
}

// PageLink is an outbound link of a product card.
type PageLink struct {
	Platform string
	Href     string
	Target   string
	Rel      string
	Text     string
}

// PageStat is a counter read back from a rendered page.
type PageStat struct {
	Target  int
	Suffix  string
	Label   string
	Initial string
}

// PageContact is an entry of the contact section.
type PageContact struct {
	Label  string
	Href   string
	Target string
}

// Page is the structure of a rendered landing page.
type Page struct {
	Title    string
	Anchors  []string
	Products []PageProduct
	Stats    []PageStat
	Contacts []PageContact
	Assets   []string
}

// ParsePage reads a rendered landing page.
func ParsePage(r io.Reader) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Page{}, fmt.Errorf("parse HTML: %w", err)
	}

	page := Page{Title: strings.TrimSpace(doc.Find("title").First().Text())}

	doc.Find("section[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			page.Anchors = append(page.Anchors, id)
		}
	})

	doc.Find("[data-counter]").Each(func(_ int, s *goquery.Selection) {
		target, _ := strconv.Atoi(s.AttrOr("data-counter-target", "0"))
		page.Stats = append(page.Stats, PageStat{
			Target:  target,
			Suffix:  s.AttrOr("data-counter-suffix", ""),
			Label:   strings.TrimSpace(s.Closest(".stat-item").Find(".stat-label").Text()),
			Initial: strings.TrimSpace(s.Text()),
		})
	})

	doc.Find(".product-card").Each(func(_ int, card *goquery.Selection) {
		logo := card.Find("img.product-logo").First()
		p := PageProduct{
			Slug:     card.AttrOr("data-slug", ""),
			Name:     strings.TrimSpace(card.Find(".product-name").First().Text()),
			Logo:     logo.AttrOr("src", ""),
			LogoAlt:  logo.AttrOr("alt", ""),
			Featured: card.Find(".featured-badge").Length() > 0,
		}
		card.Find("a.product-link").Each(func(_ int, a *goquery.Selection) {
			p.Links = append(p.Links, PageLink{
				Platform: a.AttrOr("data-platform", ""),
				Href:     a.AttrOr("href", ""),
				Target:   a.AttrOr("target", ""),
				Rel:      a.AttrOr("rel", ""),
				Text:     strings.TrimSpace(a.Text()),
			})
		})
		page.Products = append(page.Products, p)
	})

	doc.Find("#contact a.social-link").Each(func(_ int, a *goquery.Selection) {
		page.Contacts = append(page.Contacts, PageContact{
			Label:  strings.TrimSpace(a.Text()),
			Href:   a.AttrOr("href", ""),
			Target: a.AttrOr("target", ""),
		})
	})

	seen := make(map[string]struct{})
	doc.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src := img.AttrOr("src", "")
		if _, ok := seen[src]; ok || src == "" {
			return
		}
		seen[src] = struct{}{}
		page.Assets = append(page.Assets, src)
	})

	return page, nil
}

// Verify compares a parsed page with the catalog it was rendered from and
// returns one message per mismatch.
func Verify(c types.Catalog, page Page) []string {
	var problems []string

	for _, anchor := range []string{"products", "contact"} {
		found := false
		for _, a := range page.Anchors {
			if a == anchor {
				found = true
				break
			}
		}
		if !found {
			problems = append(problems, fmt.Sprintf("missing #%s section", anchor))
		}
	}

	products := c.Products()
	if len(page.Products) != len(products) {
		problems = append(problems, fmt.Sprintf("page has %d products, catalog has %d", len(page.Products), len(products)))
	}
	for i := 0; i < len(products) && i < len(page.Products); i++ {
		want, got := products[i], page.Products[i]
		if got.Slug != want.Slug() {
			problems = append(problems, fmt.Sprintf("product %d: slug %q, want %q", i, got.Slug, want.Slug()))
			continue
		}
		if got.Featured != want.Featured() {
			problems = append(problems, fmt.Sprintf("%s: featured badge %v, want %v", want.Slug(), got.Featured, want.Featured()))
		}
		resolved := types.ResolveLinks(want)
		if len(got.Links) != len(resolved) {
			problems = append(problems, fmt.Sprintf("%s: %d links, want %d", want.Slug(), len(got.Links), len(resolved)))
			continue
		}
		for j, l := range resolved {
			if got.Links[j].Href != l.URL {
				problems = append(problems, fmt.Sprintf("%s/%s: href %q, want %q", want.Slug(), l.Platform, got.Links[j].Href, l.URL))
			}
			if got.Links[j].Target != "_blank" {
				problems = append(problems, fmt.Sprintf("%s/%s: link does not open a new context", want.Slug(), l.Platform))
			}
		}
	}

	stats := c.Stats()
	if len(page.Stats) != len(stats) {
		problems = append(problems, fmt.Sprintf("page has %d counters, catalog has %d", len(page.Stats), len(stats)))
	}
	for i := 0; i < len(stats) && i < len(page.Stats); i++ {
		if page.Stats[i].Target != stats[i].Value() || page.Stats[i].Suffix != stats[i].Suffix() {
			problems = append(problems, fmt.Sprintf("counter %d: %d%s, want %d%s", i, page.Stats[i].Target, page.Stats[i].Suffix, stats[i].Value(), stats[i].Suffix()))
		}
	}

	return problems
}
