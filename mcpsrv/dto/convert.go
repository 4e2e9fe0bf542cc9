package dto

import (
	"slices"
	"strings"

	"github.com/cybersky/showcase/counter"
	"github.com/cybersky/showcase/types"
)

func FromProduct(p types.Product) Product {
	platforms := make([]string, 0, len(p.Platforms()))
	for _, platform := range p.Platforms() {
		platforms = append(platforms, platform.String())
	}
	return Product{
		Slug:        p.Slug(),
		Name:        p.Name(),
		Description: p.Description(),
		Platforms:   platforms,
		Featured:    p.Featured(),
		Logo:        p.Logo(),
	}
}

func FromProducts(products []types.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromLink(l types.ResolvedLink) Link {
	return Link{
		Platform:    l.Platform.String(),
		Action:      l.Platform.Action(),
		URL:         l.URL,
		Placeholder: l.URL == types.PlaceholderLink,
	}
}

func FromProductDetail(p types.Product) ProductDetail {
	resolved := types.ResolveLinks(p)
	links := make([]Link, 0, len(resolved))
	for _, l := range resolved {
		links = append(links, FromLink(l))
	}
	raw := p.Links()
	if raw == nil {
		raw = map[string]string{}
	}
	return ProductDetail{
		Product:  FromProduct(p),
		Links:    links,
		RawLinks: raw,
	}
}

func FromStat(s types.Statistic) Stat {
	return Stat{
		Value:   s.Value(),
		Suffix:  s.Suffix(),
		Label:   s.Label(),
		Display: counter.Format(s.Value(), s.Suffix()),
	}
}

func FromStats(stats []types.Statistic) []Stat {
	out := make([]Stat, 0, len(stats))
	for _, s := range stats {
		out = append(out, FromStat(s))
	}
	return out
}

func FromContact(c types.ContactLink) Contact {
	return Contact{
		Label:       c.Label(),
		URL:         c.URL(),
		Icon:        c.Icon(),
		Mail:        c.Mail(),
		Placeholder: c.Placeholder(),
	}
}

func FromContacts(contacts []types.ContactLink) []Contact {
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, FromContact(c))
	}
	return out
}

func FromSite(s types.Site) Site {
	headline := strings.Join(strings.Fields(strings.Join([]string{s.Headline, s.Highlight, s.HeadlineSuffix}, " ")), " ")
	return Site{
		Name:     s.Name,
		Logo:     s.Logo,
		Headline: headline,
		Subtitle: s.Subtitle,
		Emphasis: slices.Clone(s.Emphasis),
		Owner:    s.Owner,
	}
}

func FromCatalog(c types.Catalog) Catalog {
	products := c.Products()
	details := make([]ProductDetail, 0, len(products))
	for _, p := range products {
		details = append(details, FromProductDetail(p))
	}
	return Catalog{
		Site:     FromSite(c.Site()),
		Products: details,
		Stats:    FromStats(c.Stats()),
		Contacts: FromContacts(c.Contacts()),
	}
}
