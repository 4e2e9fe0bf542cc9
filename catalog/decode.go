package catalog

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/cybersky/showcase/types"
	"github.com/spf13/viper"
)

type fileCatalog struct {
	Site     fileSite      `mapstructure:"site"`
	Products []fileProduct `mapstructure:"products"`
	Stats    []fileStat    `mapstructure:"stats"`
	Contacts []fileContact `mapstructure:"contacts"`
}

type fileSite struct {
	Name           string   `mapstructure:"name"`
	Logo           string   `mapstructure:"logo"`
	Headline       string   `mapstructure:"headline"`
	Highlight      string   `mapstructure:"highlight"`
	HeadlineSuffix string   `mapstructure:"headline_suffix"`
	Subtitle       string   `mapstructure:"subtitle"`
	Emphasis       []string `mapstructure:"emphasis"`
	PortfolioTitle string   `mapstructure:"portfolio_title"`
	PortfolioBlurb string   `mapstructure:"portfolio_blurb"`
	ContactTitle   string   `mapstructure:"contact_title"`
	ContactBlurb   string   `mapstructure:"contact_blurb"`
	Owner          string   `mapstructure:"owner"`
}

type fileProduct struct {
	Name        string            `mapstructure:"name"`
	Description string            `mapstructure:"description"`
	Platforms   []string          `mapstructure:"platforms"`
	Featured    bool              `mapstructure:"featured"`
	Logo        string            `mapstructure:"logo"`
	Links       map[string]string `mapstructure:"links"`
}

type fileStat struct {
	Value  int    `mapstructure:"value"`
	Suffix string `mapstructure:"suffix"`
	Label  string `mapstructure:"label"`
}

type fileContact struct {
	Label string `mapstructure:"label"`
	URL   string `mapstructure:"url"`
	Icon  string `mapstructure:"icon"`
}

// FormatFor picks the decoder for a file name or URL path from its
// extension. Unknown extensions decode as YAML.
func FormatFor(name string) string {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), "."); ext {
	case "json", "toml", "yaml":
		return ext
	case "yml":
		return "yaml"
	default:
		return "yaml"
	}
}

// Decode reads a catalog document in the given format (yaml, json or toml)
// and validates it.
func Decode(r io.Reader, format string) (types.Catalog, []Warning, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return types.Catalog{}, nil, fmt.Errorf("read catalog: %w", err)
	}

	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return types.Catalog{}, nil, fmt.Errorf("decode %s catalog: %w", format, err)
	}

	var doc fileCatalog
	if err := v.Unmarshal(&doc); err != nil {
		return types.Catalog{}, nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	return build(doc)
}

func build(doc fileCatalog) (types.Catalog, []Warning, error) {
	var warnings []Warning

	products := make([]types.Product, 0, len(doc.Products))
	seen := make(map[string]int, len(doc.Products))
	for i, fp := range doc.Products {
		name := strings.TrimSpace(fp.Name)
		if name == "" {
			return types.Catalog{}, nil, fmt.Errorf("product %d: name is required", i)
		}
		slug := types.Slugify(name)
		if slug == "" {
			return types.Catalog{}, nil, fmt.Errorf("product %q: name has no usable characters", name)
		}
		if prev, ok := seen[slug]; ok {
			return types.Catalog{}, nil, fmt.Errorf("product %q: duplicate of product %d (slug %q)", name, prev, slug)
		}
		seen[slug] = i

		platforms := make([]types.Platform, 0, len(fp.Platforms))
		for _, raw := range fp.Platforms {
			p, err := types.ParsePlatform(raw)
			if err != nil {
				return types.Catalog{}, nil, fmt.Errorf("product %q: %w", name, err)
			}
			for _, existing := range platforms {
				if existing == p {
					return types.Catalog{}, nil, fmt.Errorf("product %q: duplicate platform %q", name, p)
				}
			}
			platforms = append(platforms, p)
		}

		links := make(map[string]string, len(fp.Links))
		for k, v := range fp.Links {
			links[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
		}

		logo, err := assetPath(strings.TrimSpace(fp.Logo))
		if err != nil {
			return types.Catalog{}, nil, fmt.Errorf("product %q: %w", name, err)
		}

		product := types.NewProduct(name, strings.TrimSpace(fp.Description), platforms, fp.Featured, logo, links)
		warnings = append(warnings, productWarnings(product)...)
		products = append(products, product)
	}

	stats := make([]types.Statistic, 0, len(doc.Stats))
	for i, st := range doc.Stats {
		if st.Value < 0 {
			return types.Catalog{}, nil, fmt.Errorf("stat %d (%s): value must be non-negative, got %d", i, st.Label, st.Value)
		}
		stats = append(stats, types.NewStatistic(st.Value, st.Suffix, strings.TrimSpace(st.Label)))
	}

	contacts := make([]types.ContactLink, 0, len(doc.Contacts))
	for i, fc := range doc.Contacts {
		label := strings.TrimSpace(fc.Label)
		if label == "" {
			return types.Catalog{}, nil, fmt.Errorf("contact %d: label is required", i)
		}
		c := types.NewContactLink(label, strings.TrimSpace(fc.URL), strings.TrimSpace(fc.Icon))
		if c.Placeholder() {
			warnings = append(warnings, Warning{Subject: label, Message: "contact link is a placeholder"})
		}
		contacts = append(contacts, c)
	}

	siteLogo, err := assetPath(strings.TrimSpace(doc.Site.Logo))
	if err != nil {
		return types.Catalog{}, nil, fmt.Errorf("site: %w", err)
	}

	site := types.Site{
		Name:           strings.TrimSpace(doc.Site.Name),
		Logo:           siteLogo,
		Headline:       strings.TrimSpace(doc.Site.Headline),
		Highlight:      strings.TrimSpace(doc.Site.Highlight),
		HeadlineSuffix: strings.TrimSpace(doc.Site.HeadlineSuffix),
		Subtitle:       strings.TrimSpace(doc.Site.Subtitle),
		PortfolioTitle: strings.TrimSpace(doc.Site.PortfolioTitle),
		PortfolioBlurb: strings.TrimSpace(doc.Site.PortfolioBlurb),
		ContactTitle:   strings.TrimSpace(doc.Site.ContactTitle),
		ContactBlurb:   strings.TrimSpace(doc.Site.ContactBlurb),
		Owner:          strings.TrimSpace(doc.Site.Owner),
	}
	if site.Name == "" {
		return types.Catalog{}, nil, fmt.Errorf("site: name is required")
	}
	for _, phrase := range doc.Site.Emphasis {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		if !strings.Contains(site.Subtitle, phrase) {
			warnings = append(warnings, Warning{Subject: "site", Message: fmt.Sprintf("emphasis %q does not occur in the subtitle", phrase)})
			continue
		}
		site.Emphasis = append(site.Emphasis, phrase)
	}

	return types.NewCatalog(site, products, stats, contacts), warnings, nil
}

// assetPath accepts logos that name a file inside the assets directory,
// written with or without a leading slash.
func assetPath(logo string) (string, error) {
	if logo == "" {
		return "", nil
	}
	if !fs.ValidPath(strings.TrimPrefix(logo, "/")) {
		return "", fmt.Errorf("logo %q must be a path inside the assets directory", logo)
	}
	return logo, nil
}

// Warning is a non-fatal catalog problem. The page still renders; the
// affected link falls back or stays inert.
type Warning struct {
	Subject string
	Message string
}

func (w Warning) String() string {
	return w.Subject + ": " + w.Message
}

func productWarnings(p types.Product) []Warning {
	var out []Warning
	if len(p.Platforms()) == 0 {
		out = append(out, Warning{Subject: p.Name(), Message: "no platforms listed"})
	}
	for _, platform := range p.Platforms() {
		key := platform.String()
		if platform == types.Web {
			key = types.WebsiteKey
		}
		if _, ok := p.Link(key); ok {
			continue
		}
		if _, ok := p.Link(types.WebsiteKey); ok {
			out = append(out, Warning{Subject: p.Name(), Message: fmt.Sprintf("no %s link, falling back to website", platform)})
			continue
		}
		out = append(out, Warning{Subject: p.Name(), Message: fmt.Sprintf("no %s or website link, rendering placeholder", platform)})
	}
	return out
}
