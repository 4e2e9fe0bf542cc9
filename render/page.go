// Package render composes the landing page from a catalog.
//
// The markup lives in an embedded html/template and is exposed as a
// templ.Component so handlers can serve it with templ.Handler.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/cybersky/showcase/counter"
	"github.com/cybersky/showcase/types"
)

// revealStagger is the delay added per product card to the scroll reveal.
const revealStagger = 80 * time.Millisecond

//go:embed templates/page.html.tmpl
var pageTemplate string

//go:embed static
var staticFS embed.FS

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"icon": icon,
}).Parse(pageTemplate))

// Static returns the CSS and JS assets the page links to, rooted at the
// static directory (app.css, app.js).
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("render: static assets: %v", err))
	}
	return sub
}

// Options tune the rendered page.
type Options struct {
	Counter      counter.Config
	StaticPrefix string
	Now          func() time.Time
}

func (o Options) normalized() Options {
	if o.Counter.Duration <= 0 || o.Counter.Steps <= 0 {
		o.Counter = counter.DefaultConfig()
	}
	if o.StaticPrefix == "" {
		o.StaticPrefix = "/static"
	}
	o.StaticPrefix = strings.TrimRight(o.StaticPrefix, "/")
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Page returns the full landing page for c.
func Page(c types.Catalog, opts Options) templ.Component {
	return templ.FromGoHTML(pageTmpl, NewPageData(c, opts))
}

// PageData is the view model of the landing page.
type PageData struct {
	Site         types.Site
	Subtitle     []TextSpan
	Year         int
	StaticPrefix string
	DurationMS   int64
	Steps        int
	Stats        []StatView
	Products     []ProductView
	Contacts     []ContactView
}

// TextSpan is a run of copy, optionally emphasised.
type TextSpan struct {
	Text   string
	Strong bool
}

type StatView struct {
	Target  int
	Suffix  string
	Label   string
	Initial string
}

type ProductView struct {
	Slug        string
	Name        string
	Description string
	Logo        string
	LogoAlt     string
	Featured    bool
	Delay       string
	Platforms   []PlatformView
	Links       []LinkView
}

type PlatformView struct {
	Tag  string
	Icon string
}

type LinkView struct {
	Platform string
	Icon     string
	Action   string
	URL      string
}

type ContactView struct {
	Label       string
	Icon        string
	URL         string
	External    bool
	Placeholder bool
}

// NewPageData builds the view model, iterating the catalog in order.
func NewPageData(c types.Catalog, opts Options) PageData {
	opts = opts.normalized()

	data := PageData{
		Site:         c.Site(),
		Subtitle:     emphasize(c.Site().Subtitle, c.Site().Emphasis),
		Year:         opts.Now().Year(),
		StaticPrefix: opts.StaticPrefix,
		DurationMS:   opts.Counter.Duration.Milliseconds(),
		Steps:        opts.Counter.Steps,
	}

	for _, s := range c.Stats() {
		data.Stats = append(data.Stats, StatView{
			Target:  s.Value(),
			Suffix:  s.Suffix(),
			Label:   s.Label(),
			Initial: counter.Format(0, s.Suffix()),
		})
	}

	for i, p := range c.Products() {
		view := ProductView{
			Slug:        p.Slug(),
			Name:        p.Name(),
			Description: p.Description(),
			Logo:        p.Logo(),
			LogoAlt:     p.Name() + " logo",
			Featured:    p.Featured(),
			Delay:       fmt.Sprintf("%dms", (time.Duration(i) * revealStagger).Milliseconds()),
		}
		for _, platform := range p.Platforms() {
			view.Platforms = append(view.Platforms, PlatformView{Tag: platform.String(), Icon: platformIcon(platform)})
		}
		for _, l := range types.ResolveLinks(p) {
			view.Links = append(view.Links, LinkView{
				Platform: l.Platform.String(),
				Icon:     platformIcon(l.Platform),
				Action:   l.Platform.Action(),
				URL:      l.URL,
			})
		}
		data.Products = append(data.Products, view)
	}

	for _, ct := range c.Contacts() {
		data.Contacts = append(data.Contacts, ContactView{
			Label:       ct.Label(),
			Icon:        ct.Icon(),
			URL:         ct.URL(),
			External:    ct.External(),
			Placeholder: ct.Placeholder(),
		})
	}

	return data
}

// emphasize splits text into spans, marking the earliest occurrence of any
// phrase as strong. The longest phrase wins when two start at the same byte.
func emphasize(text string, phrases []string) []TextSpan {
	var spans []TextSpan
	for text != "" {
		at, length := -1, 0
		for _, p := range phrases {
			if p == "" {
				continue
			}
			i := strings.Index(text, p)
			if i < 0 {
				continue
			}
			if at < 0 || i < at || (i == at && len(p) > length) {
				at, length = i, len(p)
			}
		}
		if at < 0 {
			spans = append(spans, TextSpan{Text: text})
			break
		}
		if at > 0 {
			spans = append(spans, TextSpan{Text: text[:at]})
		}
		spans = append(spans, TextSpan{Text: text[at : at+length], Strong: true})
		text = text[at+length:]
	}
	return spans
}

func platformIcon(p types.Platform) string {
	switch p {
	case types.Android:
		return "smartphone"
	case types.IOS:
		return "apple"
	case types.Web:
		return "globe"
	case types.Mac:
		return "monitor"
	default:
		return ""
	}
}
