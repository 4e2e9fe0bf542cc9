package types

import "testing"

func TestResolveLink(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		platform Platform
		expected string
	}{
		{
			name:     "ios specific link",
			product:  NewProduct("Recurroo", "", []Platform{IOS}, false, "", map[string]string{"ios": "https://example.com/app"}),
			platform: IOS,
			expected: "https://example.com/app",
		},
		{
			name:     "web reads website",
			product:  NewProduct("AI Diary", "", []Platform{Web}, false, "", map[string]string{"website": "https://example.com"}),
			platform: Web,
			expected: "https://example.com",
		},
		{
			name: "platform link preferred over website",
			product: NewProduct("Snap Search", "", []Platform{Android}, false, "", map[string]string{
				"android": "https://play.example/snap",
				"website": "https://snap.example",
			}),
			platform: Android,
			expected: "https://play.example/snap",
		},
		{
			name:     "falls back to website",
			product:  NewProduct("Sum", "", []Platform{Mac}, false, "", map[string]string{"website": "https://sum.example"}),
			platform: Mac,
			expected: "https://sum.example",
		},
		{
			name:     "empty entry falls back",
			product:  NewProduct("Sum", "", []Platform{IOS}, false, "", map[string]string{"ios": "", "website": "https://sum.example"}),
			platform: IOS,
			expected: "https://sum.example",
		},
		{
			name:     "placeholder when nothing matches",
			product:  NewProduct("Ghost", "", []Platform{Android}, false, "", nil),
			platform: Android,
			expected: PlaceholderLink,
		},
		{
			name:     "web does not read a web key",
			product:  NewProduct("Odd", "", []Platform{Web}, false, "", map[string]string{"web": "https://odd.example"}),
			platform: Web,
			expected: PlaceholderLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLink(tt.product, tt.platform)
			if got != tt.expected {
				t.Errorf("ResolveLink mismatch:\ngot:  %s\nwant: %s", got, tt.expected)
			}
		})
	}
}

func TestResolveLinksNeverEmpty(t *testing.T) {
	products := []Product{
		NewProduct("A", "", []Platform{Web, IOS, Android, Mac}, false, "", nil),
		NewProduct("B", "", []Platform{IOS, Mac}, false, "", map[string]string{"mac": "https://b.example/mac"}),
	}
	for _, p := range products {
		links := ResolveLinks(p)
		if len(links) != len(p.Platforms()) {
			t.Fatalf("%s: got %d links, want %d", p.Name(), len(links), len(p.Platforms()))
		}
		for i, l := range links {
			if l.URL == "" {
				t.Errorf("%s: empty link for %s", p.Name(), l.Platform)
			}
			if l.Platform != p.Platforms()[i] {
				t.Errorf("%s: link %d platform = %s, want %s", p.Name(), i, l.Platform, p.Platforms()[i])
			}
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Doodle Duel":   "doodle-duel",
		"AI Diary":      "ai-diary",
		"SnapAPI":       "snapapi",
		"  Manifest AI": "manifest-ai",
		"Sum!":          "sum",
		"a -- b":        "a-b",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProductIsImmutable(t *testing.T) {
	platforms := []Platform{IOS}
	links := map[string]string{"ios": "https://example.com/app"}
	p := NewProduct("Recurroo", "", platforms, false, "", links)

	platforms[0] = Android
	links["ios"] = "https://evil.example"
	if p.Platforms()[0] != IOS {
		t.Fatalf("platforms mutated through constructor argument")
	}
	if got := ResolveLink(p, IOS); got != "https://example.com/app" {
		t.Fatalf("links mutated through constructor argument: %s", got)
	}

	got := p.Links()
	got["ios"] = "changed"
	if v, _ := p.Link("ios"); v != "https://example.com/app" {
		t.Fatalf("links mutated through accessor: %s", v)
	}
}

func TestParsePlatform(t *testing.T) {
	for _, raw := range []string{"web", "IOS", " android ", "mac"} {
		if _, err := ParsePlatform(raw); err != nil {
			t.Errorf("ParsePlatform(%q): %v", raw, err)
		}
	}
	if _, err := ParsePlatform("windows"); err == nil {
		t.Fatalf("expected error for unknown platform")
	}
}

func TestPlatformAction(t *testing.T) {
	if Web.Action() != "Visit" {
		t.Errorf("web action = %q", Web.Action())
	}
	for _, p := range []Platform{IOS, Android, Mac} {
		if p.Action() != "Download" {
			t.Errorf("%s action = %q", p, p.Action())
		}
	}
}

func TestContactLink(t *testing.T) {
	signal := NewContactLink("Signal", "", "signal")
	if !signal.Placeholder() || signal.URL() != PlaceholderLink || signal.External() {
		t.Fatalf("signal should be an inert placeholder: %+v", signal)
	}
	mail := NewContactLink("Email", "mailto:hello@cybersky.dev", "mail")
	if !mail.Mail() || mail.External() {
		t.Fatalf("email should be a mailto link opened in place")
	}
	x := NewContactLink("Twitter", "https://x.com", "twitter")
	if !x.External() {
		t.Fatalf("twitter should open externally")
	}
}

func TestCatalogLookupAndLogos(t *testing.T) {
	c := NewCatalog(
		Site{Name: "Cyber Sky", Logo: "/globe.png"},
		[]Product{
			NewProduct("Doodle Duel", "", []Platform{Web}, true, "/doodle.png", nil),
			NewProduct("FlickPicker", "", []Platform{Web}, true, "/globe.png", nil),
		},
		nil,
		nil,
	)
	if _, ok := c.Product("DOODLE-DUEL"); !ok {
		t.Fatalf("expected lookup by slug to be case-insensitive")
	}
	if _, ok := c.Product("missing"); ok {
		t.Fatalf("unexpected product for unknown slug")
	}
	logos := c.Logos()
	if len(logos) != 2 || logos[0] != "/globe.png" || logos[1] != "/doodle.png" {
		t.Fatalf("unexpected logos: %v", logos)
	}
}
