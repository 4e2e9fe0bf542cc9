package dto

type Product struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Platforms   []string `json:"platforms"`
	Featured    bool     `json:"featured"`
	Logo        string   `json:"logo"`
}

type Link struct {
	Platform    string `json:"platform"`
	Action      string `json:"action"`
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder"`
}
