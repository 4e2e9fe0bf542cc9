package dto

type Site struct {
	Name     string   `json:"name"`
	Logo     string   `json:"logo"`
	Headline string   `json:"headline"`
	Subtitle string   `json:"subtitle"`
	Emphasis []string `json:"emphasis,omitempty"`
	Owner    string   `json:"owner"`
}

type Stat struct {
	Value   int    `json:"value"`
	Suffix  string `json:"suffix"`
	Label   string `json:"label"`
	Display string `json:"display"`
}

type Contact struct {
	Label       string `json:"label"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Mail        bool   `json:"mail"`
	Placeholder bool   `json:"placeholder"`
}

type Catalog struct {
	Site     Site            `json:"site"`
	Products []ProductDetail `json:"products"`
	Stats    []Stat          `json:"stats"`
	Contacts []Contact       `json:"contacts"`
}
