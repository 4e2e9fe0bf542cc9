package dto

type ProductDetail struct {
	Product
	Links    []Link            `json:"links"`
	RawLinks map[string]string `json:"raw_links"`
}
