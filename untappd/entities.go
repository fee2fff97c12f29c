package untappd

import "github.com/kbukum/untappd/api"

// BaseURL is the scheme and host of the public API.
const BaseURL = "http://api.untappd.com"

// Brewery is one brewery search hit.
type Brewery struct {
	ID          int    `json:"brewery_id"`
	Name        string `json:"brewery_name"`
	Stamp       string `json:"brewery_stamp,omitempty"`
	CountryName string `json:"country_name,omitempty"`
}

// Beer is one beer search hit.
type Beer struct {
	ID          int           `json:"beer_id"`
	Name        string        `json:"beer_name"`
	Style       string        `json:"beer_style,omitempty"`
	BreweryName string        `json:"brewery_name,omitempty"`
	Created     api.Timestamp `json:"created_at"`
}

// BreweryResponse is the envelope returned by the brewery search.
type BreweryResponse = api.Response[Brewery]

// BeerResponse is the envelope returned by the beer search.
type BeerResponse = api.Response[Beer]
