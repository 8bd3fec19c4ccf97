package domain

import "time"

// WebResult represents a single web search hit.
type WebResult struct {
	// Title is the page title. Empty when the API omitted it.
	Title string

	// Description is the result snippet.
	Description string

	// URL is the page URL.
	URL string
}

// Address holds the structured address parts of a POI.
// Any of the fields may be empty.
type Address struct {
	Street     string
	Locality   string
	Region     string
	PostalCode string
}

// Rating is aggregate review information for a POI.
type Rating struct {
	// Value is nil when the API returned a rating object without a value.
	Value *float64

	// Count is the number of reviews.
	Count int
}

// POI represents a point of interest returned by the local search endpoints.
type POI struct {
	// ID is the opaque location identifier. It joins POI details with
	// the separately fetched descriptions.
	ID string

	// Name is the business name.
	Name string

	Address Address

	// Phone is the contact number, if listed.
	Phone string

	// Rating is nil when the API returned no rating object.
	Rating *Rating

	// PriceRange is a price indicator such as "$$".
	PriceRange string

	// OpeningHours is an ordered list of opening hour strings.
	OpeningHours []string
}

// RateLimitStatus is a point-in-time snapshot of the local rate limiter.
type RateLimitStatus struct {
	SecondUsed  int       `json:"second_used"`
	SecondLimit int       `json:"second_limit"`
	MonthUsed   int       `json:"month_used"`
	MonthLimit  int       `json:"month_limit"`
	LastReset   time.Time `json:"last_reset"`
}
