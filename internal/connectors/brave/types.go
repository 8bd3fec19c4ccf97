package brave

// Wire types for Brave API responses. Every field is optional on the
// wire; absent keys decode to zero values rather than failing.

type webSearchResponse struct {
	Web       *resultList[webResult]      `json:"web"`
	Locations *resultList[locationResult] `json:"locations"`
}

type resultList[T any] struct {
	Results []T `json:"results"`
}

type webResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type locationResult struct {
	ID string `json:"id"`
}

type poisResponse struct {
	Results []poiResult `json:"results"`
}

type poiResult struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	PriceRange   string       `json:"priceRange"`
	OpeningHours []string     `json:"openingHours"`
	Address      *addressJSON `json:"address"`
	Rating       *ratingJSON  `json:"rating"`
}

type addressJSON struct {
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
}

type ratingJSON struct {
	RatingValue *float64 `json:"ratingValue"`
	RatingCount int      `json:"ratingCount"`
}

type descriptionsResponse struct {
	Descriptions map[string]string `json:"descriptions"`
}
