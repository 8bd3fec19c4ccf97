package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/brave-mcp/internal/core/domain"
)

// noLocalResults is returned when the POI lookup yields nothing even
// though location ids were found.
const noLocalResults = "No local results found"

func formatWebResults(results []domain.WebResult) string {
	blocks := make([]string, len(results))
	for i, r := range results {
		blocks[i] = fmt.Sprintf("Title: %s\nDescription: %s\nURL: %s", r.Title, r.Description, r.URL)
	}
	return strings.Join(blocks, "\n\n")
}

func formatLocalResults(pois []domain.POI, descriptions map[string]string) string {
	if len(pois) == 0 {
		return noLocalResults
	}

	blocks := make([]string, len(pois))
	for i := range pois {
		blocks[i] = formatPOI(&pois[i], descriptions)
	}
	return strings.Join(blocks, "\n---\n")
}

func formatPOI(poi *domain.POI, descriptions map[string]string) string {
	name := poi.Name
	if name == "" {
		name = "Unknown"
	}

	phone := poi.Phone
	if phone == "" {
		phone = "N/A"
	}

	ratingValue := "N/A"
	ratingCount := 0
	if poi.Rating != nil {
		if poi.Rating.Value != nil {
			ratingValue = strconv.FormatFloat(*poi.Rating.Value, 'g', -1, 64)
		}
		ratingCount = poi.Rating.Count
	}

	priceRange := poi.PriceRange
	if priceRange == "" {
		priceRange = "N/A"
	}

	hours := "N/A"
	if len(poi.OpeningHours) > 0 {
		hours = strings.Join(poi.OpeningHours, ", ")
	}

	description := "No description available"
	if d, ok := descriptions[poi.ID]; ok {
		description = d
	}

	return fmt.Sprintf(
		"Name: %s\nAddress: %s\nPhone: %s\nRating: %s (%d reviews)\nPrice Range: %s\nHours: %s\nDescription: %s\n",
		name, formatAddress(poi.Address), phone, ratingValue, ratingCount, priceRange, hours, description,
	)
}

// formatAddress comma-joins the present address parts in street,
// locality, region, postal code order. All-empty formats to "N/A".
func formatAddress(a domain.Address) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{a.Street, a.Locality, a.Region, a.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, ", ")
}
