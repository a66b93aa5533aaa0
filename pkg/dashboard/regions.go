package dashboard

import (
	"maps"
	"slices"

	"github.com/egytrade/tradedb/pkg/star"
)

// DefaultRegion is assigned to countries that are not listed in any region.
const DefaultRegion = "International"

// Regions maps partner countries to dashboard regions.
type Regions struct {
	byCountry map[string]string
	fallback  string
}

// NewRegions creates a lookup from region names to lists of countries.
// A country listed in several regions belongs to the first region in
// alphabetical order. Empty fallback means DefaultRegion.
func NewRegions(groups map[string][]string, fallback string) Regions {
	res := Regions{
		byCountry: make(map[string]string),
		fallback:  star.CleanText(fallback),
	}
	if res.fallback == "" {
		res.fallback = DefaultRegion
	}

	for _, region := range slices.Sorted(maps.Keys(groups)) {
		for _, country := range groups[region] {
			key := star.NaturalKey(country)
			if _, ok := res.byCountry[key]; !ok {
				res.byCountry[key] = star.CleanText(region)
			}
		}
	}
	return res
}

// DefaultRegions returns the region table of the dashboard.
func DefaultRegions() Regions {
	return NewRegions(DefaultRegionGroups(), DefaultRegion)
}

// DefaultRegionGroups returns countries of each predefined region.
func DefaultRegionGroups() map[string][]string {
	return map[string][]string{
		"MENA": {
			"Turkey", "Saudi Arabia", "United Arab Emirates",
			"Libya", "Jordan", "Egypt",
		},
		"Europe": {
			"Italy", "Germany", "Spain", "United Kingdom",
			"France", "Russia", "Ukraine",
		},
		"Americas": {"USA", "Canada", "Brazil"},
		"Asia":     {"China", "India", "South Korea", "Japan"},
	}
}

// Region returns the region of a partner country.
func (r Regions) Region(country string) string {
	if res, ok := r.byCountry[star.NaturalKey(country)]; ok {
		return res
	}
	if r.fallback == "" {
		return DefaultRegion
	}
	return r.fallback
}
