package dashboard

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/egytrade/tradedb/pkg/star"
)

// RegionsConfig is the content of regions.yaml.
type RegionsConfig struct {
	// Fallback is the region of countries not listed anywhere.
	Fallback string `yaml:"fallback"`

	// Regions maps region names to partner country names.
	Regions map[string][]string `yaml:"regions"`
}

// DefaultRegionsConfig returns the configuration of predefined regions.
func DefaultRegionsConfig() RegionsConfig {
	return RegionsConfig{
		Fallback: DefaultRegion,
		Regions:  DefaultRegionGroups(),
	}
}

// Validate returns an error for a configuration without regions or with
// an unnamed region. Countries listed in several regions and empty
// regions are reported as warnings.
func (c RegionsConfig) Validate() ([]string, error) {
	if len(c.Regions) == 0 {
		return nil, errors.New("no regions specified in configuration")
	}

	var warnings []string
	owner := make(map[string]string)
	for _, region := range slices.Sorted(maps.Keys(c.Regions)) {
		if star.CleanText(region) == "" {
			return nil, errors.New("region name cannot be empty")
		}
		countries := c.Regions[region]
		if len(countries) == 0 {
			warnings = append(warnings,
				fmt.Sprintf("region %q has no countries", region))
		}
		for _, country := range countries {
			key := star.NaturalKey(country)
			if key == "" {
				warnings = append(warnings,
					fmt.Sprintf("region %q has an empty country name", region))
				continue
			}
			if first, ok := owner[key]; ok {
				warnings = append(warnings, fmt.Sprintf(
					"%q is listed in %q and %q, using %q",
					country, first, region, first,
				))
				continue
			}
			owner[key] = region
		}
	}
	return warnings, nil
}

// Lookup builds country to region lookup of the configuration.
func (c RegionsConfig) Lookup() Regions {
	return NewRegions(c.Regions, c.Fallback)
}
