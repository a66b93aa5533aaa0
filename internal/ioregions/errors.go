package ioregions

import (
	"fmt"

	"github.com/egytrade/tradedb/pkg/errcode"
	"github.com/gnames/gn"
)

// RegionsConfigError creates an error for when regions.yaml
// cannot be loaded.
func RegionsConfigError(path string, err error) error {
	msg := `Cannot load regions configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - No regions in the file
  - Permission denied

<em>How to fix:</em>
  1. Validate YAML syntax
  2. Remove the file to restore default regions: <em>rm %s</em>`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.ExtractRegionsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load regions config: %w", err),
	}
}
