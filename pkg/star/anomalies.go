package star

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Anomaly kinds. A counter key is "<field>.<kind>".
const (
	// Empty natural key, the row cannot reference the dimension.
	KindEmpty = "empty"
	// Natural key missing from the dimension table after insertion.
	KindUnmatched = "unmatched"
	// A value is present but is not a number.
	KindUnparsable = "unparsable"
	// A measure is missing and stored as NULL or treated as 0.
	KindNull = "null"
	// A flow description other than Export or Import.
	KindOtherFlow = "other"
)

// Anomalies counts data quality problems by "<field>.<kind>".
type Anomalies map[string]int

// Add increments the counter of a field and kind.
func (a Anomalies) Add(field, kind string) {
	a[field+"."+kind]++
}

// Get returns the counter of a field and kind.
func (a Anomalies) Get(field, kind string) int {
	return a[field+"."+kind]
}

// Total returns the sum of all counters.
func (a Anomalies) Total() int {
	var res int
	for _, v := range a {
		res += v
	}
	return res
}

// Dropping returns the number of rows excluded from a fact batch.
func (a Anomalies) Dropping() int {
	var res int
	for k, v := range a {
		if strings.HasSuffix(k, "."+KindEmpty) ||
			strings.HasSuffix(k, "."+KindUnmatched) {
			res += v
		}
	}
	return res
}

// String returns counters sorted by key, for example
// "country.empty=2, trade_value.unparsable=1".
func (a Anomalies) String() string {
	keys := slices.Sorted(maps.Keys(a))
	res := make([]string, len(keys))
	for i, k := range keys {
		res[i] = fmt.Sprintf("%s=%d", k, a[k])
	}
	return strings.Join(res, ", ")
}
