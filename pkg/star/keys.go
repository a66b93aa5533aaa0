package star

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
	"golang.org/x/text/unicode/norm"
)

// CleanText repairs broken UTF-8, converts the string to NFC and trims
// surrounding white space.
func CleanText(s string) string {
	s = gnlib.FixUtf8(s)
	s = norm.NFC.String(s)
	return strings.TrimSpace(s)
}

// NaturalKey returns the comparable form of a natural key value. Keys read
// from input files and keys read back from dimension tables are compared
// only through this form.
func NaturalKey(v any) string {
	switch k := v.(type) {
	case nil:
		return ""
	case string:
		return CleanText(k)
	case int:
		return strconv.Itoa(k)
	case int32:
		return strconv.FormatInt(int64(k), 10)
	case int64:
		return strconv.FormatInt(k, 10)
	case []byte:
		return CleanText(string(k))
	default:
		return CleanText(fmt.Sprint(k))
	}
}

// KeyMap maps natural keys (in NaturalKey form) to surrogate keys of one
// dimension.
type KeyMap map[string]int64

// Lookup finds the surrogate key of a natural key value.
func (m KeyMap) Lookup(natural any) (int64, bool) {
	k := NaturalKey(natural)
	if k == "" {
		return 0, false
	}
	res, ok := m[k]
	return res, ok
}
