package scrape

import (
	"regexp"
	"strings"

	"github.com/varunvj2006/sniffd-ai/pkg/shared/stringutil"
)

// A currency symbol, an optional space, and an amount with an optional
// two-digit decimal part separated by "." or ",".
var priceRE = regexp.MustCompile(`([$€£]) ?(\d+(?:[.,]\d{2})?)`)

// ExtractPrice finds the first currency-prefixed amount in arbitrary text and
// returns it as symbol plus amount with a "." decimal separator. Returns the
// empty string when no price is present. Only the first match is considered;
// pages with several prices are not disambiguated.
func ExtractPrice(text string) string {
	match := priceRE.FindStringSubmatch(stringutil.CollapseSpaces(text))
	if match == nil {
		return ""
	}
	return match[1] + strings.Replace(match[2], ",", ".", 1)
}
