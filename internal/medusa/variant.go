package medusa

import "strings"

// ParseVariantTitle derives a variant's option-value assignment from its
// display title. The title encodes values positionally, separated by " - ",
// in the same order as the product's declared options
// ("256GB - Natural Titanium" with options [Storage, Color]).
//
// The title is a display convention, not a guaranteed encoding: when a value
// itself contains " - " the split over-produces segments. Since only the last
// option can absorb the surplus unambiguously, the leading options take one
// segment each and the remainder is rejoined for the final option. Callers
// that know the real option values should pass them explicitly instead.
func ParseVariantTitle(title string, optionTitles []string) map[string]string {
	values := make(map[string]string)
	if len(optionTitles) == 0 {
		return values
	}

	parts := strings.Split(title, " - ")
	for i, opt := range optionTitles {
		if i >= len(parts) {
			break
		}
		if i == len(optionTitles)-1 {
			values[opt] = strings.TrimSpace(strings.Join(parts[i:], " - "))
		} else {
			values[opt] = strings.TrimSpace(parts[i])
		}
	}
	return values
}
