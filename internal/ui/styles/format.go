package styles

import "strings"

// FormatExtras describes the sugar/blow flags of an order, e.g. "sugar, blown".
// Returns "plain" when neither is set.
func FormatExtras(sugar, blow bool) string {
	var parts []string
	if sugar {
		parts = append(parts, "sugar")
	}
	if blow {
		parts = append(parts, "blown")
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, ", ")
}
