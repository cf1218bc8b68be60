package catalog

import (
	"fmt"
	"strings"
)

// Label renders a stored attribute value for display: underscores become
// spaces and the first letter is capitalized. Booleans render as Yes/No,
// missing values as Unknown.
func Label(v any) string {
	switch t := v.(type) {
	case nil:
		return "Unknown"
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case string:
		s := strings.ReplaceAll(t, "_", " ")
		if s == "" {
			return "Unknown"
		}
		return strings.ToUpper(s[:1]) + s[1:]
	default:
		return fmt.Sprint(t)
	}
}
