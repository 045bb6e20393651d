package export

import (
	"fmt"
	"strconv"
)

// formatThreshold renders a split value using a printf-style specifier
// without its leading verb marker, e.g. ".2f" for two fixed decimals. The
// empty specifier falls back to the shortest exact representation.
func formatThreshold(value float64, spec string) string {
	if spec == "" {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return fmt.Sprintf("%"+spec, value)
}
