package querybuilder

import "strconv"

// trimTrailingZeros renders km without a trailing ".000" so the distance
// strings sent to the backend look like "3km" rather than "3.000km".
func trimTrailingZeros(km float64) string {
	s := strconv.FormatFloat(km, 'f', -1, 64)
	return s
}
