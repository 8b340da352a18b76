package scoring

import "math"

// round rounds half toward +Inf. Every input here is non-negative, so this
// is the usual half-up rounding.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
