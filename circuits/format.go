package circuits

import (
	"fmt"
	"math"
)

// formatAngle renders an angle using pi notation when it matches a common
// fraction, falling back to a plain decimal.
func formatAngle(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 8, "pi/8"},
		{math.Pi / 16, "pi/16"},
		{math.Pi / 32, "pi/32"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}
	return fmt.Sprintf("%g", val)
}
