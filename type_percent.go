package wallet

import (
	"fmt"
	"math"
)

// Percent is a ratio expressed in percentage points, the unit ROI is
// reported in: 50 means +50%.
type Percent float64

// Equal compares with a fixed tolerance. A return figure is never
// meaningfully more precise than a hundredth of a point.
func (p Percent) Equal(q Percent) bool {
	const tolerance = 0.0001
	return math.Abs(float64(p-q)) < tolerance
}

func (p Percent) String() string { return fmt.Sprintf("%.2f%%", p) }

// SignedString renders with an explicit sign, and zero as "-" so flat
// positions read as blanks in tabular reports.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
