package domain

// MonthsPerYear is the fixed width of a YearGrid.
const MonthsPerYear = 12

// MonthLabels are the display labels for grid slots, index 0 = January.
var MonthLabels = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// YearGrid is one user's payment record for a single year: exactly twelve
// booleans, index 0 = January. The zero value (all false) is meaningful.
type YearGrid [MonthsPerYear]bool

// LedgerRow is one persisted paid month. Only true slots are stored; absence
// of a row means unpaid.
type LedgerRow struct {
	UserID string
	Year   int
	Month  int // 0-based slot index, 0 = January
}

// YearWindow is the configured forward-looking range of ledger years.
type YearWindow struct {
	Start int
	Count int
}

// Years lists the window in ascending order.
func (w YearWindow) Years() []int {
	ys := make([]int, 0, w.Count)
	for i := 0; i < w.Count; i++ {
		ys = append(ys, w.Start+i)
	}
	return ys
}

// Contains reports whether year falls inside the window.
func (w YearWindow) Contains(year int) bool {
	return year >= w.Start && year < w.Start+w.Count
}
