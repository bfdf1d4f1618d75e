package gwp

const (
	// FirstYear is the year held in YearlyValues[0].
	FirstYear = 2000
	// YearCount is the number of yearly premium columns per row (2000-2015).
	YearCount = 16

	// Column layout of the dataset file.
	countryColumn        = 0
	lineOfBusinessColumn = 3
	firstYearColumn      = 4
	minFields            = firstYearColumn + YearCount
)

// Record is one (country, line of business) row of the dataset.
// Absent or unparseable cells are stored as 0.
type Record struct {
	Country        string
	LineOfBusiness string
	YearlyValues   [YearCount]float64
}

// ValueForYear returns the premium recorded for the given year, or false when
// the year is outside the dataset range.
func (r Record) ValueForYear(year int) (float64, bool) {
	i := year - FirstYear
	if i < 0 || i >= YearCount {
		return 0, false
	}
	return r.YearlyValues[i], true
}

// Average is the mean of the record's strictly positive yearly values.
func (r Record) Average() float64 {
	return Average(r.YearlyValues[:])
}
