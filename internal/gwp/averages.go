package gwp

import (
	"github.com/shopspring/decimal"
)

// Average returns the arithmetic mean of the strictly positive values.
// Zero, negative and absent values count in neither the sum nor the
// denominator. It returns 0 when no value is positive.
func Average(values []float64) float64 {
	sum := decimal.Zero
	n := int64(0)
	for _, v := range values {
		if v > 0 {
			sum = sum.Add(decimal.NewFromFloat(v))
			n++
		}
	}
	if n == 0 {
		return 0
	}

	avg, _ := sum.Div(decimal.NewFromInt(n)).Float64()
	return avg
}

// Averages computes the average GWP of each requested line of business for
// a country. Country matching ignores case, line of business matching is
// exact. Every requested line of business gets an entry; unknown countries
// and lines of business yield 0.
func (t *Table) Averages(country string, linesOfBusiness []string) map[string]float64 {
	result := make(map[string]float64, len(linesOfBusiness))
	byLob := t.index[countryKey(country)]

	for _, lob := range linesOfBusiness {
		i, ok := byLob[lob]
		if !ok {
			result[lob] = 0
			continue
		}
		result[lob] = t.records[i].Average()
	}

	return result
}
