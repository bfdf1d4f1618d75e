package models

import "github.com/vanshverma888/Galytix/internal/gwp"

// AverageGWPRequest is the body of an average GWP query.
type AverageGWPRequest struct {
	Country         string   `json:"country"`
	LinesOfBusiness []string `json:"lob"`
}

// AverageGWPResponse maps each requested line of business to its average GWP.
type AverageGWPResponse map[string]float64

// LineOfBusinessSummary describes one indexed line of business of a country.
type LineOfBusinessSummary struct {
	Country        string  `json:"country"`
	LineOfBusiness string  `json:"lineOfBusiness"`
	AverageGWP     float64 `json:"averageGwp"`
	YearsReported  int     `json:"yearsReported"`
	FirstYear      int     `json:"firstYear,omitempty"`
	LastYear       int     `json:"lastYear,omitempty"`
}

// NewLineOfBusinessSummary summarises a record. Years are counted only when
// their premium is positive, matching the averaging rule.
func NewLineOfBusinessSummary(record gwp.Record) LineOfBusinessSummary {
	summary := LineOfBusinessSummary{
		Country:        record.Country,
		LineOfBusiness: record.LineOfBusiness,
		AverageGWP:     record.Average(),
	}

	for i, v := range record.YearlyValues {
		if v <= 0 {
			continue
		}
		year := gwp.FirstYear + i
		if summary.YearsReported == 0 {
			summary.FirstYear = year
		}
		summary.LastYear = year
		summary.YearsReported++
	}

	return summary
}

// CountryModel is one entry of the countries list.
type CountryModel struct {
	Country         string `json:"country"`
	LinesOfBusiness int    `json:"linesOfBusiness"`
}
